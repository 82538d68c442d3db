// internal/store/redis.go
package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "shiftsync:"

// RedisStore хранит каждый документ отдельным ключом
// "shiftsync:{collection}:{id}" со значением-JSON.
type RedisStore struct {
	client *redis.Client

	mu    sync.RWMutex
	hooks []NotifyFunc
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Subscribe(fn NotifyFunc) {
	s.mu.Lock()
	s.hooks = append(s.hooks, fn)
	s.mu.Unlock()
}

func (s *RedisStore) notify(c Change) {
	s.mu.RLock()
	hooks := s.hooks
	s.mu.RUnlock()
	for _, fn := range hooks {
		fn(c)
	}
}

func docKey(collection, id string) string {
	return keyPrefix + collection + ":" + id
}

func (s *RedisStore) Get(ctx context.Context, collection, id string, out any) error {
	data, err := s.client.Get(ctx, docKey(collection, id)).Bytes()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (s *RedisStore) Set(ctx context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, docKey(collection, id), data, 0).Err(); err != nil {
		return err
	}
	s.notify(Change{Collection: collection, ID: id})
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, collection, id string) error {
	if err := s.client.Del(ctx, docKey(collection, id)).Err(); err != nil {
		return err
	}
	s.notify(Change{Collection: collection, ID: id})
	return nil
}

func (s *RedisStore) List(ctx context.Context, collection string) ([][]byte, error) {
	keys, err := s.client.Keys(ctx, keyPrefix+collection+":*").Result()
	if err != nil {
		return nil, err
	}

	var docs [][]byte
	for _, key := range keys {
		data, err := s.client.Get(ctx, key).Bytes()
		if err != nil {
			// Ключ мог исчезнуть между KEYS и GET
			continue
		}
		docs = append(docs, data)
	}
	return docs, nil
}
