// internal/store/memory.go
package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore — хранилище в памяти с тем же контрактом, что и RedisStore.
// Используется в тестах и для локального запуска без Redis.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]map[string][]byte // collection -> id -> JSON
	hooks []NotifyFunc
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string][]byte)}
}

func (s *MemoryStore) Subscribe(fn NotifyFunc) {
	s.mu.Lock()
	s.hooks = append(s.hooks, fn)
	s.mu.Unlock()
}

func (s *MemoryStore) notify(c Change) {
	s.mu.RLock()
	hooks := s.hooks
	s.mu.RUnlock()
	for _, fn := range hooks {
		fn(c)
	}
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string, out any) error {
	s.mu.RLock()
	data, ok := s.data[collection][id]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(data, out)
}

func (s *MemoryStore) Set(ctx context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	if s.data[collection] == nil {
		s.data[collection] = make(map[string][]byte)
	}
	s.data[collection][id] = data
	s.mu.Unlock()
	s.notify(Change{Collection: collection, ID: id})
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	delete(s.data[collection], id)
	s.mu.Unlock()
	s.notify(Change{Collection: collection, ID: id})
	return nil
}

func (s *MemoryStore) List(ctx context.Context, collection string) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([][]byte, 0, len(s.data[collection]))
	for _, data := range s.data[collection] {
		docs = append(docs, data)
	}
	return docs, nil
}

// SetRaw кладёт в коллекцию произвольные байты как есть.
// Нужен тестам, проверяющим обработку битых документов.
func (s *MemoryStore) SetRaw(collection, id string, data []byte) {
	s.mu.Lock()
	if s.data[collection] == nil {
		s.data[collection] = make(map[string][]byte)
	}
	s.data[collection][id] = data
	s.mu.Unlock()
	s.notify(Change{Collection: collection, ID: id})
}
