// Package store — доступ к документному хранилищу.
// Коллекции JSON-документов с ключом-строкой, плюс уведомления об изменениях
// для живых подписок ("последний снимок побеждает").
package store

import (
	"context"
	"errors"
)

// ErrNotFound возвращается, когда документа с таким id нет в коллекции.
var ErrNotFound = errors.New("store: document not found")

// Change — факт изменения документа. Подписчик сам перечитывает нужную
// выборку целиком, никакого диффа не передаётся.
type Change struct {
	Collection string
	ID         string
}

// NotifyFunc вызывается после каждой успешной записи/удаления.
type NotifyFunc func(Change)

// Store — контракт документного хранилища.
type Store interface {
	// Get декодирует документ в out. ErrNotFound, если документа нет.
	Get(ctx context.Context, collection, id string, out any) error
	// Set сохраняет документ целиком (upsert по id).
	Set(ctx context.Context, collection, id string, doc any) error
	// Delete удаляет документ. Отсутствующий документ — не ошибка.
	Delete(ctx context.Context, collection, id string) error
	// List возвращает сырые JSON всех документов коллекции.
	// Битые документы фильтрует вызывающая сторона при декодировании.
	List(ctx context.Context, collection string) ([][]byte, error)
	// Subscribe регистрирует обработчик изменений.
	Subscribe(fn NotifyFunc)
}
