// Package store defines the contract front ends use to reach todo storage.
package store

import "github.com/idilsaglam/memtodo/internal/model"

// TodoStore is implemented by memstore.Store.
type TodoStore interface {
	Create(title, description string) (model.Todo, error)
	Get(id string) (model.Todo, bool)
	List() []model.Todo
	Update(id, title, description string) (bool, error)
	Complete(id string) bool
	Delete(id string) bool
}
