package repository

import (
	"context"

	"github.com/gogotex/todo-service/internal/todo"
)

//go:generate mockgen -source=repository.go -destination=../mocks/mock_repository.go -package=mocks

// Repository is the storage contract the todo handlers depend on. Lookups that match
// nothing return (nil, nil); any non-nil error means the operation itself failed.
type Repository interface {
	Create(ctx context.Context, f todo.Fields) (*todo.Todo, error)
	Find(ctx context.Context) ([]*todo.Todo, error)
	FindByID(ctx context.Context, id string) (*todo.Todo, error)
	// FindByIDAndUpdate returns the document as it is after the update.
	FindByIDAndUpdate(ctx context.Context, id string, f todo.Fields) (*todo.Todo, error)
	// FindByIDAndDelete returns the document as it was before removal.
	FindByIDAndDelete(ctx context.Context, id string) (*todo.Todo, error)
}

// Pinger is implemented by stores that can report backend reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
