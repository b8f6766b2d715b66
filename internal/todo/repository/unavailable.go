package repository

import (
	"context"
	"fmt"

	"github.com/gogotex/todo-service/internal/todo"
)

// UnavailableRepo stands in for a store whose connection could not be created at
// startup. Every call fails with the connection error it was built with.
type UnavailableRepo struct {
	err error
}

func NewUnavailableRepo(cause error) *UnavailableRepo {
	return &UnavailableRepo{err: fmt.Errorf("%w: %v", todo.ErrUnavailable, cause)}
}

func (u *UnavailableRepo) Create(context.Context, todo.Fields) (*todo.Todo, error) {
	return nil, u.err
}

func (u *UnavailableRepo) Find(context.Context) ([]*todo.Todo, error) {
	return nil, u.err
}

func (u *UnavailableRepo) FindByID(context.Context, string) (*todo.Todo, error) {
	return nil, u.err
}

func (u *UnavailableRepo) FindByIDAndUpdate(context.Context, string, todo.Fields) (*todo.Todo, error) {
	return nil, u.err
}

func (u *UnavailableRepo) FindByIDAndDelete(context.Context, string) (*todo.Todo, error) {
	return nil, u.err
}

func (u *UnavailableRepo) Ping(context.Context) error { return u.err }
