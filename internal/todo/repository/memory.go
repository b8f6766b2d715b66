package repository

import (
	"context"
	"sync"

	"github.com/gogotex/todo-service/internal/todo"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo keeps todos in process memory. It backs STORE_BACKEND=memory and the
// handler tests. Returned todos are copies.
type MemoryRepo struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	store map[primitive.ObjectID]*todo.Todo
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[primitive.ObjectID]*todo.Todo)}
}

func (m *MemoryRepo) Create(_ context.Context, f todo.Fields) (*todo.Todo, error) {
	if err := f.ValidateCreate(); err != nil {
		return nil, err
	}
	t := todo.New(todo.NewID(), f)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[t.ID] = t
	m.order = append(m.order, t.ID)
	return clone(t), nil
}

func (m *MemoryRepo) Find(_ context.Context) ([]*todo.Todo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.Map(m.order, func(id primitive.ObjectID, _ int) *todo.Todo {
		return clone(m.store[id])
	}), nil
}

func (m *MemoryRepo) FindByID(_ context.Context, id string) (*todo.Todo, error) {
	oid, err := todo.ParseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.store[oid]; ok {
		return clone(t), nil
	}
	return nil, nil
}

func (m *MemoryRepo) FindByIDAndUpdate(_ context.Context, id string, f todo.Fields) (*todo.Todo, error) {
	oid, err := todo.ParseID(id)
	if err != nil {
		return nil, err
	}
	if err := f.ValidateUpdate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.store[oid]
	if !ok {
		return nil, nil
	}
	t.Apply(f)
	return clone(t), nil
}

func (m *MemoryRepo) FindByIDAndDelete(_ context.Context, id string) (*todo.Todo, error) {
	oid, err := todo.ParseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.store[oid]
	if !ok {
		return nil, nil
	}
	delete(m.store, oid)
	m.order = lo.Without(m.order, oid)
	return t, nil
}

func (m *MemoryRepo) Ping(context.Context) error { return nil }

func clone(t *todo.Todo) *todo.Todo {
	c := *t
	return &c
}
