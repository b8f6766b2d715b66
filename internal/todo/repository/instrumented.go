package repository

import (
	"context"
	"time"

	"github.com/gogotex/todo-service/internal/todo"
	"github.com/gogotex/todo-service/pkg/metrics"
)

// Instrument wraps next so every call is counted and timed under the given backend
// label. Results are labelled ok, not_found or error.
func Instrument(next Repository, backend string) Repository {
	return &instrumented{next: next, backend: backend}
}

type instrumented struct {
	next    Repository
	backend string
}

func (i *instrumented) observe(op string, start time.Time, found bool, err error) {
	result := "ok"
	switch {
	case err != nil:
		result = "error"
	case !found:
		result = "not_found"
	}
	metrics.StoreOperations.WithLabelValues(i.backend, op, result).Inc()
	metrics.StoreDuration.WithLabelValues(i.backend, op).Observe(time.Since(start).Seconds())
}

func (i *instrumented) Create(ctx context.Context, f todo.Fields) (*todo.Todo, error) {
	start := time.Now()
	t, err := i.next.Create(ctx, f)
	i.observe("create", start, t != nil, err)
	return t, err
}

func (i *instrumented) Find(ctx context.Context) ([]*todo.Todo, error) {
	start := time.Now()
	list, err := i.next.Find(ctx)
	i.observe("find", start, true, err)
	return list, err
}

func (i *instrumented) FindByID(ctx context.Context, id string) (*todo.Todo, error) {
	start := time.Now()
	t, err := i.next.FindByID(ctx, id)
	i.observe("find_by_id", start, t != nil, err)
	return t, err
}

func (i *instrumented) FindByIDAndUpdate(ctx context.Context, id string, f todo.Fields) (*todo.Todo, error) {
	start := time.Now()
	t, err := i.next.FindByIDAndUpdate(ctx, id, f)
	i.observe("update", start, t != nil, err)
	return t, err
}

func (i *instrumented) FindByIDAndDelete(ctx context.Context, id string) (*todo.Todo, error) {
	start := time.Now()
	t, err := i.next.FindByIDAndDelete(ctx, id)
	i.observe("delete", start, t != nil, err)
	return t, err
}

// Ping forwards to the wrapped store when it supports pinging.
func (i *instrumented) Ping(ctx context.Context) error {
	if p, ok := i.next.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
