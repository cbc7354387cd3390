package repo

import (
	"context"
	"sync"
	"time"

	dom "github.com/raushan0147/ToDoBackend/internal/domain"

	"github.com/google/uuid"
)

// MemTodoRepo is a map-backed TodoRepo for tests and local runs
// (STORE_DRIVER=memory). Safe for concurrent use.
type MemTodoRepo struct {
	mu    sync.RWMutex
	todos map[string]dom.Todo
}

func NewMemTodoRepo() *MemTodoRepo {
	return &MemTodoRepo{todos: make(map[string]dom.Todo)}
}

func (r *MemTodoRepo) Insert(ctx context.Context, title, description string) (dom.Todo, error) {
	now := time.Now().UTC()
	t := dom.Todo{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.mu.Lock()
	r.todos[t.ID] = t
	r.mu.Unlock()
	return t, nil
}

func (r *MemTodoRepo) FindAll(ctx context.Context) ([]dom.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]dom.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		list = append(list, t)
	}
	return list, nil
}

func (r *MemTodoRepo) FindByID(ctx context.Context, id string) (dom.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, ErrNotFound
	}
	return t, nil
}

func (r *MemTodoRepo) UpdateByID(ctx context.Context, id, title, description string, now time.Time) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok {
		return dom.Todo{}, ErrNotFound
	}
	t.Title = title
	t.Description = description
	t.UpdatedAt = now
	r.todos[id] = t
	return t, nil
}

func (r *MemTodoRepo) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.todos[id]; !ok {
		return ErrNotFound
	}
	delete(r.todos, id)
	return nil
}
