package service

import (
	"context"
	"errors"
	"strings"
	"time"

	dom "github.com/raushan0147/ToDoBackend/internal/domain"
	"github.com/raushan0147/ToDoBackend/internal/repo"

	"golang.org/x/sync/singleflight"

	"github.com/raushan0147/ToDoBackend/internal/cache"
)

// Kind tags a Failure so the transport layer can pick a status code
// without inspecting error internals.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindInternal
)

// Failure is the error arm of every operation's tagged result; a nil
// error means success.
type Failure struct {
	Kind    Kind
	Message string
}

func (f *Failure) Error() string { return f.Message }

const msgNotFound = "no data find for given id"

func notFound() *Failure {
	return &Failure{Kind: KindNotFound, Message: msgNotFound}
}

func internal(err error) *Failure {
	return &Failure{Kind: KindInternal, Message: err.Error()}
}

type TodoService struct {
	repo  repo.TodoRepo
	cache *cache.TodoCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c *cache.TodoCache) *TodoService {
	return &TodoService{repo: r, cache: c}
}

// Create validates title/description and inserts a new record. Nothing
// is written when validation fails.
func (s *TodoService) Create(ctx context.Context, title, description string) (dom.Todo, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if err := dom.Validate(title, description); err != nil {
		return dom.Todo{}, &Failure{Kind: KindValidation, Message: err.Error()}
	}
	t, err := s.repo.Insert(ctx, title, description)
	if err != nil {
		return dom.Todo{}, internal(err)
	}
	s.invalidateCache(ctx)
	return t, nil
}

// List returns every stored record; an empty list is a success.
func (s *TodoService) List(ctx context.Context) ([]dom.Todo, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.FindAll(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, internal(err)
		}
		return v.([]dom.Todo), nil
	}
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return list, nil
}

func (s *TodoService) GetByID(ctx context.Context, id string) (dom.Todo, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dom.Todo{}, notFound()
		}
		return dom.Todo{}, internal(err)
	}
	return t, nil
}

// Update replaces title/description as given and refreshes updatedAt.
// It does not re-run the create-time length checks.
func (s *TodoService) Update(ctx context.Context, id, title, description string) (dom.Todo, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	t, err := s.repo.UpdateByID(ctx, id, title, description, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dom.Todo{}, notFound()
		}
		return dom.Todo{}, internal(err)
	}
	s.invalidateCache(ctx)
	return t, nil
}

// Delete removes the record for good. Deleting a missing id reports
// not found, never a crash.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound()
		}
		return internal(err)
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *TodoService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
