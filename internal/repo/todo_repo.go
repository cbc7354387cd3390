package repo

import (
	"context"
	"errors"
	"time"

	dom "github.com/raushan0147/ToDoBackend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when no record exists for the given id.
// Malformed ids behave the same way: the store simply has no such
// record.
var ErrNotFound = errors.New("not found")

// TodoRepo is the persistence port consumed by the service layer.
// Implementations exist for Postgres, Mongo, and an in-memory map.
type TodoRepo interface {
	// Insert assigns id/createdAt/updatedAt and persists the record.
	Insert(ctx context.Context, title, description string) (dom.Todo, error)
	FindAll(ctx context.Context) ([]dom.Todo, error)
	FindByID(ctx context.Context, id string) (dom.Todo, error)
	// UpdateByID replaces title/description and sets updatedAt to now,
	// returning the post-update record.
	UpdateByID(ctx context.Context, id, title, description string, now time.Time) (dom.Todo, error)
	DeleteByID(ctx context.Context, id string) error
}

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) Insert(ctx context.Context, title, description string) (dom.Todo, error) {
	query := `
		INSERT INTO todos (id, title, description)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, created_at, updated_at`
	var out dom.Todo
	err := r.db.QueryRow(ctx, query, uuid.NewString(), title, description).Scan(
		&out.ID, &out.Title, &out.Description, &out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGTodoRepo) FindAll(ctx context.Context) ([]dom.Todo, error) {
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM todos ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoRepo) FindByID(ctx context.Context, id string) (dom.Todo, error) {
	if _, err := uuid.Parse(id); err != nil {
		return dom.Todo{}, ErrNotFound
	}
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM todos WHERE id = $1`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Todo{}, ErrNotFound
	}
	return t, err
}

func (r *PGTodoRepo) UpdateByID(ctx context.Context, id, title, description string, now time.Time) (dom.Todo, error) {
	if _, err := uuid.Parse(id); err != nil {
		return dom.Todo{}, ErrNotFound
	}
	query := `
		UPDATE todos SET title = $2, description = $3, updated_at = $4
		WHERE id = $1
		RETURNING id, title, description, created_at, updated_at`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id, title, description, now).Scan(
		&t.ID, &t.Title, &t.Description, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Todo{}, ErrNotFound
	}
	return t, err
}

func (r *PGTodoRepo) DeleteByID(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
