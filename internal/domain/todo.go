package domain

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Domain entity: бизнес-объект (истина).
// Не зависит от Gin, Postgres, Mongo, Redis.
type Todo struct {
	ID          string
	Title       string
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Field limits enforced on create.
const (
	MaxTitleLen       = 50
	MaxDescriptionLen = 50
)

// ValidationError reports a title/description constraint violation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Validate checks the constraints every persisted Todo must satisfy:
// title and description present, non-empty, at most 50 characters
// each. Runs before any create write.
func Validate(title, description string) error {
	if title == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return &ValidationError{Field: "title", Reason: fmt.Sprintf("must be at most %d characters", MaxTitleLen)}
	}
	if description == "" {
		return &ValidationError{Field: "description", Reason: "is required"}
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLen {
		return &ValidationError{Field: "description", Reason: fmt.Sprintf("must be at most %d characters", MaxDescriptionLen)}
	}
	return nil
}
