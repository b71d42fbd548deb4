package catalog

import (
	"errors"
	"fmt"

	"github.com/mrlokans/bookdirectory/internal/entities"
)

// ErrNotFound is returned by stores when a record does not exist, and
// matched by every NotFoundError.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a missing book or an empty collection.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// BookNotFound builds the error returned when no book has the given id.
func BookNotFound(id string) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Book #%s not found", id)}
}

// BooksNotFound builds the error returned when the collection is empty.
func BooksNotFound() *NotFoundError {
	return &NotFoundError{Message: "Books data not found!"}
}

// ValidationError reports input that broke one or more constraints.
type ValidationError struct {
	Violations entities.Violations
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Violations.String()
}

// IsNotFound reports whether err is, or wraps, a not-found failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
