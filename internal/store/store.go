// Package store holds the employee record collection.
package store

import (
	"context"
	"errors"

	"employee-portal/internal/models"
)

var ErrNotFound = errors.New("employee not found")

// RecordStore is the document collection the create-employee workflow writes to.
// Write has set-document semantics: it creates the record or replaces the one
// already stored under id.
type RecordStore interface {
	Count(ctx context.Context) (int, error)
	Write(ctx context.Context, id string, e models.Employee) error
	List(ctx context.Context) ([]models.Employee, error)
	Get(ctx context.Context, id string) (models.Employee, error)
}
