package patients

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an id has no entry in the collection.
var ErrNotFound = errors.New("patient not found")

type Repository interface {
	List(ctx context.Context) ([]*Patient, error)
	GetByID(ctx context.Context, id int) (*Patient, error)
	// Insert assigns the next id (max existing + 1) and appends.
	Insert(ctx context.Context, p *Patient) error
	// Replace swaps the entry matching p.ID in place.
	Replace(ctx context.Context, p *Patient) error
}
