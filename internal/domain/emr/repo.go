package emr

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("record not found")

// Repository is the chart entry collection contract.
type Repository interface {
	List(ctx context.Context) ([]*Record, error)
	GetByID(ctx context.Context, id int) (*Record, error)
	Insert(ctx context.Context, r *Record) error
	Replace(ctx context.Context, r *Record) error
}
