package doctors

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("doctor not found")

// Repository is the doctor collection contract.
type Repository interface {
	List(ctx context.Context) ([]*Doctor, error)
	GetByID(ctx context.Context, id int) (*Doctor, error)
	Insert(ctx context.Context, d *Doctor) error
	Replace(ctx context.Context, d *Doctor) error
}
