package billing

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("invoice not found")

// Repository is the invoice collection contract. Insert assigns the next
// id in the INV-NNN sequence.
type Repository interface {
	List(ctx context.Context) ([]*Invoice, error)
	GetByID(ctx context.Context, id string) (*Invoice, error)
	Insert(ctx context.Context, inv *Invoice) error
	Replace(ctx context.Context, inv *Invoice) error
}
