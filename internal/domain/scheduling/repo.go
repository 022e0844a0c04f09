package scheduling

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("appointment not found")

// Repository is the appointment collection contract.
type Repository interface {
	List(ctx context.Context) ([]*Appointment, error)
	GetByID(ctx context.Context, id int) (*Appointment, error)
	Insert(ctx context.Context, a *Appointment) error
	Replace(ctx context.Context, a *Appointment) error
}
