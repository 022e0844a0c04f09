package billing

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/hmspro/hms/pkg/validate"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validateDraft(d Draft) (float64, validate.Errors) {
	errs := validate.Errors{}
	if d.PatientID <= 0 {
		errs.Add("patient_id", "patient is required")
	}
	if _, ok := validate.Date(d.Date); !ok {
		errs.Add("date", "date must be YYYY-MM-DD")
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(d.Amount), 64)
	if err != nil || math.IsInf(amount, 0) || math.IsNaN(amount) || amount <= 0 {
		errs.Add("amount", "amount must be a positive number")
	}
	return amount, errs
}

// Create raises an invoice. New invoices start out Pending.
func (s *Service) Create(ctx context.Context, d Draft) (*Invoice, validate.Errors, error) {
	amount, errs := validateDraft(d)
	if errs.Any() {
		return nil, errs, nil
	}
	inv := &Invoice{
		PatientID:     d.PatientID,
		Date:          d.Date,
		Amount:        amount,
		Status:        StatusPending,
		AppointmentID: d.AppointmentID,
	}
	if err := s.repo.Insert(ctx, inv); err != nil {
		return nil, nil, err
	}
	return inv, nil, nil
}

// Update rewrites an invoice's billable fields; the payment state is
// changed through SetStatus, not here.
func (s *Service) Update(ctx context.Context, id string, d Draft) (*Invoice, validate.Errors, error) {
	amount, errs := validateDraft(d)
	if errs.Any() {
		return nil, errs, nil
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	inv := &Invoice{
		ID:            id,
		PatientID:     d.PatientID,
		Date:          d.Date,
		Amount:        amount,
		Status:        existing.Status,
		AppointmentID: d.AppointmentID,
	}
	if err := s.repo.Replace(ctx, inv); err != nil {
		return nil, nil, err
	}
	return inv, nil, nil
}

// SetStatus moves the invoice to the given payment state.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) (*Invoice, validate.Errors, error) {
	if !validStatus(status) {
		errs := validate.Errors{}
		errs.Add("status", "unknown invoice status")
		return nil, errs, nil
	}
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	inv.Status = status
	if err := s.repo.Replace(ctx, inv); err != nil {
		return nil, nil, err
	}
	return inv, nil, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Invoice, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the ledger, optionally narrowed by payment state.
func (s *Service) List(ctx context.Context, status Status) ([]*Invoice, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return all, nil
	}
	out := all[:0]
	for _, inv := range all {
		if inv.Status == status {
			out = append(out, inv)
		}
	}
	return out, nil
}
