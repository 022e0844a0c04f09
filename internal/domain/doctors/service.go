package doctors

import (
	"context"
	"strings"

	"github.com/hmspro/hms/pkg/validate"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validateDraft(d Draft) validate.Errors {
	errs := validate.Errors{}
	if strings.TrimSpace(d.Name) == "" {
		errs.Add("name", "name is required")
	}
	if strings.TrimSpace(d.Specialty) == "" {
		errs.Add("specialty", "specialty is required")
	}
	if !validate.Phone(d.ContactPhone) {
		errs.Add("contact_phone", "phone must match XXX-XXX-XXXX")
	}
	if !validate.Email(d.Email) {
		errs.Add("email", "email address is invalid")
	}
	return errs
}

func (s *Service) Create(ctx context.Context, d Draft) (*Doctor, validate.Errors, error) {
	if errs := validateDraft(d); errs.Any() {
		return nil, errs, nil
	}
	doc := &Doctor{
		Name:         strings.TrimSpace(d.Name),
		Specialty:    strings.TrimSpace(d.Specialty),
		ContactPhone: strings.TrimSpace(d.ContactPhone),
		Email:        strings.TrimSpace(d.Email),
	}
	if err := s.repo.Insert(ctx, doc); err != nil {
		return nil, nil, err
	}
	return doc, nil, nil
}

func (s *Service) Update(ctx context.Context, id int, d Draft) (*Doctor, validate.Errors, error) {
	if errs := validateDraft(d); errs.Any() {
		return nil, errs, nil
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, nil, err
	}
	doc := &Doctor{
		ID:           id,
		Name:         strings.TrimSpace(d.Name),
		Specialty:    strings.TrimSpace(d.Specialty),
		ContactPhone: strings.TrimSpace(d.ContactPhone),
		Email:        strings.TrimSpace(d.Email),
	}
	if err := s.repo.Replace(ctx, doc); err != nil {
		return nil, nil, err
	}
	return doc, nil, nil
}

func (s *Service) Get(ctx context.Context, id int) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the directory, optionally filtered by a case-insensitive
// name or specialty substring.
func (s *Service) List(ctx context.Context, query string) ([]*Doctor, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all, nil
	}
	out := all[:0]
	for _, d := range all {
		if strings.Contains(strings.ToLower(d.Name), query) ||
			strings.Contains(strings.ToLower(d.Specialty), query) {
			out = append(out, d)
		}
	}
	return out, nil
}
