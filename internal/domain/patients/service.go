package patients

import (
	"context"
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

// validateDraft maps a draft onto a field-error map. It is re-run on every
// submission attempt and never touches the collection.
func validateDraft(d Draft) (int, validate.Errors) {
	errs := validate.Errors{}

	if strings.TrimSpace(d.Name) == "" {
		errs.Add("name", "name is required")
	}

	age, err := strconv.Atoi(strings.TrimSpace(d.Age))
	if d.Age == "" || err != nil || age <= 0 {
		errs.Add("age", "age must be a positive number")
	}

	if strings.TrimSpace(d.ContactPhone) == "" {
		errs.Add("contact_phone", "contact phone is required")
	} else if !validate.Phone(d.ContactPhone) {
		errs.Add("contact_phone", "phone must match XXX-XXX-XXXX")
	}

	if d.Gender != "Male" && d.Gender != "Female" {
		errs.Add("gender", "gender is required")
	}

	return age, errs
}

// Create validates the draft and appends a new patient. Status and last
// visit are system-assigned here, not taken from the form.
func (s *Service) Create(ctx context.Context, d Draft) (*Patient, validate.Errors, error) {
	age, errs := validateDraft(d)
	if errs.Any() {
		return nil, errs, nil
	}

	p := &Patient{
		Name:              strings.TrimSpace(d.Name),
		Age:               age,
		Gender:            d.Gender,
		ContactPhone:      strings.TrimSpace(d.ContactPhone),
		LastVisit:         validate.Today(),
		Status:            StatusStable,
		InsuranceProvider: strings.TrimSpace(d.InsuranceProvider),
		PolicyNumber:      strings.TrimSpace(d.PolicyNumber),
		GroupNumber:       strings.TrimSpace(d.GroupNumber),
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, nil, err
	}
	return p, nil, nil
}

// Update validates the draft and replaces the patient in place, preserving
// the system-assigned status and last-visit fields.
func (s *Service) Update(ctx context.Context, id int, d Draft) (*Patient, validate.Errors, error) {
	age, errs := validateDraft(d)
	if errs.Any() {
		return nil, errs, nil
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	p := &Patient{
		ID:                existing.ID,
		Name:              strings.TrimSpace(d.Name),
		Age:               age,
		Gender:            d.Gender,
		ContactPhone:      strings.TrimSpace(d.ContactPhone),
		LastVisit:         existing.LastVisit,
		Status:            existing.Status,
		InsuranceProvider: strings.TrimSpace(d.InsuranceProvider),
		PolicyNumber:      strings.TrimSpace(d.PolicyNumber),
		GroupNumber:       strings.TrimSpace(d.GroupNumber),
	}
	if err := s.repo.Replace(ctx, p); err != nil {
		return nil, nil, err
	}
	return p, nil, nil
}

func (s *Service) Get(ctx context.Context, id int) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the collection, optionally filtered by a case-insensitive
// name search.
func (s *Service) List(ctx context.Context, query string) ([]*Patient, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return all, nil
	}
	q := strings.ToLower(query)
	filtered := make([]*Patient, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}
