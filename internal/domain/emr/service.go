package emr

import (
	"context"
	"strings"
	"time"

	"github.com/hmspro/hms/pkg/validate"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) validateDraft(d Draft) validate.Errors {
	errs := validate.Errors{}
	if d.PatientID <= 0 {
		errs.Add("patient_id", "patient is required")
	}
	if !validType(d.Type) {
		errs.Add("type", "unknown record type")
	}
	if strings.TrimSpace(d.Title) == "" {
		errs.Add("title", "title is required")
	}
	when, ok := validate.Date(d.Date)
	if !ok {
		errs.Add("date", "date must be YYYY-MM-DD")
	} else if today, _ := validate.Date(s.now().Format(validate.DateLayout)); when.After(today) {
		// Chart entries document care already given.
		errs.Add("date", "date cannot be in the future")
	}

	if d.Type == TypeMedication {
		if strings.TrimSpace(d.Dosage) == "" {
			errs.Add("dosage", "dosage is required")
		}
		if strings.TrimSpace(d.Frequency) == "" {
			errs.Add("frequency", "frequency is required")
		}
		if strings.TrimSpace(d.StartDate) == "" {
			errs.Add("start_date", "start date is required")
		} else if _, ok := validate.Date(d.StartDate); !ok {
			errs.Add("start_date", "start date must be YYYY-MM-DD")
		}
		if strings.TrimSpace(d.EndDate) != "" {
			if _, ok := validate.Date(d.EndDate); !ok {
				errs.Add("end_date", "end date must be YYYY-MM-DD")
			}
		}
	} else if strings.TrimSpace(d.Details) == "" {
		errs.Add("details", "details are required")
	}
	return errs
}

func detailsFor(d Draft) string {
	if d.Type == TypeMedication {
		return MedicationDetails{
			Dosage:    strings.TrimSpace(d.Dosage),
			Frequency: strings.TrimSpace(d.Frequency),
			StartDate: strings.TrimSpace(d.StartDate),
			EndDate:   strings.TrimSpace(d.EndDate),
			Notes:     strings.TrimSpace(d.Notes),
		}.Format()
	}
	return strings.TrimSpace(d.Details)
}

// Create files a chart entry authored by the signed-in clinician.
func (s *Service) Create(ctx context.Context, d Draft, author string) (*Record, validate.Errors, error) {
	if errs := s.validateDraft(d); errs.Any() {
		return nil, errs, nil
	}
	rec := &Record{
		PatientID: d.PatientID,
		Type:      d.Type,
		Date:      d.Date,
		Title:     strings.TrimSpace(d.Title),
		Details:   detailsFor(d),
		Author:    author,
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, nil, err
	}
	return rec, nil, nil
}

// Update rewrites a chart entry. Authorship moves to the editor.
func (s *Service) Update(ctx context.Context, id int, d Draft, author string) (*Record, validate.Errors, error) {
	if errs := s.validateDraft(d); errs.Any() {
		return nil, errs, nil
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, nil, err
	}
	rec := &Record{
		ID:        id,
		PatientID: d.PatientID,
		Type:      d.Type,
		Date:      d.Date,
		Title:     strings.TrimSpace(d.Title),
		Details:   detailsFor(d),
		Author:    author,
	}
	if err := s.repo.Replace(ctx, rec); err != nil {
		return nil, nil, err
	}
	return rec, nil, nil
}

func (s *Service) Get(ctx context.Context, id int) (*Record, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the chart, optionally narrowed to a patient and record type.
func (s *Service) List(ctx context.Context, patientID int, recordType RecordType) ([]*Record, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, rec := range all {
		if patientID != 0 && rec.PatientID != patientID {
			continue
		}
		if recordType != "" && rec.Type != recordType {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
