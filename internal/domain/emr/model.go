// Package emr holds the electronic medical record chart: dated clinical
// entries of a handful of record types attached to a patient.
package emr

// RecordType enumerates the chart entry kinds.
type RecordType string

const (
	TypeProgressNote  RecordType = "Progress Note"
	TypeAllergy       RecordType = "Allergy"
	TypeMedication    RecordType = "Medication"
	TypeLabResult     RecordType = "Lab Result"
	TypeImagingReport RecordType = "Imaging Report"
)

// RecordTypes lists the valid chart entry kinds in display order.
func RecordTypes() []RecordType {
	return []RecordType{TypeProgressNote, TypeAllergy, TypeMedication, TypeLabResult, TypeImagingReport}
}

func validType(t RecordType) bool {
	for _, rt := range RecordTypes() {
		if t == rt {
			return true
		}
	}
	return false
}

// Record is one chart entry. Medication records store their structured
// fields encoded into Details; see MedicationDetails.
type Record struct {
	ID        int        `json:"id"`
	PatientID int        `json:"patient_id"`
	Type      RecordType `json:"type"`
	Date      string     `json:"date"`
	Title     string     `json:"title"`
	Details   string     `json:"details"`
	Author    string     `json:"author"`
}

// Draft carries the record form fields. The medication fields are only
// consulted when Type is Medication; Details is ignored for those and
// composed from the structured fields instead.
type Draft struct {
	PatientID int        `json:"patient_id"`
	Type      RecordType `json:"type"`
	Date      string     `json:"date"`
	Title     string     `json:"title"`
	Details   string     `json:"details"`
	Dosage    string     `json:"dosage"`
	Frequency string     `json:"frequency"`
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date"`
	Notes     string     `json:"notes"`
}
