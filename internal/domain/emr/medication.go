package emr

import "strings"

// MedicationDetails is the structured form of a medication record's
// Details string. The chart stores medications as labelled sentences so
// the record renders as plain text, and the edit form round-trips the
// fields back out with Parse.
type MedicationDetails struct {
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Notes     string `json:"notes"`
}

var medicationLabels = []struct {
	prefix string
	get    func(*MedicationDetails) *string
}{
	{"Dosage: ", func(m *MedicationDetails) *string { return &m.Dosage }},
	{"Frequency: ", func(m *MedicationDetails) *string { return &m.Frequency }},
	{"Start Date: ", func(m *MedicationDetails) *string { return &m.StartDate }},
	{"End Date: ", func(m *MedicationDetails) *string { return &m.EndDate }},
	{"Notes: ", func(m *MedicationDetails) *string { return &m.Notes }},
}

// Format encodes the populated fields as labelled sentences joined by
// ". ". Empty fields are omitted.
func (m MedicationDetails) Format() string {
	var parts []string
	for _, l := range medicationLabels {
		if v := strings.TrimSpace(*l.get(&m)); v != "" {
			parts = append(parts, l.prefix+v)
		}
	}
	return strings.Join(parts, ". ")
}

// ParseMedicationDetails is the inverse of Format. Segments without a
// known label continue the preceding field, so values containing ". "
// survive the round trip. A details string with no labels at all is
// treated as free-form notes.
func ParseMedicationDetails(details string) MedicationDetails {
	var m MedicationDetails
	var current *string
	for _, seg := range strings.Split(details, ". ") {
		matched := false
		for _, l := range medicationLabels {
			if strings.HasPrefix(seg, l.prefix) {
				current = l.get(&m)
				*current = strings.TrimPrefix(seg, l.prefix)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		if current == nil {
			current = &m.Notes
			*current = seg
			continue
		}
		*current += ". " + seg
	}
	return m
}
