// Package billing holds patient invoices. Invoice ids are a zero-padded
// sequence with an INV- prefix rather than bare integers.
package billing

// Status is the invoice payment state.
type Status string

const (
	StatusPaid    Status = "Paid"
	StatusPending Status = "Pending"
	StatusOverdue Status = "Overdue"
)

func validStatus(s Status) bool {
	return s == StatusPaid || s == StatusPending || s == StatusOverdue
}

// Invoice is one bill raised against a patient. AppointmentID links the
// visit being billed when there is one.
type Invoice struct {
	ID            string  `json:"id"`
	PatientID     int     `json:"patient_id"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	Status        Status  `json:"status"`
	AppointmentID int     `json:"appointment_id,omitempty"`
}

// Draft carries the invoice form fields. Amount arrives as entered so
// validation owns the parse.
type Draft struct {
	PatientID     int    `json:"patient_id"`
	Date          string `json:"date"`
	Amount        string `json:"amount"`
	AppointmentID int    `json:"appointment_id"`
}
