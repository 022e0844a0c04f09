// Package scheduling covers the appointment book: booking, rescheduling
// and cancellation of visits against the patient and provider directories.
package scheduling

// Status is the appointment lifecycle state. Cancelled is terminal.
type Status string

const (
	StatusConfirmed Status = "Confirmed"
	StatusPending   Status = "Pending"
	StatusCancelled Status = "Cancelled"
)

// Appointment is one booked visit. Date is YYYY-MM-DD and Time is a
// twelve-hour clock string such as "09:30 AM".
type Appointment struct {
	ID        int    `json:"id"`
	PatientID int    `json:"patient_id"`
	DoctorID  int    `json:"doctor_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Type      string `json:"type"`
	Status    Status `json:"status"`
}

// Draft carries the user-editable fields of the booking form. Time is
// accepted as entered and normalized during validation.
type Draft struct {
	PatientID int    `json:"patient_id"`
	DoctorID  int    `json:"doctor_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Type      string `json:"type"`
}

// Filter narrows a listing. Zero values mean no restriction.
type Filter struct {
	PatientID int
	DoctorID  int
	Status    Status
}
