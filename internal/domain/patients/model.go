package patients

// Status is a patient's clinical status. It is system-assigned on creation
// and only ever changed by staff workflows, never by the create/edit form.
type Status string

const (
	StatusStable     Status = "Stable"
	StatusRecovering Status = "Recovering"
	StatusCritical   Status = "Critical"
)

// Patient is one directory entry.
type Patient struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Age               int    `json:"age"`
	Gender            string `json:"gender"`
	ContactPhone      string `json:"contact_phone"`
	LastVisit         string `json:"last_visit"`
	Status            Status `json:"status"`
	InsuranceProvider string `json:"insurance_provider,omitempty"`
	PolicyNumber      string `json:"policy_number,omitempty"`
	GroupNumber       string `json:"group_number,omitempty"`
}

// Draft carries the user-editable fields of the add/edit form. Age arrives
// as entered so validation owns the parse.
type Draft struct {
	Name              string `json:"name"`
	Age               string `json:"age"`
	Gender            string `json:"gender"`
	ContactPhone      string `json:"contact_phone"`
	InsuranceProvider string `json:"insurance_provider,omitempty"`
	PolicyNumber      string `json:"policy_number,omitempty"`
	GroupNumber       string `json:"group_number,omitempty"`
}
