// Package doctors holds the provider directory: the staff physicians a
// receptionist schedules against.
package doctors

// Doctor is a staff physician in the directory.
type Doctor struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Specialty    string `json:"specialty"`
	ContactPhone string `json:"contact_phone"`
	Email        string `json:"email"`
}

// Draft carries the user-editable fields of the add/edit form.
type Draft struct {
	Name         string `json:"name"`
	Specialty    string `json:"specialty"`
	ContactPhone string `json:"contact_phone"`
	Email        string `json:"email"`
}
