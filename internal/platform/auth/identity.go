// Package auth holds the session identity model and the single role
// predicate every access-control site in the server goes through: the JWT
// middleware, the RequireRole route guard, and the navigation filter.
package auth

// Role is one of the closed set of permission classes an identity can hold.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleNurse        Role = "nurse"
	RoleReceptionist Role = "receptionist"
	RolePatient      Role = "patient"
)

// AllRoles returns the role catalog in canonical order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist, RolePatient}
}

// ParseRole maps a string onto the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist, RolePatient:
		return Role(s), true
	}
	return "", false
}

// Identity is the role-bearing profile of the current user.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Title string `json:"title"`
}

// HasRole decides whether current may reach a resource restricted to the
// given roles. A nil identity never passes. An admin passes every check,
// including checks whose set does not contain admin. An empty required set
// means the resource carries no restriction, so any identity passes.
// All other roles pass only by literal set membership.
func HasRole(current *Identity, required ...Role) bool {
	if current == nil {
		return false
	}
	if current.Role == RoleAdmin {
		return true
	}
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if current.Role == r {
			return true
		}
	}
	return false
}
