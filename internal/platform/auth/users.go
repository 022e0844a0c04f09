package auth

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// User is a registered account. Passwords are stored in clear because the
// registry only backs the demo credential flow; there is no real credential
// store behind it.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Title    string `json:"title"`
	Password string `json:"-"`
}

// Identity returns the role-bearing profile for the user.
func (u *User) Identity() *Identity {
	return &Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Title: u.Title}
}

// ErrEmailTaken is returned by Register when the lowercased email already
// has an account. Uniqueness is enforced at registration only, never at
// login.
var ErrEmailTaken = fmt.Errorf("an account with this email already exists")

// Registry is the registered-users table, keyed by lowercased email.
type Registry struct {
	mu    sync.RWMutex
	users map[string]*User
}

// NewRegistry builds a registry from the seed accounts.
func NewRegistry(seed []User) *Registry {
	r := &Registry{users: make(map[string]*User, len(seed))}
	for i := range seed {
		u := seed[i]
		u.Email = strings.ToLower(u.Email)
		r.users[u.Email] = &u
	}
	return r
}

// Authenticate looks up the lowercased email and matches the password.
func (r *Registry) Authenticate(email, password string) (*User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[strings.ToLower(email)]
	if !ok || u.Password != password {
		return nil, false
	}
	return u, true
}

// Register adds a new account. The email is lowercased and must be unique;
// the title is derived from the role.
func (r *Registry) Register(name, email, password string, role Role) (*User, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[key]; exists {
		return nil, ErrEmailTaken
	}
	u := &User{
		ID:       strconv.Itoa(len(r.users) + 1),
		Name:     name,
		Email:    key,
		Role:     role,
		Title:    titleForRole(role),
		Password: password,
	}
	r.users[key] = u
	return u, nil
}

// FindByRole returns a registered user holding the given role, if any.
// Used by the demo role-switch operation.
func (r *Registry) FindByRole(role Role) (*User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Role == role {
			return u, true
		}
	}
	return nil, false
}

func titleForRole(role Role) string {
	s := string(role)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
