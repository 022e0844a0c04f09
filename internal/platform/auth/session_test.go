package auth

import "testing"

func TestSessionLifecycle(t *testing.T) {
	store := NewSessionStore()
	ident := &Identity{ID: "1", Name: "Dr. Carol Evans", Role: RoleDoctor}

	sid := store.Create(ident)
	got, ok := store.Identity(sid)
	if !ok {
		t.Fatal("expected live session after Create")
	}
	if got.ID != "1" || got.Role != RoleDoctor {
		t.Errorf("unexpected identity: %+v", got)
	}

	// Role switch replaces the identity in place.
	admin := &Identity{ID: "0", Name: "Alex Admin", Role: RoleAdmin}
	store.SetIdentity(sid, admin)
	got, ok = store.Identity(sid)
	if !ok || got.Role != RoleAdmin {
		t.Errorf("expected admin identity after switch, got %+v", got)
	}

	// Logout clears the session.
	store.SetIdentity(sid, nil)
	if _, ok := store.Identity(sid); ok {
		t.Error("expected no identity after logout")
	}
}

func TestSessionIDsAreDistinct(t *testing.T) {
	store := NewSessionStore()
	ident := &Identity{ID: "1", Role: RoleNurse}
	a := store.Create(ident)
	b := store.Create(ident)
	if a == b {
		t.Error("two sessions for the same identity must have distinct ids")
	}
}

func TestRegistry_Authenticate(t *testing.T) {
	r := NewRegistry([]User{
		{ID: "0", Name: "Alex Admin", Email: "Alex.Admin@hms.pro", Role: RoleAdmin, Password: "password123"},
	})

	// Lookup is by lowercased email.
	if _, ok := r.Authenticate("alex.admin@hms.pro", "password123"); !ok {
		t.Error("expected login with lowercased email to succeed")
	}
	if _, ok := r.Authenticate("ALEX.ADMIN@HMS.PRO", "password123"); !ok {
		t.Error("expected login with uppercased email to succeed")
	}
	if _, ok := r.Authenticate("alex.admin@hms.pro", "wrong"); ok {
		t.Error("expected wrong password to fail")
	}
	if _, ok := r.Authenticate("nobody@hms.pro", "password123"); ok {
		t.Error("expected unknown email to fail")
	}
}

func TestRegistry_RegisterUniqueness(t *testing.T) {
	r := NewRegistry([]User{
		{ID: "0", Name: "Alex Admin", Email: "alex.admin@hms.pro", Role: RoleAdmin, Password: "password123"},
	})

	u, err := r.Register("Pat Patient", "Pat.Patient@Email.com", "secret", RolePatient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "pat.patient@email.com" {
		t.Errorf("email should be stored lowercased, got %q", u.Email)
	}
	if u.Title != "Patient" {
		t.Errorf("title should derive from role, got %q", u.Title)
	}

	// Case-insensitive uniqueness at registration.
	if _, err := r.Register("Other", "PAT.PATIENT@email.com", "x", RolePatient); err != ErrEmailTaken {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegistry_FindByRole(t *testing.T) {
	r := NewRegistry([]User{
		{ID: "1", Name: "Nancy Nurse", Email: "nancy.nurse@hms.pro", Role: RoleNurse, Password: "password123"},
	})
	if _, ok := r.FindByRole(RoleNurse); !ok {
		t.Error("expected to find nurse")
	}
	if _, ok := r.FindByRole(RoleReceptionist); ok {
		t.Error("expected no receptionist")
	}
}
