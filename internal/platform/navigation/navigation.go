// Package navigation holds the canonical sidebar catalog and the filter
// that prunes it per identity. The filter goes through the same HasRole
// predicate as the route guard, so the menu can never advertise a
// destination the guard would refuse.
package navigation

import (
	"github.com/hmspro/hms/internal/platform/auth"
)

// Item is one navigable destination.
type Item struct {
	Name         string      `json:"name"`
	Href         string      `json:"href"`
	Icon         string      `json:"icon"`
	AllowedRoles []auth.Role `json:"-"`
}

// Catalog is the canonical navigation list in display order.
func Catalog() []Item {
	return []Item{
		{Name: "Dashboard", Href: "/dashboard", Icon: "dashboard", AllowedRoles: []auth.Role{auth.RoleAdmin, auth.RoleDoctor, auth.RoleNurse, auth.RoleReceptionist, auth.RolePatient}},
		{Name: "Patients", Href: "/patients", Icon: "patients", AllowedRoles: []auth.Role{auth.RoleAdmin, auth.RoleDoctor, auth.RoleNurse, auth.RoleReceptionist}},
		{Name: "Doctors", Href: "/doctors", Icon: "doctor", AllowedRoles: []auth.Role{auth.RoleAdmin, auth.RoleReceptionist}},
		{Name: "Appointments", Href: "/appointments", Icon: "appointments", AllowedRoles: []auth.Role{auth.RoleAdmin, auth.RoleDoctor, auth.RoleNurse, auth.RoleReceptionist, auth.RolePatient}},
		{Name: "EMR", Href: "/emr", Icon: "emr", AllowedRoles: []auth.Role{auth.RoleAdmin, auth.RoleDoctor, auth.RoleNurse}},
		{Name: "Billing", Href: "/billing", Icon: "billing", AllowedRoles: []auth.Role{auth.RoleAdmin, auth.RoleReceptionist}},
		{Name: "Project Plan", Href: "/plan", Icon: "roadmap", AllowedRoles: []auth.Role{auth.RoleAdmin, auth.RoleDoctor, auth.RoleNurse, auth.RoleReceptionist, auth.RolePatient}},
	}
}

// VisibleItems returns the ordered subset of items the identity may reach.
func VisibleItems(items []Item, current *auth.Identity) []Item {
	visible := make([]Item, 0, len(items))
	for _, item := range items {
		if auth.HasRole(current, item.AllowedRoles...) {
			visible = append(visible, item)
		}
	}
	return visible
}
