package model

import "slices"

// RoleName identifies one of the built-in staff roles.
type RoleName string

const (
	RoleSuperAdmin RoleName = "SUPER_ADMIN"
	RoleAdmin      RoleName = "ADMIN"
	RoleManager    RoleName = "MANAGER"
	RoleCashier    RoleName = "CASHIER"
	RoleBarista    RoleName = "BARISTA"
)

// Permission is a capability token granted through a role.
type Permission string

const (
	PermManageUsers    Permission = "manage_users"
	PermManageRoles    Permission = "manage_roles"
	PermManageMenu     Permission = "manage_menu"
	PermManageStock    Permission = "manage_stock"
	PermViewReports    Permission = "view_reports"
	PermManageSettings Permission = "manage_settings"
	PermProcessSales   Permission = "process_sales"
	PermViewAnalytics  Permission = "view_analytics"
	PermManageSystem   Permission = "manage_system"
	PermViewMenu       Permission = "view_menu"
)

// AllPermissions lists every known permission in display order.
var AllPermissions = []Permission{
	PermManageUsers,
	PermManageRoles,
	PermManageMenu,
	PermManageStock,
	PermViewReports,
	PermManageSettings,
	PermProcessSales,
	PermViewAnalytics,
	PermManageSystem,
	PermViewMenu,
}

// Valid reports whether p is one of the known permissions.
func (p Permission) Valid() bool {
	return slices.Contains(AllPermissions, p)
}

// Role is a static privilege level. A lower Level means more privilege.
type Role struct {
	Name        RoleName     `json:"name" yaml:"name"`
	DisplayName string       `json:"display_name" yaml:"display_name"`
	Level       int          `json:"level" yaml:"level"`
	Permissions []Permission `json:"permissions" yaml:"permissions"`
}

// Has reports whether the role grants p.
func (r Role) Has(p Permission) bool {
	return slices.Contains(r.Permissions, p)
}

var roles = []Role{
	{
		Name:        RoleSuperAdmin,
		DisplayName: "Super Admin",
		Level:       0,
		Permissions: []Permission{
			PermManageUsers, PermManageRoles, PermManageMenu, PermManageStock, PermViewReports,
			PermManageSettings, PermProcessSales, PermViewAnalytics, PermManageSystem,
		},
	},
	{
		Name:        RoleAdmin,
		DisplayName: "Admin",
		Level:       1,
		Permissions: []Permission{
			PermManageUsers, PermManageMenu, PermManageStock, PermViewReports,
			PermManageSettings, PermProcessSales, PermViewAnalytics,
		},
	},
	{
		Name:        RoleManager,
		DisplayName: "Manager",
		Level:       2,
		Permissions: []Permission{
			PermManageMenu, PermManageStock, PermViewReports, PermProcessSales, PermViewAnalytics,
		},
	},
	{
		Name:        RoleCashier,
		DisplayName: "Kasir",
		Level:       3,
		Permissions: []Permission{PermProcessSales, PermViewReports},
	},
	{
		Name:        RoleBarista,
		DisplayName: "Barista",
		Level:       4,
		Permissions: []Permission{PermViewMenu, PermManageStock, PermProcessSales},
	},
}

// Roles returns a copy of the role table ordered from most to least privileged.
func Roles() []Role {
	out := make([]Role, len(roles))
	for i, r := range roles {
		r.Permissions = slices.Clone(r.Permissions)
		out[i] = r
	}
	return out
}

// LookupRole finds a role by name.
func LookupRole(name RoleName) (Role, bool) {
	for _, r := range roles {
		if r.Name == name {
			r.Permissions = slices.Clone(r.Permissions)
			return r, true
		}
	}
	return Role{}, false
}

// IsAtLeast reports whether role is as privileged as minimum or more.
// Unknown roles on either side never satisfy the check.
func IsAtLeast(role, minimum RoleName) bool {
	r, ok := LookupRole(role)
	if !ok {
		return false
	}
	m, ok := LookupRole(minimum)
	if !ok {
		return false
	}
	return r.Level <= m.Level
}
