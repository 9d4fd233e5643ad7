package auth

import "strings"

// rolePermissions whitelists dashboard resources per role; extend as new
// dashboard sections are built.
var rolePermissions = map[string][]string{
	RoleSuperAdmin: {
		"overview",
		"companies",
		"users",
		"analytics",
		"surveys",
		"settings",
		"activity_logs",
	},
	RoleCompanyAdmin: {"overview", "users", "analytics", "surveys"},
}

// RoleLabels maps role identifiers to display names.
var RoleLabels = map[string]string{
	RoleSuperAdmin:   "Super Admin",
	RoleCompanyAdmin: "Company Admin",
}

// CanAccess reports whether a role may access a dashboard resource.
func CanAccess(role, resource string) bool {
	normalized := strings.ToLower(resource)
	for _, r := range rolePermissions[role] {
		if r == normalized {
			return true
		}
	}
	return false
}
