// internal/authz/role.go
package authz

import "github.com/slipcheck/platform/internal/domain"

// Role is a company-scoped privilege level. Capability sets are strictly
// nested: owner ⊇ admin ⊇ manager ⊇ employee.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Capability names a permission that an operation requires.
type Capability string

const (
	CapCreateOwnReports Capability = "create_own_reports"
	CapViewAllReports   Capability = "view_all_reports"
	CapManageSites      Capability = "manage_sites"
	CapExportData       Capability = "export_data"
	CapManageEmployees  Capability = "manage_employees"
	CapManageSettings   Capability = "manage_settings"
	CapViewBilling      Capability = "view_billing"
	CapDeleteCompany    Capability = "delete_company"
)

// rank orders roles from least to most privileged. Because capability sets
// are strictly nested, a single least-privileged-role table is enough to
// express the whole permission matrix and keeps checks monotonic.
var rank = map[Role]int{
	RoleEmployee: 1,
	RoleManager:  2,
	RoleAdmin:    3,
	RoleOwner:    4,
}

// minRole is the least privileged role granted each capability.
var minRole = map[Capability]Role{
	CapCreateOwnReports: RoleEmployee,
	CapViewAllReports:   RoleManager,
	CapManageSites:      RoleManager,
	CapExportData:       RoleManager,
	CapManageEmployees:  RoleAdmin,
	CapManageSettings:   RoleAdmin,
	CapViewBilling:      RoleOwner,
	CapDeleteCompany:    RoleOwner,
}

// Can reports whether the role grants the capability. Unknown roles and
// unknown capabilities always deny.
func (r Role) Can(c Capability) bool {
	min, ok := minRole[c]
	if !ok {
		return false
	}
	rr, ok := rank[r]
	if !ok {
		return false
	}
	return rr >= rank[min]
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := rank[r]
	return ok
}

// ParseRole validates a client-supplied role string.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", domain.ErrInvalidRole
	}
	return r, nil
}

// Invitable reports whether the role may be granted through an invitation.
// Ownership is only ever established by creating a company.
func (r Role) Invitable() bool {
	return r.Valid() && r != RoleOwner
}
