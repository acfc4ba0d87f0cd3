// internal/model/employee.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/slipcheck/platform/internal/authz"
)

// Employee binds a User to a Company with a role. The partial unique index on
// user_id enforces the single-active-binding invariant at the store level;
// application checks alone are not atomic under concurrent creation.
type Employee struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"company_id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uniq_employees_active_user,where:is_active = true" json:"user_id"`
	EmployeeNumber  string         `gorm:"type:text;not null" json:"employee_number"`
	Role            authz.Role     `gorm:"type:text;not null" json:"role"`
	SiteAssignments pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"site_assignments"`
	IsActive        bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`

	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
	User    User    `gorm:"foreignKey:UserID" json:"-"`
}

// Unrestricted reports whether the employee sees every company site. An empty
// assignment list is the sentinel for "unrestricted", not "no access".
func (e *Employee) Unrestricted() bool {
	return len(e.SiteAssignments) == 0 || e.Role.Can(authz.CapManageSites)
}

// CanAccessSite reports whether the employee may read or report on the site.
func (e *Employee) CanAccessSite(siteID uuid.UUID) bool {
	if e.Unrestricted() {
		return true
	}
	id := siteID.String()
	for _, assigned := range e.SiteAssignments {
		if assigned == id {
			return true
		}
	}
	return false
}
