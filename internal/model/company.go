// internal/model/company.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Company is the tenant. All business data is scoped to exactly one company.
// Companies are soft-deactivated, never hard-deleted, so historical reports
// keep their attribution.
type Company struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name               string             `gorm:"type:text;not null" json:"name"`
	Slug               string             `gorm:"type:text;uniqueIndex;not null" json:"slug"`
	Address            string             `gorm:"type:text" json:"address,omitempty"`
	Phone              string             `gorm:"type:text" json:"phone,omitempty"`
	Email              string             `gorm:"type:text" json:"email,omitempty"`
	SubscriptionPlan   string             `gorm:"type:text;not null;default:'trial'" json:"subscription_plan"`
	SubscriptionStatus SubscriptionStatus `gorm:"type:text;not null;default:'trialing'" json:"subscription_status"`
	TrialEndsAt        time.Time          `json:"trial_ends_at"`
	MaxEmployees       int                `gorm:"not null;default:25" json:"max_employees"`
	MaxSites           int                `gorm:"not null;default:50" json:"max_sites"`
	IsActive           bool               `gorm:"not null;default:true" json:"is_active"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`

	Employees []Employee `gorm:"foreignKey:CompanyID" json:"-"`
}

// TrialCurrent reports whether the company trial window is still running.
func (c *Company) TrialCurrent(now time.Time) bool {
	return c.SubscriptionStatus == SubscriptionTrialing && now.Before(c.TrialEndsAt)
}
