// internal/model/site.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SitePriority string

const (
	PriorityHigh   SitePriority = "high"
	PriorityMedium SitePriority = "medium"
	PriorityLow    SitePriority = "low"
)

// Site is a company-scoped service location. Sites referenced by reports are
// soft-deleted so report history stays intact; unreferenced sites may be
// removed outright.
type Site struct {
	ID                 uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID          uuid.UUID    `gorm:"type:uuid;not null;index" json:"company_id"`
	Name               string       `gorm:"type:text;not null" json:"name"`
	Address            string       `gorm:"type:text;not null" json:"address"`
	Priority           SitePriority `gorm:"type:text;not null;default:'medium'" json:"priority"`
	SizeSqft           float64      `json:"size_sqft"`
	TypicalSaltUsageKg float64      `json:"typical_salt_usage_kg"`
	Latitude           *float64     `json:"latitude,omitempty"`
	Longitude          *float64     `json:"longitude,omitempty"`
	IsActive           bool         `gorm:"not null;default:true" json:"is_active"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`

	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
}
