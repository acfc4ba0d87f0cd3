// internal/model/invitation.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/slipcheck/platform/internal/authz"
)

// Invitation is a time-limited, single-use offer to join a company at a given
// role. Acceptance must flip AcceptedAt from null exactly once; the repository
// uses a conditional update so concurrent accepts cannot both win.
type Invitation struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"company_id"`
	Email       string     `gorm:"type:citext;not null" json:"email"`
	Role        authz.Role `gorm:"type:text;not null" json:"role"`
	Code        string     `gorm:"type:text;not null;index;column:invitation_code" json:"invitation_code"`
	InvitedByID uuid.UUID  `gorm:"type:uuid;not null" json:"invited_by"`
	ExpiresAt   time.Time  `gorm:"not null" json:"expires_at"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
}

// IsExpired reports whether the invitation can no longer be accepted on time
// grounds, regardless of AcceptedAt.
func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// IsAccepted reports whether the invitation has already been consumed.
func (i *Invitation) IsAccepted() bool {
	return i.AcceptedAt != nil
}

// IsPending reports whether a new invitation for the same (company, email)
// pair must be rejected as a duplicate.
func (i *Invitation) IsPending(now time.Time) bool {
	return !i.IsAccepted() && !i.IsExpired(now)
}
