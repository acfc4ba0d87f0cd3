// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// User is a human identity. Company membership lives on Employee, never here;
// users are soft-lifecycle only and are never deleted.
type User struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email              string             `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	Name               string             `gorm:"type:text;not null" json:"name"`
	PasswordHash       string             `gorm:"type:text;not null" json:"-"`
	SubscriptionStatus SubscriptionStatus `gorm:"type:text;not null;default:'trialing'" json:"subscription_status"`
	TrialEndsAt        time.Time          `json:"trial_ends_at"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// SubscriptionCurrent reports whether the user may perform billed mutations:
// an active subscription, or a trial window that has not lapsed.
func (u *User) SubscriptionCurrent(now time.Time) bool {
	switch u.SubscriptionStatus {
	case SubscriptionActive:
		return true
	case SubscriptionTrialing:
		return now.Before(u.TrialEndsAt)
	default:
		return false
	}
}
