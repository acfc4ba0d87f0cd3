// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooWeak    = errors.New("password too weak")
	ErrUnauthorized       = errors.New("unauthorized")

	// Company-related errors
	ErrCompanyNotFound  = errors.New("company not found")
	ErrSlugTaken        = errors.New("company slug is already taken")
	ErrCompanyInactive  = errors.New("company is deactivated")
	ErrSeatLimitReached = errors.New("employee seat limit reached")
	ErrSiteLimitReached = errors.New("site limit reached")

	// Employee-related errors
	ErrAlreadyMember     = errors.New("user already belongs to a company")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrCannotRemoveOwner = errors.New("company owner cannot be removed")
	ErrCannotRemoveSelf  = errors.New("cannot remove your own employee record")
	ErrOwnerRoleReserved = errors.New("owner role cannot be assigned")

	// Invitation-related errors
	ErrInvitationNotFound  = errors.New("invitation not found")
	ErrInvitationExpired   = errors.New("invitation has expired, request a new invitation")
	ErrInvitationAccepted  = errors.New("invitation has already been accepted")
	ErrDuplicateInvitation = errors.New("email already has a pending invitation")

	// Authorization errors
	ErrInsufficientRole = errors.New("insufficient permissions")
	ErrInvalidRole      = errors.New("invalid role")

	// Billing errors
	ErrSubscriptionInactive = errors.New("subscription required")

	// Report/site errors
	ErrSiteNotFound   = errors.New("site not found")
	ErrReportNotFound = errors.New("report not found")
	ErrReportNotDraft = errors.New("submitted reports cannot be modified")
	ErrReportNotOwned = errors.New("report belongs to another employee")
)
