package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/slipcheck/platform/internal/domain"
)

type ErrorResponse struct {
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithDomainError maps service errors to HTTP statuses. Cross-tenant
// lookups surface as 404 so nothing about other tenants is disclosed.
func respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrPasswordTooWeak):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, domain.ErrInsufficientRole),
		errors.Is(err, domain.ErrOwnerRoleReserved),
		errors.Is(err, domain.ErrCannotRemoveOwner),
		errors.Is(err, domain.ErrCannotRemoveSelf),
		errors.Is(err, domain.ErrCompanyInactive),
		errors.Is(err, domain.ErrReportNotOwned),
		errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrInvitationNotFound),
		errors.Is(err, domain.ErrSiteNotFound),
		errors.Is(err, domain.ErrReportNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	// Conflicts come back as 400 with an actionable message, not 409; the
	// sentinel text already tells the caller what to change.
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrSlugTaken),
		errors.Is(err, domain.ErrAlreadyMember),
		errors.Is(err, domain.ErrDuplicateInvitation),
		errors.Is(err, domain.ErrSeatLimitReached),
		errors.Is(err, domain.ErrSiteLimitReached),
		errors.Is(err, domain.ErrReportNotDraft),
		errors.Is(err, domain.ErrInvitationExpired),
		errors.Is(err, domain.ErrInvitationAccepted):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrSubscriptionInactive):
		respondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
