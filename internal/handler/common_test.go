package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slipcheck/platform/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"insufficient role", domain.ErrInsufficientRole, http.StatusForbidden},
		{"owner role reserved", domain.ErrOwnerRoleReserved, http.StatusForbidden},
		{"company inactive", domain.ErrCompanyInactive, http.StatusForbidden},
		{"employee not found", domain.ErrEmployeeNotFound, http.StatusNotFound},
		{"site not found", domain.ErrSiteNotFound, http.StatusNotFound},
		{"report not found", domain.ErrReportNotFound, http.StatusNotFound},
		{"invitation not found", domain.ErrInvitationNotFound, http.StatusNotFound},

		// Conflicts are 400 with an actionable message, never 409/410.
		{"slug taken", domain.ErrSlugTaken, http.StatusBadRequest},
		{"already member", domain.ErrAlreadyMember, http.StatusBadRequest},
		{"duplicate invitation", domain.ErrDuplicateInvitation, http.StatusBadRequest},
		{"seat limit", domain.ErrSeatLimitReached, http.StatusBadRequest},
		{"site limit", domain.ErrSiteLimitReached, http.StatusBadRequest},
		{"email exists", domain.ErrEmailAlreadyExists, http.StatusBadRequest},
		{"report not draft", domain.ErrReportNotDraft, http.StatusBadRequest},
		{"invitation expired", domain.ErrInvitationExpired, http.StatusBadRequest},
		{"invitation accepted", domain.ErrInvitationAccepted, http.StatusBadRequest},

		{"subscription inactive", domain.ErrSubscriptionInactive, http.StatusPaymentRequired},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondWithDomainError(rec, tt.err)

			assert.Equal(t, tt.want, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestConflictMessagesAreActionable(t *testing.T) {
	// A 400 is only useful when the body says what to change.
	rec := httptest.NewRecorder()
	respondWithDomainError(rec, domain.ErrInvitationExpired)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Contains(t, body.Error, "request a new invitation")
}
