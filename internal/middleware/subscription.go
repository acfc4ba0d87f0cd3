// internal/middleware/subscription.go
package middleware

import (
	"net/http"
	"time"

	"github.com/slipcheck/platform/internal/model"
	"github.com/slipcheck/platform/internal/repository"
)

// RequireActiveSubscription gates billed mutations. The write goes through
// when either the company's subscription stands (active, or trial still
// running) or the owner's own subscription does. Reads are never gated, so
// lapsed tenants can still see and export their history.
func RequireActiveSubscription(userRepo repository.UserRepositoryIface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			company, ok := CompanyFromContext(r.Context())
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			now := time.Now().UTC()
			if company.SubscriptionStatus == model.SubscriptionActive || company.TrialCurrent(now) {
				next.ServeHTTP(w, r)
				return
			}

			if employee, ok := EmployeeFromContext(r.Context()); ok {
				user, err := userRepo.FindByID(r.Context(), employee.UserID)
				if err == nil && user.SubscriptionCurrent(now) {
					next.ServeHTTP(w, r)
					return
				}
			}

			respondWithError(w, http.StatusPaymentRequired, "Subscription inactive")
		})
	}
}
