// internal/middleware/employee.go
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/slipcheck/platform/internal/domain"
	"github.com/slipcheck/platform/internal/model"
	"github.com/slipcheck/platform/internal/repository"
)

// RequireEmployee resolves the caller's active company binding and stashes
// both the employee and the company. A user without a binding gets 404, never
// a hint about other tenants. The binding is resolved fresh on every request
// so role changes and removals take effect immediately.
func RequireEmployee(employeeRepo repository.EmployeeRepositoryIface, companyRepo repository.CompanyRepositoryIface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFromContext(r.Context())
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			// Lookup failures fail closed: denying access is the safe default,
			// so anything short of a resolved binding reads as absence.
			employee, err := employeeRepo.FindActiveByUser(r.Context(), userID)
			if err != nil {
				if !errors.Is(err, domain.ErrEmployeeNotFound) {
					slog.ErrorContext(r.Context(), "membership lookup failed",
						"user_id", userID.String(),
						"error", err,
					)
				}
				respondWithError(w, http.StatusNotFound, "Employee not found")
				return
			}

			company, err := companyRepo.FindByID(r.Context(), employee.CompanyID)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Failed to resolve company")
				return
			}
			if !company.IsActive {
				respondWithError(w, http.StatusForbidden, "Company is deactivated")
				return
			}

			ctx := context.WithValue(r.Context(), EmployeeKey, employee)
			ctx = context.WithValue(ctx, CompanyKey, company)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EmployeeFromContext returns the caller's binding set by RequireEmployee.
func EmployeeFromContext(ctx context.Context) (*model.Employee, bool) {
	employee, ok := ctx.Value(EmployeeKey).(*model.Employee)
	return employee, ok
}

// CompanyFromContext returns the caller's company set by RequireEmployee.
func CompanyFromContext(ctx context.Context) (*model.Company, bool) {
	company, ok := ctx.Value(CompanyKey).(*model.Company)
	return company, ok
}
