// internal/handler/company.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/slipcheck/platform/internal/authz"
	"github.com/slipcheck/platform/internal/domain"
	"github.com/slipcheck/platform/internal/middleware"
	"github.com/slipcheck/platform/internal/service"
)

type CompanyHandler struct {
	companyService  *service.CompanyService
	employeeService *service.EmployeeService
}

func NewCompanyHandler(companyService *service.CompanyService, employeeService *service.EmployeeService) *CompanyHandler {
	return &CompanyHandler{
		companyService:  companyService,
		employeeService: employeeService,
	}
}

// Create handles POST /companies. The caller becomes the owner; users already
// bound to a company are rejected.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var input service.CreateCompanyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	output, err := h.companyService.Create(r.Context(), userID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, output)
}

// Get handles GET /company
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	company, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	respondWithJSON(w, http.StatusOK, company)
}

// UpdateSettings handles PATCH /company
func (h *CompanyHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	employee, ok := middleware.EmployeeFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	if !employee.Role.Can(authz.CapManageSettings) {
		respondWithDomainError(w, domain.ErrInsufficientRole)
		return
	}

	var input service.UpdateCompanyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	company, err := h.companyService.UpdateSettings(r.Context(), employee.CompanyID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, company)
}

// Deactivate handles DELETE /company. Owner only.
func (h *CompanyHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	employee, ok := middleware.EmployeeFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	if !employee.Role.Can(authz.CapDeleteCompany) {
		respondWithDomainError(w, domain.ErrInsufficientRole)
		return
	}

	if err := h.companyService.Deactivate(r.Context(), employee.CompanyID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// Profile handles GET /me: the caller's binding and company.
func (h *CompanyHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	output, err := h.employeeService.Profile(r.Context(), userID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, output)
}
