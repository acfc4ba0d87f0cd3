package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/slipcheck/platform/internal/authz"
	"github.com/slipcheck/platform/internal/domain"
	"github.com/slipcheck/platform/internal/middleware"
	"github.com/slipcheck/platform/internal/mocks"
	"github.com/slipcheck/platform/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authenticatedRequest(userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/company", nil)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["error"]
}

func TestRequireEmployee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	companyID := uuid.New()

	binding := &model.Employee{
		ID:        uuid.New(),
		CompanyID: companyID,
		UserID:    userID,
		Role:      authz.RoleManager,
		IsActive:  true,
	}

	t.Run("resolves binding and company into context", func(t *testing.T) {
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		employeeRepo.EXPECT().FindActiveByUser(gomock.Any(), userID).Return(binding, nil)
		companyRepo.EXPECT().FindByID(gomock.Any(), companyID).
			Return(&model.Company{ID: companyID, IsActive: true}, nil)

		var reached bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
			employee, ok := middleware.EmployeeFromContext(r.Context())
			require.True(t, ok)
			assert.Equal(t, binding.ID, employee.ID)
			company, ok := middleware.CompanyFromContext(r.Context())
			require.True(t, ok)
			assert.Equal(t, companyID, company.ID)
		})

		rec := httptest.NewRecorder()
		middleware.RequireEmployee(employeeRepo, companyRepo)(next).
			ServeHTTP(rec, authenticatedRequest(userID))

		assert.True(t, reached)
	})

	t.Run("unbound user gets not found", func(t *testing.T) {
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		employeeRepo.EXPECT().FindActiveByUser(gomock.Any(), userID).
			Return(nil, domain.ErrEmployeeNotFound)

		rec := httptest.NewRecorder()
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run without a binding")
		})
		middleware.RequireEmployee(employeeRepo, companyRepo)(next).
			ServeHTTP(rec, authenticatedRequest(userID))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Employee not found", decodeError(t, rec))
	})

	t.Run("lookup failure fails closed as absence", func(t *testing.T) {
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		employeeRepo.EXPECT().FindActiveByUser(gomock.Any(), userID).
			Return(nil, assert.AnError)

		rec := httptest.NewRecorder()
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run when the binding cannot be resolved")
		})
		middleware.RequireEmployee(employeeRepo, companyRepo)(next).
			ServeHTTP(rec, authenticatedRequest(userID))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Employee not found", decodeError(t, rec))
	})

	t.Run("deactivated company is forbidden", func(t *testing.T) {
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		employeeRepo.EXPECT().FindActiveByUser(gomock.Any(), userID).Return(binding, nil)
		companyRepo.EXPECT().FindByID(gomock.Any(), companyID).
			Return(&model.Company{ID: companyID, IsActive: false}, nil)

		rec := httptest.NewRecorder()
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run for a deactivated company")
		})
		middleware.RequireEmployee(employeeRepo, companyRepo)(next).
			ServeHTTP(rec, authenticatedRequest(userID))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing authentication is unauthorized", func(t *testing.T) {
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/company", nil)
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run unauthenticated")
		})
		middleware.RequireEmployee(employeeRepo, companyRepo)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
