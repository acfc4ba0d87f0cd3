package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/slipcheck/platform/internal/authz"
	"github.com/slipcheck/platform/internal/config"
	"github.com/slipcheck/platform/internal/domain"
	"github.com/slipcheck/platform/internal/mocks"
	"github.com/slipcheck/platform/internal/model"
	"github.com/slipcheck/platform/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func tenancyConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Tenancy.CompanyTrialDays = 30
	cfg.Tenancy.UserTrialDays = 14
	cfg.Tenancy.InvitationTTLDays = 7
	cfg.Tenancy.MaxEmployees = 25
	cfg.Tenancy.MaxSites = 50
	return cfg
}

func TestCompanyCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	input := service.CreateCompanyInput{
		Name: "Northside Snow Services",
		Slug: "northside-snow",
	}

	t.Run("provisions company with owner binding", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)

		employeeRepo.EXPECT().
			FindActiveByUser(gomock.Any(), userID).
			Return(nil, domain.ErrEmployeeNotFound)

		companyRepo.EXPECT().
			FindBySlug(gomock.Any(), "northside-snow").
			Return(nil, domain.ErrCompanyNotFound)

		companyRepo.EXPECT().
			CreateWithOwner(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, company *model.Company, owner *model.Employee) error {
				assert.Equal(t, "northside-snow", company.Slug)
				assert.Equal(t, 25, company.MaxEmployees)
				assert.Equal(t, 50, company.MaxSites)
				assert.True(t, company.IsActive)
				assert.True(t, company.TrialEndsAt.After(time.Now().UTC().AddDate(0, 0, 29)))

				assert.Equal(t, userID, owner.UserID)
				assert.Equal(t, authz.RoleOwner, owner.Role)
				assert.Equal(t, "EMP-0001", owner.EmployeeNumber)
				assert.Empty(t, owner.SiteAssignments)
				return nil
			})

		svc := service.NewCompanyService(companyRepo, employeeRepo, tenancyConfig())
		output, err := svc.Create(context.Background(), userID, input)

		require.NoError(t, err)
		assert.Equal(t, output.Company.ID, output.Employee.CompanyID)
	})

	t.Run("rejects user with an existing binding", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)

		employeeRepo.EXPECT().
			FindActiveByUser(gomock.Any(), userID).
			Return(&model.Employee{ID: uuid.New(), UserID: userID, IsActive: true}, nil)

		svc := service.NewCompanyService(companyRepo, employeeRepo, tenancyConfig())
		_, err := svc.Create(context.Background(), userID, input)

		assert.ErrorIs(t, err, domain.ErrAlreadyMember)
	})

	t.Run("rejects taken slug", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)

		employeeRepo.EXPECT().
			FindActiveByUser(gomock.Any(), userID).
			Return(nil, domain.ErrEmployeeNotFound)

		companyRepo.EXPECT().
			FindBySlug(gomock.Any(), "northside-snow").
			Return(&model.Company{Slug: "northside-snow"}, nil)

		svc := service.NewCompanyService(companyRepo, employeeRepo, tenancyConfig())
		_, err := svc.Create(context.Background(), userID, input)

		assert.ErrorIs(t, err, domain.ErrSlugTaken)
	})

	t.Run("rejects malformed slug", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)

		svc := service.NewCompanyService(companyRepo, employeeRepo, tenancyConfig())

		for _, slug := range []string{"Bad Slug", "UPPER", "trailing-", "-leading", "no--doubles"} {
			_, err := svc.Create(context.Background(), userID, service.CreateCompanyInput{
				Name: "Northside Snow Services",
				Slug: slug,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "slug %q", slug)
		}
	})
}
