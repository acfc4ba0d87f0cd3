package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/slipcheck/platform/internal/authz"
	"github.com/slipcheck/platform/internal/domain"
	"github.com/slipcheck/platform/internal/mocks"
	"github.com/slipcheck/platform/internal/model"
	"github.com/slipcheck/platform/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEmployeeUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.New()
	admin := &model.Employee{
		ID:        uuid.New(),
		CompanyID: companyID,
		Role:      authz.RoleAdmin,
		IsActive:  true,
	}

	t.Run("changes role and site assignments", func(t *testing.T) {
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		siteRepo := mocks.NewMockSiteRepositoryIface(ctrl)

		target := &model.Employee{
			ID:        uuid.New(),
			CompanyID: companyID,
			Role:      authz.RoleEmployee,
			IsActive:  true,
		}
		siteID := uuid.New()

		employeeRepo.EXPECT().
			FindByID(gomock.Any(), target.ID).
			Return(target, nil)

		siteRepo.EXPECT().
			FindByID(gomock.Any(), siteID).
			Return(&model.Site{ID: siteID, CompanyID: companyID}, nil)

		employeeRepo.EXPECT().
			Update(gomock.Any(), target).
			Return(nil)

		svc := service.NewEmployeeService(employeeRepo, companyRepo, siteRepo)
		updated, err := svc.Update(context.Background(), admin, target.ID, service.UpdateEmployeeInput{
			Role:            "manager",
			SiteAssignments: []string{siteID.String()},
		})

		require.NoError(t, err)
		assert.Equal(t, authz.RoleManager, updated.Role)
		assert.Equal(t, []string{siteID.String()}, []string(updated.SiteAssignments))
	})

	t.Run("rejects granting owner", func(t *testing.T) {
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)

		target := &model.Employee{ID: uuid.New(), CompanyID: companyID, Role: authz.RoleEmployee, IsActive: true}
		employeeRepo.EXPECT().FindByID(gomock.Any(), target.ID).Return(target, nil)

		svc := service.NewEmployeeService(employeeRepo,
			mocks.NewMockCompanyRepositoryIface(ctrl),
			mocks.NewMockSiteRepositoryIface(ctrl))

		_, err := svc.Update(context.Background(), admin, target.ID, service.UpdateEmployeeInput{Role: "owner"})
		assert.ErrorIs(t, err, domain.ErrOwnerRoleReserved)
	})

	t.Run("rejects demoting the owner", func(t *testing.T) {
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)

		owner := &model.Employee{ID: uuid.New(), CompanyID: companyID, Role: authz.RoleOwner, IsActive: true}
		employeeRepo.EXPECT().FindByID(gomock.Any(), owner.ID).Return(owner, nil)

		svc := service.NewEmployeeService(employeeRepo,
			mocks.NewMockCompanyRepositoryIface(ctrl),
			mocks.NewMockSiteRepositoryIface(ctrl))

		_, err := svc.Update(context.Background(), admin, owner.ID, service.UpdateEmployeeInput{Role: "admin"})
		assert.ErrorIs(t, err, domain.ErrCannotRemoveOwner)
	})

	t.Run("rejects assigning a foreign site", func(t *testing.T) {
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		siteRepo := mocks.NewMockSiteRepositoryIface(ctrl)

		target := &model.Employee{ID: uuid.New(), CompanyID: companyID, Role: authz.RoleEmployee, IsActive: true}
		foreignSiteID := uuid.New()

		employeeRepo.EXPECT().FindByID(gomock.Any(), target.ID).Return(target, nil)
		siteRepo.EXPECT().
			FindByID(gomock.Any(), foreignSiteID).
			Return(&model.Site{ID: foreignSiteID, CompanyID: uuid.New()}, nil)

		svc := service.NewEmployeeService(employeeRepo,
			mocks.NewMockCompanyRepositoryIface(ctrl), siteRepo)

		_, err := svc.Update(context.Background(), admin, target.ID, service.UpdateEmployeeInput{
			Role:            "employee",
			SiteAssignments: []string{foreignSiteID.String()},
		})
		assert.ErrorIs(t, err, domain.ErrSiteNotFound)
	})

	t.Run("foreign employee resolves to not found", func(t *testing.T) {
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)

		foreign := &model.Employee{ID: uuid.New(), CompanyID: uuid.New(), Role: authz.RoleEmployee, IsActive: true}
		employeeRepo.EXPECT().FindByID(gomock.Any(), foreign.ID).Return(foreign, nil)

		svc := service.NewEmployeeService(employeeRepo,
			mocks.NewMockCompanyRepositoryIface(ctrl),
			mocks.NewMockSiteRepositoryIface(ctrl))

		_, err := svc.Update(context.Background(), admin, foreign.ID, service.UpdateEmployeeInput{Role: "employee"})
		assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	})
}

func TestEmployeeRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.New()
	admin := &model.Employee{
		ID:        uuid.New(),
		CompanyID: companyID,
		Role:      authz.RoleAdmin,
		IsActive:  true,
	}

	t.Run("deactivates a teammate", func(t *testing.T) {
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)

		target := &model.Employee{ID: uuid.New(), CompanyID: companyID, Role: authz.RoleEmployee, IsActive: true}

		employeeRepo.EXPECT().FindByID(gomock.Any(), target.ID).Return(target, nil)
		employeeRepo.EXPECT().Deactivate(gomock.Any(), target.ID).Return(nil)

		svc := service.NewEmployeeService(employeeRepo,
			mocks.NewMockCompanyRepositoryIface(ctrl),
			mocks.NewMockSiteRepositoryIface(ctrl))

		assert.NoError(t, svc.Remove(context.Background(), admin, target.ID))
	})

	t.Run("cannot remove the owner", func(t *testing.T) {
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)

		owner := &model.Employee{ID: uuid.New(), CompanyID: companyID, Role: authz.RoleOwner, IsActive: true}
		employeeRepo.EXPECT().FindByID(gomock.Any(), owner.ID).Return(owner, nil)

		svc := service.NewEmployeeService(employeeRepo,
			mocks.NewMockCompanyRepositoryIface(ctrl),
			mocks.NewMockSiteRepositoryIface(ctrl))

		assert.ErrorIs(t, svc.Remove(context.Background(), admin, owner.ID), domain.ErrCannotRemoveOwner)
	})

	t.Run("cannot remove self", func(t *testing.T) {
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)

		employeeRepo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(admin, nil)

		svc := service.NewEmployeeService(employeeRepo,
			mocks.NewMockCompanyRepositoryIface(ctrl),
			mocks.NewMockSiteRepositoryIface(ctrl))

		assert.ErrorIs(t, svc.Remove(context.Background(), admin, admin.ID), domain.ErrCannotRemoveSelf)
	})

	t.Run("manager lacks the capability", func(t *testing.T) {
		svc := service.NewEmployeeService(
			mocks.NewMockEmployeeRepositoryIface(ctrl),
			mocks.NewMockCompanyRepositoryIface(ctrl),
			mocks.NewMockSiteRepositoryIface(ctrl))

		manager := &model.Employee{ID: uuid.New(), CompanyID: companyID, Role: authz.RoleManager, IsActive: true}
		assert.ErrorIs(t, svc.Remove(context.Background(), manager, uuid.New()), domain.ErrInsufficientRole)
	})
}
