package service_test

import (
	"context"
	"testing"
	"time"

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

func TestInvitationCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.New()
	inviter := &model.Employee{
		ID:        uuid.New(),
		CompanyID: companyID,
		UserID:    uuid.New(),
		Role:      authz.RoleAdmin,
		IsActive:  true,
	}
	company := &model.Company{
		ID:           companyID,
		Name:         "Northside Snow Services",
		MaxEmployees: 25,
		IsActive:     true,
	}

	t.Run("issues invitation without email provider", func(t *testing.T) {
		invitationRepo := mocks.NewMockInvitationRepositoryIface(ctrl)
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		invitationRepo.EXPECT().
			FindPendingByCompanyAndEmail(gomock.Any(), companyID, "crew@example.com", gomock.Any()).
			Return(nil, domain.ErrInvitationNotFound)

		companyRepo.EXPECT().
			FindByID(gomock.Any(), companyID).
			Return(company, nil)

		employeeRepo.EXPECT().
			CountActiveByCompany(gomock.Any(), companyID).
			Return(int64(3), nil)

		invitationRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv *model.Invitation) error {
				assert.Equal(t, companyID, inv.CompanyID)
				assert.Equal(t, "crew@example.com", inv.Email)
				assert.Equal(t, authz.RoleEmployee, inv.Role)
				assert.Len(t, inv.Code, 8)
				assert.NotContains(t, inv.Code, "0")
				assert.NotContains(t, inv.Code, "O")
				assert.True(t, inv.ExpiresAt.After(time.Now().UTC().AddDate(0, 0, 6)))
				return nil
			})

		svc := service.NewInvitationService(invitationRepo, employeeRepo, companyRepo, userRepo, nil, tenancyConfig())
		output, err := svc.Create(context.Background(), inviter, service.CreateInvitationInput{
			Email: "Crew@Example.com",
			Role:  "employee",
		})

		require.NoError(t, err)
		assert.False(t, output.EmailSent)
	})

	t.Run("rejects duplicate pending invitation", func(t *testing.T) {
		invitationRepo := mocks.NewMockInvitationRepositoryIface(ctrl)
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		invitationRepo.EXPECT().
			FindPendingByCompanyAndEmail(gomock.Any(), companyID, "crew@example.com", gomock.Any()).
			Return(&model.Invitation{}, nil)

		svc := service.NewInvitationService(invitationRepo, employeeRepo, companyRepo, userRepo, nil, tenancyConfig())
		_, err := svc.Create(context.Background(), inviter, service.CreateInvitationInput{
			Email: "crew@example.com",
			Role:  "employee",
		})

		assert.ErrorIs(t, err, domain.ErrDuplicateInvitation)
	})

	t.Run("rejects owner role", func(t *testing.T) {
		svc := service.NewInvitationService(
			mocks.NewMockInvitationRepositoryIface(ctrl),
			mocks.NewMockEmployeeRepositoryIface(ctrl),
			mocks.NewMockCompanyRepositoryIface(ctrl),
			mocks.NewMockUserRepositoryIface(ctrl),
			nil, tenancyConfig())

		_, err := svc.Create(context.Background(), inviter, service.CreateInvitationInput{
			Email: "crew@example.com",
			Role:  "owner",
		})

		assert.ErrorIs(t, err, domain.ErrOwnerRoleReserved)
	})

	t.Run("rejects inviter below admin", func(t *testing.T) {
		svc := service.NewInvitationService(
			mocks.NewMockInvitationRepositoryIface(ctrl),
			mocks.NewMockEmployeeRepositoryIface(ctrl),
			mocks.NewMockCompanyRepositoryIface(ctrl),
			mocks.NewMockUserRepositoryIface(ctrl),
			nil, tenancyConfig())

		manager := &model.Employee{ID: uuid.New(), CompanyID: companyID, Role: authz.RoleManager, IsActive: true}
		_, err := svc.Create(context.Background(), manager, service.CreateInvitationInput{
			Email: "crew@example.com",
			Role:  "employee",
		})

		assert.ErrorIs(t, err, domain.ErrInsufficientRole)
	})

	t.Run("rejects at seat limit", func(t *testing.T) {
		invitationRepo := mocks.NewMockInvitationRepositoryIface(ctrl)
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		invitationRepo.EXPECT().
			FindPendingByCompanyAndEmail(gomock.Any(), companyID, "crew@example.com", gomock.Any()).
			Return(nil, domain.ErrInvitationNotFound)

		companyRepo.EXPECT().
			FindByID(gomock.Any(), companyID).
			Return(company, nil)

		employeeRepo.EXPECT().
			CountActiveByCompany(gomock.Any(), companyID).
			Return(int64(25), nil)

		svc := service.NewInvitationService(invitationRepo, employeeRepo, companyRepo, userRepo, nil, tenancyConfig())
		_, err := svc.Create(context.Background(), inviter, service.CreateInvitationInput{
			Email: "crew@example.com",
			Role:  "employee",
		})

		assert.ErrorIs(t, err, domain.ErrSeatLimitReached)
	})
}

func TestInvitationJoin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.New()
	userID := uuid.New()
	company := &model.Company{
		ID:           companyID,
		MaxEmployees: 25,
		IsActive:     true,
	}

	pending := func() *model.Invitation {
		return &model.Invitation{
			ID:        uuid.New(),
			CompanyID: companyID,
			Email:     "crew@example.com",
			Role:      authz.RoleManager,
			Code:      "WXYZ2345",
			ExpiresAt: time.Now().UTC().AddDate(0, 0, 3),
		}
	}

	t.Run("creates binding at invited role", func(t *testing.T) {
		invitationRepo := mocks.NewMockInvitationRepositoryIface(ctrl)
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)

		invitation := pending()

		// Codes are normalized before lookup.
		invitationRepo.EXPECT().
			FindByCode(gomock.Any(), "WXYZ2345").
			Return(invitation, nil)

		employeeRepo.EXPECT().
			FindActiveByUser(gomock.Any(), userID).
			Return(nil, domain.ErrEmployeeNotFound)

		companyRepo.EXPECT().
			FindByID(gomock.Any(), companyID).
			Return(company, nil)

		employeeRepo.EXPECT().
			CountActiveByCompany(gomock.Any(), companyID).
			Return(int64(4), nil)

		invitationRepo.EXPECT().
			AcceptWithEmployee(gomock.Any(), invitation.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, employee *model.Employee) error {
				assert.Equal(t, userID, employee.UserID)
				assert.Equal(t, authz.RoleManager, employee.Role)
				assert.Equal(t, "EMP-0005", employee.EmployeeNumber)
				assert.True(t, employee.IsActive)
				return nil
			})

		svc := service.NewInvitationService(invitationRepo, employeeRepo, companyRepo, userRepo, nil, tenancyConfig())
		output, err := svc.Join(context.Background(), userID, service.JoinCompanyInput{
			InvitationCode: " wxyz2345 ",
		})

		require.NoError(t, err)
		assert.Equal(t, companyID, output.Company.ID)
	})

	t.Run("rejects expired invitation", func(t *testing.T) {
		invitationRepo := mocks.NewMockInvitationRepositoryIface(ctrl)

		expired := pending()
		expired.ExpiresAt = time.Now().UTC().AddDate(0, 0, -1)

		invitationRepo.EXPECT().
			FindByCode(gomock.Any(), "WXYZ2345").
			Return(expired, nil)

		svc := service.NewInvitationService(invitationRepo,
			mocks.NewMockEmployeeRepositoryIface(ctrl),
			mocks.NewMockCompanyRepositoryIface(ctrl),
			mocks.NewMockUserRepositoryIface(ctrl),
			nil, tenancyConfig())

		_, err := svc.Join(context.Background(), userID, service.JoinCompanyInput{InvitationCode: "WXYZ2345"})
		assert.ErrorIs(t, err, domain.ErrInvitationExpired)
	})

	t.Run("expiry beats acceptance state", func(t *testing.T) {
		invitationRepo := mocks.NewMockInvitationRepositoryIface(ctrl)

		acceptedAt := time.Now().UTC().AddDate(0, 0, -5)
		stale := pending()
		stale.ExpiresAt = time.Now().UTC().AddDate(0, 0, -1)
		stale.AcceptedAt = &acceptedAt

		invitationRepo.EXPECT().
			FindByCode(gomock.Any(), "WXYZ2345").
			Return(stale, nil)

		svc := service.NewInvitationService(invitationRepo,
			mocks.NewMockEmployeeRepositoryIface(ctrl),
			mocks.NewMockCompanyRepositoryIface(ctrl),
			mocks.NewMockUserRepositoryIface(ctrl),
			nil, tenancyConfig())

		_, err := svc.Join(context.Background(), userID, service.JoinCompanyInput{InvitationCode: "WXYZ2345"})
		assert.ErrorIs(t, err, domain.ErrInvitationExpired)
	})

	t.Run("rejects consumed invitation", func(t *testing.T) {
		invitationRepo := mocks.NewMockInvitationRepositoryIface(ctrl)

		acceptedAt := time.Now().UTC().Add(-time.Hour)
		consumed := pending()
		consumed.AcceptedAt = &acceptedAt

		invitationRepo.EXPECT().
			FindByCode(gomock.Any(), "WXYZ2345").
			Return(consumed, nil)

		svc := service.NewInvitationService(invitationRepo,
			mocks.NewMockEmployeeRepositoryIface(ctrl),
			mocks.NewMockCompanyRepositoryIface(ctrl),
			mocks.NewMockUserRepositoryIface(ctrl),
			nil, tenancyConfig())

		_, err := svc.Join(context.Background(), userID, service.JoinCompanyInput{InvitationCode: "WXYZ2345"})
		assert.ErrorIs(t, err, domain.ErrInvitationAccepted)
	})

	t.Run("rejects user already bound elsewhere", func(t *testing.T) {
		invitationRepo := mocks.NewMockInvitationRepositoryIface(ctrl)
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)

		invitationRepo.EXPECT().
			FindByCode(gomock.Any(), "WXYZ2345").
			Return(pending(), nil)

		employeeRepo.EXPECT().
			FindActiveByUser(gomock.Any(), userID).
			Return(&model.Employee{ID: uuid.New(), UserID: userID, IsActive: true}, nil)

		svc := service.NewInvitationService(invitationRepo, employeeRepo,
			mocks.NewMockCompanyRepositoryIface(ctrl),
			mocks.NewMockUserRepositoryIface(ctrl),
			nil, tenancyConfig())

		_, err := svc.Join(context.Background(), userID, service.JoinCompanyInput{InvitationCode: "WXYZ2345"})
		assert.ErrorIs(t, err, domain.ErrAlreadyMember)
	})

	t.Run("rejects deactivated company", func(t *testing.T) {
		invitationRepo := mocks.NewMockInvitationRepositoryIface(ctrl)
		employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)

		invitationRepo.EXPECT().
			FindByCode(gomock.Any(), "WXYZ2345").
			Return(pending(), nil)

		employeeRepo.EXPECT().
			FindActiveByUser(gomock.Any(), userID).
			Return(nil, domain.ErrEmployeeNotFound)

		companyRepo.EXPECT().
			FindByID(gomock.Any(), companyID).
			Return(&model.Company{ID: companyID, IsActive: false}, nil)

		svc := service.NewInvitationService(invitationRepo, employeeRepo, companyRepo,
			mocks.NewMockUserRepositoryIface(ctrl),
			nil, tenancyConfig())

		_, err := svc.Join(context.Background(), userID, service.JoinCompanyInput{InvitationCode: "WXYZ2345"})
		assert.ErrorIs(t, err, domain.ErrCompanyInactive)
	})
}

func TestInvitationRevoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	caller := &model.Employee{
		ID:        uuid.New(),
		CompanyID: uuid.New(),
		Role:      authz.RoleAdmin,
		IsActive:  true,
	}

	t.Run("foreign invitation resolves to not found", func(t *testing.T) {
		invitationRepo := mocks.NewMockInvitationRepositoryIface(ctrl)

		foreign := &model.Invitation{
			ID:        uuid.New(),
			CompanyID: uuid.New(), // different tenant
			ExpiresAt: time.Now().UTC().AddDate(0, 0, 3),
		}

		invitationRepo.EXPECT().
			FindByID(gomock.Any(), foreign.ID).
			Return(foreign, nil)

		svc := service.NewInvitationService(invitationRepo,
			mocks.NewMockEmployeeRepositoryIface(ctrl),
			mocks.NewMockCompanyRepositoryIface(ctrl),
			mocks.NewMockUserRepositoryIface(ctrl),
			nil, tenancyConfig())

		err := svc.Revoke(context.Background(), caller, foreign.ID)
		assert.ErrorIs(t, err, domain.ErrInvitationNotFound)
	})

	t.Run("deletes own pending invitation", func(t *testing.T) {
		invitationRepo := mocks.NewMockInvitationRepositoryIface(ctrl)

		invitation := &model.Invitation{
			ID:        uuid.New(),
			CompanyID: caller.CompanyID,
			ExpiresAt: time.Now().UTC().AddDate(0, 0, 3),
		}

		invitationRepo.EXPECT().
			FindByID(gomock.Any(), invitation.ID).
			Return(invitation, nil)

		invitationRepo.EXPECT().
			Delete(gomock.Any(), invitation.ID).
			Return(nil)

		svc := service.NewInvitationService(invitationRepo,
			mocks.NewMockEmployeeRepositoryIface(ctrl),
			mocks.NewMockCompanyRepositoryIface(ctrl),
			mocks.NewMockUserRepositoryIface(ctrl),
			nil, tenancyConfig())

		assert.NoError(t, svc.Revoke(context.Background(), caller, invitation.ID))
	})
}
