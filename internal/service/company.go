// internal/service/company.go
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/slipcheck/platform/internal/authz"
	"github.com/slipcheck/platform/internal/config"
	"github.com/slipcheck/platform/internal/domain"
	"github.com/slipcheck/platform/internal/model"
	"github.com/slipcheck/platform/internal/repository"
)

// slugPattern is matched case-sensitively; slugs are lowercase by contract.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type CompanyService struct {
	companyRepo  repository.CompanyRepositoryIface
	employeeRepo repository.EmployeeRepositoryIface
	config       *config.Config
	validate     *validator.Validate
}

func NewCompanyService(
	companyRepo repository.CompanyRepositoryIface,
	employeeRepo repository.EmployeeRepositoryIface,
	config *config.Config,
) *CompanyService {
	return &CompanyService{
		companyRepo:  companyRepo,
		employeeRepo: employeeRepo,
		config:       config,
		validate:     validator.New(),
	}
}

type CreateCompanyInput struct {
	Name    string `json:"name" validate:"required,min=2,max=120"`
	Slug    string `json:"slug" validate:"required,min=2,max=63"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
}

type CompanyOutput struct {
	Company  *model.Company  `json:"company"`
	Employee *model.Employee `json:"employee"`
}

// Create provisions a tenant: the company row and its owner binding are
// created atomically. The caller must not already hold an active binding;
// the store-level constraints settle any race the application checks miss.
func (s *CompanyService) Create(ctx context.Context, userID uuid.UUID, input CreateCompanyInput) (*CompanyOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !slugPattern.MatchString(input.Slug) {
		return nil, fmt.Errorf("%w: slug must be lowercase letters, digits and hyphens", domain.ErrInvalidInput)
	}

	// One user, one company. Check-then-act alone is not atomic; the partial
	// unique index on employees backs this up.
	if _, err := s.employeeRepo.FindActiveByUser(ctx, userID); err == nil {
		return nil, domain.ErrAlreadyMember
	} else if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, err
	}

	if _, err := s.companyRepo.FindBySlug(ctx, input.Slug); err == nil {
		return nil, domain.ErrSlugTaken
	} else if !errors.Is(err, domain.ErrCompanyNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	company := &model.Company{
		Name:               input.Name,
		Slug:               input.Slug,
		Address:            input.Address,
		Phone:              input.Phone,
		Email:              input.Email,
		SubscriptionPlan:   "trial",
		SubscriptionStatus: model.SubscriptionTrialing,
		TrialEndsAt:        now.AddDate(0, 0, s.config.Tenancy.CompanyTrialDays),
		MaxEmployees:       s.config.Tenancy.MaxEmployees,
		MaxSites:           s.config.Tenancy.MaxSites,
		IsActive:           true,
	}

	// Empty site assignments are the sentinel for unrestricted access.
	owner := &model.Employee{
		UserID:          userID,
		EmployeeNumber:  "EMP-0001",
		Role:            authz.RoleOwner,
		SiteAssignments: []string{},
		IsActive:        true,
	}

	if err := s.companyRepo.CreateWithOwner(ctx, company, owner); err != nil {
		return nil, err
	}

	return &CompanyOutput{Company: company, Employee: owner}, nil
}

// Get returns the caller's company.
func (s *CompanyService) Get(ctx context.Context, companyID uuid.UUID) (*model.Company, error) {
	return s.companyRepo.FindByID(ctx, companyID)
}

type UpdateCompanyInput struct {
	Name    string `json:"name" validate:"required,min=2,max=120"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// UpdateSettings changes company profile fields. Plan, slug and limits are
// not editable through this path.
func (s *CompanyService) UpdateSettings(ctx context.Context, companyID uuid.UUID, input UpdateCompanyInput) (*model.Company, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	company.Name = input.Name
	company.Address = input.Address
	company.Phone = input.Phone
	company.Email = input.Email

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// Deactivate soft-deletes the company. Reports and bindings stay behind for
// the history they carry.
func (s *CompanyService) Deactivate(ctx context.Context, companyID uuid.UUID) error {
	return s.companyRepo.Deactivate(ctx, companyID)
}
