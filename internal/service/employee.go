// internal/service/employee.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/slipcheck/platform/internal/authz"
	"github.com/slipcheck/platform/internal/domain"
	"github.com/slipcheck/platform/internal/model"
	"github.com/slipcheck/platform/internal/repository"
)

type EmployeeService struct {
	employeeRepo repository.EmployeeRepositoryIface
	companyRepo  repository.CompanyRepositoryIface
	siteRepo     repository.SiteRepositoryIface
}

func NewEmployeeService(
	employeeRepo repository.EmployeeRepositoryIface,
	companyRepo repository.CompanyRepositoryIface,
	siteRepo repository.SiteRepositoryIface,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		siteRepo:     siteRepo,
	}
}

type ProfileOutput struct {
	Employee *model.Employee `json:"employee"`
	Company  *model.Company  `json:"company"`
}

// Profile resolves the caller's binding and company. Absence of a binding is
// reported as ErrEmployeeNotFound, which API routes surface as 404.
func (s *EmployeeService) Profile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error) {
	employee, err := s.employeeRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindByID(ctx, employee.CompanyID)
	if err != nil {
		return nil, err
	}

	return &ProfileOutput{Employee: employee, Company: company}, nil
}

// List returns the company's active employees.
func (s *EmployeeService) List(ctx context.Context, caller *model.Employee) ([]*model.Employee, error) {
	if !caller.Role.Can(authz.CapManageEmployees) {
		return nil, domain.ErrInsufficientRole
	}
	return s.employeeRepo.FindActiveByCompany(ctx, caller.CompanyID)
}

type UpdateEmployeeInput struct {
	Role            string   `json:"role"`
	SiteAssignments []string `json:"site_assignments"`
}

// Update changes a teammate's role and site assignments. Ownership cannot be
// granted or revoked here, and site assignments must name sites of the same
// company.
func (s *EmployeeService) Update(ctx context.Context, caller *model.Employee, employeeID uuid.UUID, input UpdateEmployeeInput) (*model.Employee, error) {
	if !caller.Role.Can(authz.CapManageEmployees) {
		return nil, domain.ErrInsufficientRole
	}

	target, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if target.CompanyID != caller.CompanyID || !target.IsActive {
		return nil, domain.ErrEmployeeNotFound
	}

	role, err := authz.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}
	if role == authz.RoleOwner {
		return nil, domain.ErrOwnerRoleReserved
	}
	if target.Role == authz.RoleOwner {
		return nil, domain.ErrCannotRemoveOwner
	}

	assignments := make([]string, 0, len(input.SiteAssignments))
	for _, raw := range input.SiteAssignments {
		siteID, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid site id %q", domain.ErrInvalidInput, raw)
		}
		site, err := s.siteRepo.FindByID(ctx, siteID)
		if err != nil {
			return nil, err
		}
		if site.CompanyID != caller.CompanyID {
			return nil, domain.ErrSiteNotFound
		}
		assignments = append(assignments, siteID.String())
	}

	target.Role = role
	target.SiteAssignments = pq.StringArray(assignments)

	if err := s.employeeRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	return target, nil
}

// Remove deactivates a teammate's binding. The row stays behind so past
// reports keep their author.
func (s *EmployeeService) Remove(ctx context.Context, caller *model.Employee, employeeID uuid.UUID) error {
	if !caller.Role.Can(authz.CapManageEmployees) {
		return domain.ErrInsufficientRole
	}

	target, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if target.CompanyID != caller.CompanyID || !target.IsActive {
		return domain.ErrEmployeeNotFound
	}
	if target.Role == authz.RoleOwner {
		return domain.ErrCannotRemoveOwner
	}
	if target.ID == caller.ID {
		return domain.ErrCannotRemoveSelf
	}

	return s.employeeRepo.Deactivate(ctx, target.ID)
}
