// internal/repository/employee.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/slipcheck/platform/internal/authz"
	"github.com/slipcheck/platform/internal/domain"
	"github.com/slipcheck/platform/internal/model"
	"gorm.io/gorm"
)

type EmployeeRepositoryIface interface {
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*model.Employee, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	FindActiveByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Employee, error)
	CountActiveByCompany(ctx context.Context, companyID uuid.UUID) (int64, error)
	CountActiveByCompanyAndRole(ctx context.Context, companyID uuid.UUID, role authz.Role) (int64, error)
	Update(ctx context.Context, employee *model.Employee) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// FindActiveByUser resolves the employee binding the authorization gate runs
// on. The partial unique index guarantees at most one row can match.
func (r *EmployeeRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = true", userID).
		First(&employee)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", result.Error)
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	result := r.db.WithContext(ctx).Preload("User").First(&employee, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", result.Error)
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindActiveByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Employee, error) {
	var employees []*model.Employee
	result := r.db.WithContext(ctx).
		Preload("User").
		Where("company_id = ? AND is_active = true", companyID).
		Order("employee_number ASC").
		Find(&employees)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find employees: %w", result.Error)
	}
	return employees, nil
}

func (r *EmployeeRepository) CountActiveByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("company_id = ? AND is_active = true", companyID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

func (r *EmployeeRepository) CountActiveByCompanyAndRole(ctx context.Context, companyID uuid.UUID, role authz.Role) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("company_id = ? AND role = ? AND is_active = true", companyID, role).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count employees by role: %w", err)
	}
	return count, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	if err := r.db.WithContext(ctx).Save(employee).Error; err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

// Deactivate removes the employee from the company without deleting the row,
// preserving report attribution.
func (r *EmployeeRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("id = ? AND is_active = true", id).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
