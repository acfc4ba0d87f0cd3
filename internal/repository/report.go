// internal/repository/report.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/slipcheck/platform/internal/domain"
	"github.com/slipcheck/platform/internal/model"
	"gorm.io/gorm"
)

type ReportRepositoryIface interface {
	Create(ctx context.Context, report *model.Report) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error)
	FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Report, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*model.Report, error)
	Update(ctx context.Context, report *model.Report) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, report *model.Report) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	return nil
}

func (r *ReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	var report model.Report
	if err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("finding report: %w", err)
	}
	return &report, nil
}

// FindByCompany preloads site and employee identity for listing and export.
func (r *ReportRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Report, error) {
	var reports []*model.Report
	err := r.db.WithContext(ctx).
		Preload("Site").
		Preload("Employee").
		Preload("Employee.User").
		Where("company_id = ?", companyID).
		Order("report_date DESC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("finding company reports: %w", err)
	}
	return reports, nil
}

func (r *ReportRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*model.Report, error) {
	var reports []*model.Report
	err := r.db.WithContext(ctx).
		Preload("Site").
		Where("employee_id = ?", employeeID).
		Order("report_date DESC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("finding employee reports: %w", err)
	}
	return reports, nil
}

func (r *ReportRepository) Update(ctx context.Context, report *model.Report) error {
	if err := r.db.WithContext(ctx).Save(report).Error; err != nil {
		return fmt.Errorf("updating report: %w", err)
	}
	return nil
}

func (r *ReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Report{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}
