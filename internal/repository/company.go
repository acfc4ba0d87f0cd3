// internal/repository/company.go
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

type CompanyRepositoryIface interface {
	CreateWithOwner(ctx context.Context, company *model.Company, owner *model.Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	FindBySlug(ctx context.Context, slug string) (*model.Company, error)
	Update(ctx context.Context, company *model.Company) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	FindOrphaned(ctx context.Context) ([]*model.Company, error)
}

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// CreateWithOwner creates the company row and its owner binding as one unit.
// The slug unique index and the active-user partial unique index decide the
// losers of concurrent races; which insert failed tells us which invariant
// was violated.
func (r *CompanyRepository) CreateWithOwner(ctx context.Context, company *model.Company, owner *model.Employee) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrSlugTaken
			}
			return fmt.Errorf("creating company: %w", err)
		}

		owner.CompanyID = company.ID
		if err := tx.Create(owner).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrAlreadyMember
			}
			return fmt.Errorf("creating owner employee: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrSlugTaken) || errors.Is(err, domain.ErrAlreadyMember) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("finding company: %w", err)
	}
	return &company, nil
}

func (r *CompanyRepository) FindBySlug(ctx context.Context, slug string) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("finding company by slug: %w", err)
	}
	return &company, nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *model.Company) error {
	if err := r.db.WithContext(ctx).Save(company).Error; err != nil {
		return fmt.Errorf("updating company: %w", err)
	}
	return nil
}

// Deactivate soft-deletes the company; historical reports stay attributed.
func (r *CompanyRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.Company{}).
		Where("id = ? AND is_active = true", id).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("deactivating company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

// FindOrphaned returns active companies with no active employee binding.
// These can only result from a failed owner-binding creation that was never
// compensated, and are remediated by the reconcile command.
func (r *CompanyRepository) FindOrphaned(ctx context.Context) ([]*model.Company, error) {
	var companies []*model.Company
	err := r.db.WithContext(ctx).
		Where("is_active = true").
		Where("NOT EXISTS (SELECT 1 FROM employees WHERE employees.company_id = companies.id AND employees.is_active = true)").
		Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("finding orphaned companies: %w", err)
	}
	return companies, nil
}
