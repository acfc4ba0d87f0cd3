// internal/repository/site.go
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

type SiteRepositoryIface interface {
	Create(ctx context.Context, site *model.Site) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Site, error)
	FindActiveByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Site, error)
	CountActiveByCompany(ctx context.Context, companyID uuid.UUID) (int64, error)
	Update(ctx context.Context, site *model.Site) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
	HasReports(ctx context.Context, siteID uuid.UUID) (bool, error)
}

type SiteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

func (r *SiteRepository) Create(ctx context.Context, site *model.Site) error {
	if err := r.db.WithContext(ctx).Create(site).Error; err != nil {
		return fmt.Errorf("creating site: %w", err)
	}
	return nil
}

func (r *SiteRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Site, error) {
	var site model.Site
	if err := r.db.WithContext(ctx).First(&site, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSiteNotFound
		}
		return nil, fmt.Errorf("finding site: %w", err)
	}
	return &site, nil
}

func (r *SiteRepository) FindActiveByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Site, error) {
	var sites []*model.Site
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_active = true", companyID).
		Order("name ASC").
		Find(&sites).Error
	if err != nil {
		return nil, fmt.Errorf("finding sites: %w", err)
	}
	return sites, nil
}

func (r *SiteRepository) CountActiveByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Site{}).
		Where("company_id = ? AND is_active = true", companyID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting sites: %w", err)
	}
	return count, nil
}

func (r *SiteRepository) Update(ctx context.Context, site *model.Site) error {
	if err := r.db.WithContext(ctx).Save(site).Error; err != nil {
		return fmt.Errorf("updating site: %w", err)
	}
	return nil
}

func (r *SiteRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.Site{}).
		Where("id = ? AND is_active = true", id).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("deactivating site: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSiteNotFound
	}
	return nil
}

func (r *SiteRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Site{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting site: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSiteNotFound
	}
	return nil
}

// HasReports decides soft versus hard delete for a site.
func (r *SiteRepository) HasReports(ctx context.Context, siteID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Report{}).
		Where("site_id = ?", siteID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("counting site reports: %w", err)
	}
	return count > 0, nil
}
