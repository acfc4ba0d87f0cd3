// internal/service/site.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/slipcheck/platform/internal/authz"
	"github.com/slipcheck/platform/internal/domain"
	"github.com/slipcheck/platform/internal/model"
	"github.com/slipcheck/platform/internal/repository"
)

type SiteService struct {
	siteRepo    repository.SiteRepositoryIface
	companyRepo repository.CompanyRepositoryIface
	validate    *validator.Validate
}

func NewSiteService(
	siteRepo repository.SiteRepositoryIface,
	companyRepo repository.CompanyRepositoryIface,
) *SiteService {
	return &SiteService{
		siteRepo:    siteRepo,
		companyRepo: companyRepo,
		validate:    validator.New(),
	}
}

type SiteInput struct {
	Name               string   `json:"name" validate:"required,min=2,max=120"`
	Address            string   `json:"address" validate:"required"`
	Priority           string   `json:"priority" validate:"required,oneof=high medium low"`
	SizeSqft           float64  `json:"size_sqft" validate:"gte=0"`
	TypicalSaltUsageKg float64  `json:"typical_salt_usage_kg" validate:"gte=0"`
	Latitude           *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude          *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

func (s *SiteService) Create(ctx context.Context, caller *model.Employee, input SiteInput) (*model.Site, error) {
	if !caller.Role.Can(authz.CapManageSites) {
		return nil, domain.ErrInsufficientRole
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	company, err := s.companyRepo.FindByID(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}

	count, err := s.siteRepo.CountActiveByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	if count >= int64(company.MaxSites) {
		return nil, domain.ErrSiteLimitReached
	}

	site := &model.Site{
		CompanyID:          company.ID,
		Name:               input.Name,
		Address:            input.Address,
		Priority:           model.SitePriority(input.Priority),
		SizeSqft:           input.SizeSqft,
		TypicalSaltUsageKg: input.TypicalSaltUsageKg,
		Latitude:           input.Latitude,
		Longitude:          input.Longitude,
		IsActive:           true,
	}

	if err := s.siteRepo.Create(ctx, site); err != nil {
		return nil, err
	}

	return site, nil
}

// List returns company sites the caller may see. Managers and above see all;
// employees with a non-empty assignment list see only assigned sites.
func (s *SiteService) List(ctx context.Context, caller *model.Employee) ([]*model.Site, error) {
	sites, err := s.siteRepo.FindActiveByCompany(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}

	if caller.Unrestricted() {
		return sites, nil
	}

	visible := make([]*model.Site, 0, len(sites))
	for _, site := range sites {
		if caller.CanAccessSite(site.ID) {
			visible = append(visible, site)
		}
	}
	return visible, nil
}

// Get returns a single site. Other tenants' sites and sites outside the
// caller's assignments resolve to not-found; existence is never disclosed.
func (s *SiteService) Get(ctx context.Context, caller *model.Employee, siteID uuid.UUID) (*model.Site, error) {
	site, err := s.siteRepo.FindByID(ctx, siteID)
	if err != nil {
		return nil, err
	}
	if site.CompanyID != caller.CompanyID || !caller.CanAccessSite(site.ID) {
		return nil, domain.ErrSiteNotFound
	}
	return site, nil
}

func (s *SiteService) Update(ctx context.Context, caller *model.Employee, siteID uuid.UUID, input SiteInput) (*model.Site, error) {
	if !caller.Role.Can(authz.CapManageSites) {
		return nil, domain.ErrInsufficientRole
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	site, err := s.siteRepo.FindByID(ctx, siteID)
	if err != nil {
		return nil, err
	}
	if site.CompanyID != caller.CompanyID {
		return nil, domain.ErrSiteNotFound
	}

	site.Name = input.Name
	site.Address = input.Address
	site.Priority = model.SitePriority(input.Priority)
	site.SizeSqft = input.SizeSqft
	site.TypicalSaltUsageKg = input.TypicalSaltUsageKg
	site.Latitude = input.Latitude
	site.Longitude = input.Longitude

	if err := s.siteRepo.Update(ctx, site); err != nil {
		return nil, err
	}

	return site, nil
}

// Delete removes a site: soft when reports reference it, hard otherwise.
func (s *SiteService) Delete(ctx context.Context, caller *model.Employee, siteID uuid.UUID) error {
	if !caller.Role.Can(authz.CapManageSites) {
		return domain.ErrInsufficientRole
	}

	site, err := s.siteRepo.FindByID(ctx, siteID)
	if err != nil {
		return err
	}
	if site.CompanyID != caller.CompanyID {
		return domain.ErrSiteNotFound
	}

	referenced, err := s.siteRepo.HasReports(ctx, site.ID)
	if err != nil {
		return err
	}
	if referenced {
		return s.siteRepo.SoftDelete(ctx, site.ID)
	}
	return s.siteRepo.HardDelete(ctx, site.ID)
}
