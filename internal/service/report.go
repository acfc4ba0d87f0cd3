// internal/service/report.go
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/slipcheck/platform/internal/authz"
	"github.com/slipcheck/platform/internal/domain"
	"github.com/slipcheck/platform/internal/export"
	"github.com/slipcheck/platform/internal/model"
	"github.com/slipcheck/platform/internal/repository"
	"github.com/slipcheck/platform/internal/weather"
)

type ReportService struct {
	reportRepo    repository.ReportRepositoryIface
	siteRepo      repository.SiteRepositoryIface
	weatherClient weather.Client
	validate      *validator.Validate
}

func NewReportService(
	reportRepo repository.ReportRepositoryIface,
	siteRepo repository.SiteRepositoryIface,
	weatherClient weather.Client,
) *ReportService {
	return &ReportService{
		reportRepo:    reportRepo,
		siteRepo:      siteRepo,
		weatherClient: weatherClient,
		validate:      validator.New(),
	}
}

type ReportInput struct {
	SiteID     string    `json:"site_id" validate:"required,uuid"`
	ReportDate time.Time `json:"report_date" validate:"required"`
	SaltUsedKg float64   `json:"salt_used_kg" validate:"gte=0"`
	Plowed     bool      `json:"plowed"`
	Salted     bool      `json:"salted"`
	Sanded     bool      `json:"sanded"`
	Notes      string    `json:"notes" validate:"max=4000"`
	IsDraft    bool      `json:"is_draft"`
}

// Create files a report for a site in the caller's company, snapshotting
// current weather. A provider outage degrades to a flagged estimate rather
// than blocking the filing.
func (s *ReportService) Create(ctx context.Context, caller *model.Employee, input ReportInput) (*model.Report, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	siteID, err := uuid.Parse(input.SiteID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid site id", domain.ErrInvalidInput)
	}

	site, err := s.siteRepo.FindByID(ctx, siteID)
	if err != nil {
		return nil, err
	}
	if site.CompanyID != caller.CompanyID || !caller.CanAccessSite(site.ID) {
		return nil, domain.ErrSiteNotFound
	}

	obs := s.observeWeather(ctx, site, input.ReportDate)

	report := &model.Report{
		CompanyID:        caller.CompanyID,
		EmployeeID:       caller.ID,
		SiteID:           site.ID,
		ReportDate:       input.ReportDate,
		IsDraft:          input.IsDraft,
		TemperatureC:     obs.TemperatureC,
		Conditions:       obs.Conditions,
		PrecipitationMm:  obs.PrecipitationMm,
		SnowfallCm:       obs.SnowfallCm,
		WindSpeedKmh:     obs.WindSpeedKmh,
		WeatherEstimated: obs.Estimated,
		SaltUsedKg:       input.SaltUsedKg,
		Plowed:           input.Plowed,
		Salted:           input.Salted,
		Sanded:           input.Sanded,
		Notes:            input.Notes,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (s *ReportService) observeWeather(ctx context.Context, site *model.Site, at time.Time) *weather.Observation {
	if s.weatherClient == nil || site.Latitude == nil || site.Longitude == nil {
		return weather.Estimate(at)
	}

	obs, err := s.weatherClient.Current(ctx, *site.Latitude, *site.Longitude)
	if err != nil {
		slog.WarnContext(ctx, "weather lookup failed, using estimate",
			"site_id", site.ID.String(),
			"error", err,
		)
		return weather.Estimate(at)
	}
	return obs
}

// List returns the caller's own reports, or all company reports for roles
// holding the view-all capability.
func (s *ReportService) List(ctx context.Context, caller *model.Employee) ([]*model.Report, error) {
	if caller.Role.Can(authz.CapViewAllReports) {
		return s.reportRepo.FindByCompany(ctx, caller.CompanyID)
	}
	return s.reportRepo.FindByEmployee(ctx, caller.ID)
}

// findEditable resolves a report the caller may mutate: same company (else
// not-found), authored by the caller, still a draft.
func (s *ReportService) findEditable(ctx context.Context, caller *model.Employee, reportID uuid.UUID) (*model.Report, error) {
	report, err := s.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report.CompanyID != caller.CompanyID {
		return nil, domain.ErrReportNotFound
	}
	if report.EmployeeID != caller.ID {
		return nil, domain.ErrReportNotOwned
	}
	if !report.IsDraft {
		return nil, domain.ErrReportNotDraft
	}
	return report, nil
}

// Update edits a draft. The weather snapshot is not refreshed; it reflects
// conditions at filing time.
func (s *ReportService) Update(ctx context.Context, caller *model.Employee, reportID uuid.UUID, input ReportInput) (*model.Report, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	report, err := s.findEditable(ctx, caller, reportID)
	if err != nil {
		return nil, err
	}

	report.ReportDate = input.ReportDate
	report.SaltUsedKg = input.SaltUsedKg
	report.Plowed = input.Plowed
	report.Salted = input.Salted
	report.Sanded = input.Sanded
	report.Notes = input.Notes

	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

// Submit freezes a draft.
func (s *ReportService) Submit(ctx context.Context, caller *model.Employee, reportID uuid.UUID) (*model.Report, error) {
	report, err := s.findEditable(ctx, caller, reportID)
	if err != nil {
		return nil, err
	}

	report.IsDraft = false
	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

// Delete removes a draft.
func (s *ReportService) Delete(ctx context.Context, caller *model.Employee, reportID uuid.UUID) error {
	report, err := s.findEditable(ctx, caller, reportID)
	if err != nil {
		return err
	}
	return s.reportRepo.Delete(ctx, report.ID)
}

// Export streams the company's reports as CSV.
func (s *ReportService) Export(ctx context.Context, caller *model.Employee, w io.Writer) error {
	if !caller.Role.Can(authz.CapExportData) {
		return domain.ErrInsufficientRole
	}

	reports, err := s.reportRepo.FindByCompany(ctx, caller.CompanyID)
	if err != nil {
		return err
	}

	return export.WriteReportsCSV(w, reports)
}
