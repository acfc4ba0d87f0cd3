// internal/service/reconcile.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/slipcheck/platform/internal/repository"
)

// ReconcileService remediates tenancy state that inline request handling can
// leave behind: companies whose owner binding never materialized, and stale
// expired invitations.
type ReconcileService struct {
	companyRepo    repository.CompanyRepositoryIface
	invitationRepo repository.InvitationRepositoryIface
	batchSize      int
	dryRun         bool
	logger         *slog.Logger
}

func NewReconcileService(
	companyRepo repository.CompanyRepositoryIface,
	invitationRepo repository.InvitationRepositoryIface,
	logger *slog.Logger,
) *ReconcileService {
	return &ReconcileService{
		companyRepo:    companyRepo,
		invitationRepo: invitationRepo,
		batchSize:      100,
		dryRun:         false,
		logger:         logger,
	}
}

// SetBatchSize sets the number of entities to process in a batch.
func (s *ReconcileService) SetBatchSize(size int) {
	if size > 0 {
		s.batchSize = size
	}
}

// SetDryRun sets whether to actually make changes or just log what would be done.
func (s *ReconcileService) SetDryRun(dryRun bool) {
	s.dryRun = dryRun
}

// ReconcileOrphanedCompanies deactivates active companies with zero active
// employee bindings. Returns the number of companies remediated (or that
// would be, in dry-run mode).
func (s *ReconcileService) ReconcileOrphanedCompanies(ctx context.Context) (int, error) {
	orphans, err := s.companyRepo.FindOrphaned(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetching orphaned companies: %w", err)
	}

	s.logger.Info("reconciling orphaned companies", "count", len(orphans), "dry_run", s.dryRun)

	remediated := 0
	for i := 0; i < len(orphans); i += s.batchSize {
		end := i + s.batchSize
		if end > len(orphans) {
			end = len(orphans)
		}

		for _, company := range orphans[i:end] {
			if s.dryRun {
				s.logger.Info("would deactivate orphaned company (dry run)",
					"company_id", company.ID.String(),
					"slug", company.Slug,
				)
				remediated++
				continue
			}

			if err := s.companyRepo.Deactivate(ctx, company.ID); err != nil {
				s.logger.Error("failed to deactivate orphaned company",
					"company_id", company.ID.String(),
					"error", err,
				)
				continue
			}

			s.logger.Info("deactivated orphaned company",
				"company_id", company.ID.String(),
				"slug", company.Slug,
			)
			remediated++
		}

		select {
		case <-ctx.Done():
			return remediated, ctx.Err()
		default:
		}
	}

	return remediated, nil
}

// PurgeExpiredInvitations deletes unaccepted invitations that expired more
// than retention ago. Expiry is computed from expires_at at read time, so
// this is hygiene only.
func (s *ReconcileService) PurgeExpiredInvitations(ctx context.Context, retention time.Duration) (int64, error) {
	now := time.Now().UTC()

	expired, err := s.invitationRepo.CountExpiredPending(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("counting expired invitations: %w", err)
	}
	s.logger.Info("expired pending invitations", "count", expired, "dry_run", s.dryRun)

	if s.dryRun {
		return 0, nil
	}

	purged, err := s.invitationRepo.PurgeExpiredBefore(ctx, now.Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("purging invitations: %w", err)
	}

	s.logger.Info("purged expired invitations", "count", purged)
	return purged, nil
}
