// internal/repository/invitation.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/slipcheck/platform/internal/domain"
	"github.com/slipcheck/platform/internal/model"
	"gorm.io/gorm"
)

type InvitationRepositoryIface interface {
	Create(ctx context.Context, invitation *model.Invitation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error)
	FindByCode(ctx context.Context, code string) (*model.Invitation, error)
	FindPendingByCompanyAndEmail(ctx context.Context, companyID uuid.UUID, email string, now time.Time) (*model.Invitation, error)
	FindPendingByCompany(ctx context.Context, companyID uuid.UUID, now time.Time) ([]*model.Invitation, error)
	AcceptWithEmployee(ctx context.Context, invitationID uuid.UUID, employee *model.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountExpiredPending(ctx context.Context, now time.Time) (int64, error)
	PurgeExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(ctx context.Context, invitation *model.Invitation) error {
	if err := r.db.WithContext(ctx).Create(invitation).Error; err != nil {
		return fmt.Errorf("creating invitation: %w", err)
	}
	return nil
}

func (r *InvitationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error) {
	var invitation model.Invitation
	if err := r.db.WithContext(ctx).First(&invitation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("finding invitation: %w", err)
	}
	return &invitation, nil
}

func (r *InvitationRepository) FindByCode(ctx context.Context, code string) (*model.Invitation, error) {
	var invitation model.Invitation
	if err := r.db.WithContext(ctx).Where("invitation_code = ?", code).First(&invitation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("finding invitation by code: %w", err)
	}
	return &invitation, nil
}

// FindPendingByCompanyAndEmail returns the invitation blocking a duplicate
// invite, if one exists: same pair, not accepted, not expired.
func (r *InvitationRepository) FindPendingByCompanyAndEmail(ctx context.Context, companyID uuid.UUID, email string, now time.Time) (*model.Invitation, error) {
	var invitation model.Invitation
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND email = ? AND accepted_at IS NULL AND expires_at > ?", companyID, email, now).
		First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("finding pending invitation: %w", err)
	}
	return &invitation, nil
}

func (r *InvitationRepository) FindPendingByCompany(ctx context.Context, companyID uuid.UUID, now time.Time) ([]*model.Invitation, error) {
	var invitations []*model.Invitation
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND accepted_at IS NULL AND expires_at > ?", companyID, now).
		Order("created_at DESC").
		Find(&invitations).Error
	if err != nil {
		return nil, fmt.Errorf("finding pending invitations: %w", err)
	}
	return invitations, nil
}

// AcceptWithEmployee consumes the invitation and creates the employee binding
// as one transaction. The conditional update on accepted_at is the
// single-use primitive: of two concurrent accepts, exactly one sees a row
// affected; the other gets ErrInvitationAccepted. The employee insert racing
// a concurrent join by the same user loses on the partial unique index and
// maps to ErrAlreadyMember, rolling the accept back with it.
func (r *InvitationRepository) AcceptWithEmployee(ctx context.Context, invitationID uuid.UUID, employee *model.Employee) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Invitation{}).
			Where("id = ? AND accepted_at IS NULL", invitationID).
			Update("accepted_at", time.Now().UTC())
		if result.Error != nil {
			return fmt.Errorf("marking invitation accepted: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrInvitationAccepted
		}

		if err := tx.Create(employee).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrAlreadyMember
			}
			return fmt.Errorf("creating employee: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrInvitationAccepted) || errors.Is(err, domain.ErrAlreadyMember) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *InvitationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Invitation{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting invitation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvitationNotFound
	}
	return nil
}

func (r *InvitationRepository) CountExpiredPending(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Invitation{}).
		Where("accepted_at IS NULL AND expires_at <= ?", now).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting expired invitations: %w", err)
	}
	return count, nil
}

// PurgeExpiredBefore removes unaccepted invitations that expired before the
// cutoff. Pending-ness is computed from expires_at, so purging is hygiene,
// not correctness.
func (r *InvitationRepository) PurgeExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("accepted_at IS NULL AND expires_at <= ?", cutoff).
		Delete(&model.Invitation{})
	if result.Error != nil {
		return 0, fmt.Errorf("purging expired invitations: %w", result.Error)
	}
	return result.RowsAffected, nil
}
