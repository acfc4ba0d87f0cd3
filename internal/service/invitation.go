// internal/service/invitation.go
package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/slipcheck/platform/internal/authz"
	"github.com/slipcheck/platform/internal/config"
	"github.com/slipcheck/platform/internal/domain"
	"github.com/slipcheck/platform/internal/email"
	"github.com/slipcheck/platform/internal/email/mailer"
	"github.com/slipcheck/platform/internal/model"
	"github.com/slipcheck/platform/internal/repository"
)

// codeAlphabet omits 0/O, 1/I and L so codes survive being read aloud or
// typed from paper. Codes are not globally deduplicated; lookup requires the
// invitation to also be pending and unexpired, which bounds collision
// exposure.
const (
	codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	codeLength   = 8
)

type InvitationService struct {
	invitationRepo repository.InvitationRepositoryIface
	employeeRepo   repository.EmployeeRepositoryIface
	companyRepo    repository.CompanyRepositoryIface
	userRepo       repository.UserRepositoryIface
	emailService   *email.Service
	config         *config.Config
	validate       *validator.Validate
}

func NewInvitationService(
	invitationRepo repository.InvitationRepositoryIface,
	employeeRepo repository.EmployeeRepositoryIface,
	companyRepo repository.CompanyRepositoryIface,
	userRepo repository.UserRepositoryIface,
	emailService *email.Service,
	config *config.Config,
) *InvitationService {
	return &InvitationService{
		invitationRepo: invitationRepo,
		employeeRepo:   employeeRepo,
		companyRepo:    companyRepo,
		userRepo:       userRepo,
		emailService:   emailService,
		config:         config,
		validate:       validator.New(),
	}
}

type CreateInvitationInput struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

type CreateInvitationOutput struct {
	Invitation *model.Invitation `json:"invitation"`
	EmailSent  bool              `json:"emailSent"`
}

// Create issues an invitation to join the inviter's company. The invitation
// row is authoritative; the email is a convenience side channel and its
// failure never rolls the invitation back.
func (s *InvitationService) Create(ctx context.Context, inviter *model.Employee, input CreateInvitationInput) (*CreateInvitationOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	// Role is re-derived from the binding, never from the client.
	if !inviter.Role.Can(authz.CapManageEmployees) {
		return nil, domain.ErrInsufficientRole
	}

	role, err := authz.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}
	if !role.Invitable() {
		return nil, domain.ErrOwnerRoleReserved
	}

	invited := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.invitationRepo.FindPendingByCompanyAndEmail(ctx, inviter.CompanyID, invited, time.Now().UTC()); err == nil {
		return nil, domain.ErrDuplicateInvitation
	} else if !errors.Is(err, domain.ErrInvitationNotFound) {
		return nil, err
	}

	company, err := s.companyRepo.FindByID(ctx, inviter.CompanyID)
	if err != nil {
		return nil, err
	}

	seats, err := s.employeeRepo.CountActiveByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	if seats >= int64(company.MaxEmployees) {
		return nil, domain.ErrSeatLimitReached
	}

	code, err := generateInvitationCode()
	if err != nil {
		return nil, fmt.Errorf("generating invitation code: %w", err)
	}

	invitation := &model.Invitation{
		CompanyID:   company.ID,
		Email:       invited,
		Role:        role,
		Code:        code,
		InvitedByID: inviter.ID,
		ExpiresAt:   time.Now().UTC().AddDate(0, 0, s.config.Tenancy.InvitationTTLDays),
	}

	if err := s.invitationRepo.Create(ctx, invitation); err != nil {
		return nil, err
	}

	emailSent := s.sendInvitationEmail(ctx, company, inviter, invitation)

	return &CreateInvitationOutput{Invitation: invitation, EmailSent: emailSent}, nil
}

func (s *InvitationService) sendInvitationEmail(ctx context.Context, company *model.Company, inviter *model.Employee, invitation *model.Invitation) bool {
	if s.emailService == nil {
		return false
	}

	inviterName := company.Name
	if inviterUser, err := s.userRepo.FindByID(ctx, inviter.UserID); err == nil {
		inviterName = inviterUser.Name
	}

	err := mailer.SendInvitationEmail(s.emailService, invitation.Email, mailer.InvitationTemplateData{
		CompanyName:    company.Name,
		InviterName:    inviterName,
		Role:           string(invitation.Role),
		InvitationCode: invitation.Code,
		JoinLink:       fmt.Sprintf("%s/join?code=%s", s.config.BaseURL, invitation.Code),
		ExpiresAt:      invitation.ExpiresAt.Format("January 2, 2006"),
	})
	if err != nil {
		slog.WarnContext(ctx, "invitation email delivery failed",
			"invitation_id", invitation.ID.String(),
			"error", err,
		)
		return false
	}
	return true
}

// List returns the company's pending invitations.
func (s *InvitationService) List(ctx context.Context, caller *model.Employee) ([]*model.Invitation, error) {
	if !caller.Role.Can(authz.CapManageEmployees) {
		return nil, domain.ErrInsufficientRole
	}
	return s.invitationRepo.FindPendingByCompany(ctx, caller.CompanyID, time.Now().UTC())
}

// Revoke deletes a pending invitation. Another tenant's invitation resolves
// to not-found, never forbidden.
func (s *InvitationService) Revoke(ctx context.Context, caller *model.Employee, invitationID uuid.UUID) error {
	if !caller.Role.Can(authz.CapManageEmployees) {
		return domain.ErrInsufficientRole
	}

	invitation, err := s.invitationRepo.FindByID(ctx, invitationID)
	if err != nil {
		return err
	}
	if invitation.CompanyID != caller.CompanyID {
		return domain.ErrInvitationNotFound
	}
	if invitation.IsAccepted() {
		return domain.ErrInvitationAccepted
	}

	return s.invitationRepo.Delete(ctx, invitation.ID)
}

type JoinCompanyInput struct {
	InvitationCode string `json:"invitationCode" validate:"required"`
}

// Join consumes an invitation: it creates the employee binding at the invited
// role and marks the invitation accepted, as one unit. Order of the error
// checks matters: expiry beats acceptance state, and an already-bound user
// is rejected before the invitation is touched.
func (s *InvitationService) Join(ctx context.Context, userID uuid.UUID, input JoinCompanyInput) (*CompanyOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	code := strings.ToUpper(strings.TrimSpace(input.InvitationCode))

	invitation, err := s.invitationRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if invitation.IsExpired(now) {
		return nil, domain.ErrInvitationExpired
	}
	if invitation.IsAccepted() {
		return nil, domain.ErrInvitationAccepted
	}

	if _, err := s.employeeRepo.FindActiveByUser(ctx, userID); err == nil {
		return nil, domain.ErrAlreadyMember
	} else if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, err
	}

	company, err := s.companyRepo.FindByID(ctx, invitation.CompanyID)
	if err != nil {
		return nil, err
	}
	if !company.IsActive {
		return nil, domain.ErrCompanyInactive
	}

	seats, err := s.employeeRepo.CountActiveByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	if seats >= int64(company.MaxEmployees) {
		return nil, domain.ErrSeatLimitReached
	}

	employee := &model.Employee{
		CompanyID:       company.ID,
		UserID:          userID,
		EmployeeNumber:  fmt.Sprintf("EMP-%04d", seats+1),
		Role:            invitation.Role,
		SiteAssignments: []string{},
		IsActive:        true,
	}

	if err := s.invitationRepo.AcceptWithEmployee(ctx, invitation.ID, employee); err != nil {
		return nil, err
	}

	return &CompanyOutput{Company: company, Employee: employee}, nil
}

// generateInvitationCode creates a short human-typable code.
func generateInvitationCode() (string, error) {
	code := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code), nil
}
