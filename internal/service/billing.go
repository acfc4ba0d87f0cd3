// internal/service/billing.go
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/slipcheck/platform/internal/domain"
	"github.com/slipcheck/platform/internal/model"
	"github.com/slipcheck/platform/internal/repository"
)

// WebhookEvent is the billing provider's event envelope. Only the fields the
// gate needs are decoded; everything else in the payload is ignored.
type WebhookEvent struct {
	Type string `json:"type"`
	Data struct {
		CustomerEmail string `json:"customer_email"`
		Status        string `json:"status"`
	} `json:"data"`
}

type BillingService struct {
	userRepo repository.UserRepositoryIface
}

func NewBillingService(userRepo repository.UserRepositoryIface) *BillingService {
	return &BillingService{userRepo: userRepo}
}

// HandleEvent applies a webhook event to the customer's subscription status.
// Unknown event types and unknown customers are acknowledged without effect;
// the provider retries on real failures only.
func (s *BillingService) HandleEvent(ctx context.Context, event WebhookEvent) error {
	var status model.SubscriptionStatus

	switch event.Type {
	case "checkout.completed":
		status = model.SubscriptionActive
	case "subscription.updated":
		status = mapProviderStatus(event.Data.Status)
	case "subscription.deleted":
		status = model.SubscriptionCanceled
	default:
		slog.InfoContext(ctx, "ignoring billing event", "type", event.Type)
		return nil
	}

	err := s.userRepo.UpdateSubscriptionStatus(ctx, event.Data.CustomerEmail, status)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			slog.WarnContext(ctx, "billing event for unknown customer",
				"type", event.Type,
				"email", event.Data.CustomerEmail,
			)
			return nil
		}
		return err
	}

	slog.InfoContext(ctx, "subscription status updated",
		"type", event.Type,
		"status", string(status),
	)
	return nil
}

func mapProviderStatus(providerStatus string) model.SubscriptionStatus {
	switch providerStatus {
	case "active":
		return model.SubscriptionActive
	case "trialing":
		return model.SubscriptionTrialing
	case "past_due", "unpaid":
		return model.SubscriptionPastDue
	default:
		return model.SubscriptionCanceled
	}
}
