// internal/handler/billing.go
package handler

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/slipcheck/platform/internal/service"
)

type BillingHandler struct {
	billingService *service.BillingService
	webhookSecret  string
}

func NewBillingHandler(billingService *service.BillingService, webhookSecret string) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		webhookSecret:  webhookSecret,
	}
}

// Webhook handles POST /billing/webhook. The endpoint is unauthenticated but
// gated on the provider's shared secret; a missing secret config disables the
// endpoint rather than leaving it open.
func (h *BillingHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	if h.webhookSecret == "" {
		respondWithError(w, http.StatusNotFound, "Not found")
		return
	}

	provided := r.Header.Get("X-Webhook-Secret")
	if subtle.ConstantTimeCompare([]byte(provided), []byte(h.webhookSecret)) != 1 {
		respondWithError(w, http.StatusUnauthorized, "Invalid webhook secret")
		return
	}

	var event service.WebhookEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.billingService.HandleEvent(r.Context(), event); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to process event")
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
