package cancel_subscription

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barbearia/barbershop-service/internal/api/handlers"
	"github.com/barbearia/barbershop-service/internal/service/subscriptions"
)

const (
	msgInvalidClientID = "invalid client ID"
	msgNoActive        = "client has no active subscription"
)

type Handler struct {
	service SubscriptionService
	logger  Logger
}

func NewHandler(service SubscriptionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients/{clientId}/subscription/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /clients/{id}/subscription/cancel - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	if err := h.service.Cancel(r.Context(), clientID); err != nil {
		switch {
		case errors.Is(err, subscriptions.ErrNoActiveSubscription):
			h.logger.Warn("POST /clients/{id}/subscription/cancel - No active subscription: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgNoActive)

		default:
			h.logger.Error("POST /clients/{id}/subscription/cancel - Failed to cancel: client_id=%d, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients/{id}/subscription/cancel - Subscription cancelled: client_id=%d", clientID)
	handlers.RespondNoContent(w)
}
