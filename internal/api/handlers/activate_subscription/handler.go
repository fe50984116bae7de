package activate_subscription

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barbearia/barbershop-service/internal/api/handlers"
	"github.com/barbearia/barbershop-service/internal/service/subscriptions"
	"github.com/barbearia/barbershop-service/internal/service/subscriptions/models"
)

const (
	msgInvalidClientID    = "invalid client ID"
	msgInvalidRequestBody = "invalid request body"
	msgClientNotFound     = "client not found"
	msgPlanNotFound       = "plan not found"
	msgPlanInactive       = "plan is not active"
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

// Handle POST /api/v1/clients/{clientId}/subscription
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /clients/{id}/subscription - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req ActivateSubscriptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients/{id}/subscription - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Activate(r.Context(), &models.ActivateRequest{
		ClientID:  clientID,
		PlanID:    req.PlanID,
		StartDate: req.StartDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, subscriptions.ErrClientNotFound):
			h.logger.Warn("POST /clients/{id}/subscription - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, subscriptions.ErrPlanNotFound):
			h.logger.Warn("POST /clients/{id}/subscription - Plan not found: plan_id=%d", req.PlanID)
			handlers.RespondNotFound(w, msgPlanNotFound)

		case errors.Is(err, subscriptions.ErrPlanInactive):
			h.logger.Warn("POST /clients/{id}/subscription - Plan inactive: plan_id=%d", req.PlanID)
			handlers.RespondUnprocessable(w, msgPlanInactive)

		case errors.Is(err, subscriptions.ErrInvalidInput):
			h.logger.Warn("POST /clients/{id}/subscription - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /clients/{id}/subscription - Failed to activate: client_id=%d, plan_id=%d, error=%v",
				clientID, req.PlanID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients/{id}/subscription - Subscription activated: subscription_id=%d, client_id=%d, plan_id=%d",
		result.ID, clientID, req.PlanID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
