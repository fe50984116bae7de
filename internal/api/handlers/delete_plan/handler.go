package delete_plan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barbearia/barbershop-service/internal/api/handlers"
	"github.com/barbearia/barbershop-service/internal/service/plans"
)

const (
	msgInvalidPlanID = "invalid plan ID"
	msgNotFound      = "plan not found"
	msgPlanInUse     = "plan has subscriptions and cannot be deleted"
)

type Handler struct {
	service PlanService
	logger  Logger
}

func NewHandler(service PlanService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/plans/{planId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	planID, err := strconv.ParseInt(mux.Vars(r)["planId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /plans/{id} - Invalid plan ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlanID)
		return
	}

	if err := h.service.Delete(r.Context(), planID); err != nil {
		switch {
		case errors.Is(err, plans.ErrPlanNotFound):
			h.logger.Warn("DELETE /plans/{id} - Plan not found: plan_id=%d", planID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, plans.ErrPlanInUse):
			h.logger.Warn("DELETE /plans/{id} - Plan in use: plan_id=%d", planID)
			handlers.RespondConflict(w, msgPlanInUse)

		default:
			h.logger.Error("DELETE /plans/{id} - Failed to delete plan: plan_id=%d, error=%v", planID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /plans/{id} - Plan deleted: plan_id=%d", planID)
	handlers.RespondNoContent(w)
}
