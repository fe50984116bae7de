package update_plan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barbearia/barbershop-service/internal/api/handlers"
	"github.com/barbearia/barbershop-service/internal/service/plans"
	"github.com/barbearia/barbershop-service/internal/service/plans/models"
)

const (
	msgInvalidPlanID      = "invalid plan ID"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "plan not found"
	msgDuplicateName      = "plan name is already in use"
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

// Handle PUT /api/v1/plans/{planId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	planID, err := strconv.ParseInt(mux.Vars(r)["planId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /plans/{id} - Invalid plan ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlanID)
		return
	}

	var req models.UpdatePlanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /plans/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), planID, &req)
	if err != nil {
		switch {
		case errors.Is(err, plans.ErrPlanNotFound):
			h.logger.Warn("PUT /plans/{id} - Plan not found: plan_id=%d", planID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, plans.ErrDuplicateName):
			h.logger.Warn("PUT /plans/{id} - Duplicate name: plan_id=%d", planID)
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, plans.ErrInvalidInput):
			h.logger.Warn("PUT /plans/{id} - Invalid input: plan_id=%d, error=%v", planID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /plans/{id} - Failed to update plan: plan_id=%d, error=%v", planID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /plans/{id} - Plan updated: plan_id=%d", planID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
