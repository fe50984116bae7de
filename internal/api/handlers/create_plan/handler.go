package create_plan

import (
	"errors"
	"net/http"

	"github.com/barbearia/barbershop-service/internal/api/handlers"
	"github.com/barbearia/barbershop-service/internal/service/plans"
	"github.com/barbearia/barbershop-service/internal/service/plans/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
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

// Handle POST /api/v1/plans
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePlanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /plans - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, plans.ErrDuplicateName):
			h.logger.Warn("POST /plans - Duplicate name: %q", req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, plans.ErrInvalidInput):
			h.logger.Warn("POST /plans - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /plans - Failed to create plan: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /plans - Plan created: plan_id=%d, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
