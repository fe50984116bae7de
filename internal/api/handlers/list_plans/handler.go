package list_plans

import (
	"net/http"

	"github.com/barbearia/barbershop-service/internal/api/handlers"
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

// Handle GET /api/v1/plans
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /plans - Failed to list plans: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /plans - Listed %d plans", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
