package get_dashboard

import (
	"net/http"

	"github.com/barbearia/barbershop-service/internal/api/handlers"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.logger.Error("GET /dashboard - Failed to build summary: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /dashboard - Summary built: clients=%d, today=%d", summary.TotalClients, summary.AppointmentsToday)
	handlers.RespondJSON(w, http.StatusOK, summary)
}
