package list_clients

import (
	"net/http"

	"github.com/barbearia/barbershop-service/internal/api/handlers"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients?q=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	result, err := h.service.List(r.Context(), q)
	if err != nil {
		h.logger.Error("GET /clients - Failed to list clients: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients - Listed %d clients (q=%q)", result.Total, q)
	handlers.RespondJSON(w, http.StatusOK, result)
}
