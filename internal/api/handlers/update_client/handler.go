package update_client

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barbearia/barbershop-service/internal/api/handlers"
	"github.com/barbearia/barbershop-service/internal/service/clients"
	"github.com/barbearia/barbershop-service/internal/service/clients/models"
)

const (
	msgInvalidClientID    = "invalid client ID"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "client not found"
	msgDuplicateEmail     = "email is already registered"
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

// Handle PUT /api/v1/clients/{clientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req models.UpdateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /clients/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), clientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("PUT /clients/{id} - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, clients.ErrDuplicateEmail):
			h.logger.Warn("PUT /clients/{id} - Duplicate email: client_id=%d", clientID)
			handlers.RespondConflict(w, msgDuplicateEmail)

		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("PUT /clients/{id} - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /clients/{id} - Failed to update client: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /clients/{id} - Client updated: client_id=%d", clientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
