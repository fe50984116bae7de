package create_client

import (
	"errors"
	"net/http"

	"github.com/barbearia/barbershop-service/internal/api/handlers"
	"github.com/barbearia/barbershop-service/internal/service/clients"
	"github.com/barbearia/barbershop-service/internal/service/clients/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
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

// Handle POST /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrDuplicateEmail):
			h.logger.Warn("POST /clients - Duplicate email: %s", req.Email)
			handlers.RespondConflict(w, msgDuplicateEmail)

		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("POST /clients - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /clients - Failed to create client: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients - Client created: client_id=%d, welcome_sent=%t", result.ID, result.WelcomeEmailSent)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
