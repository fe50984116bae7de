package update_settings

import (
	"fmt"
	"net/http"

	"github.com/barbearia/barbershop-service/internal/api/handlers"
	"github.com/barbearia/barbershop-service/internal/domain"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmptyPayload       = "at least one setting is required"
)

// UpdateSettingsRequest maps setting keys to their new values.
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings"`
}

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if len(req.Settings) == 0 {
		h.logger.Warn("PUT /settings - Empty payload")
		handlers.RespondBadRequest(w, msgEmptyPayload)
		return
	}

	for key, value := range req.Settings {
		if len(key) == 0 || len(key) > domain.MaxSettingKeyLen {
			handlers.RespondBadRequest(w, fmt.Sprintf("setting key %q must be 1-%d characters", key, domain.MaxSettingKeyLen))
			return
		}
		if len(value) > domain.MaxSettingValLen {
			handlers.RespondBadRequest(w, fmt.Sprintf("value for %q exceeds %d characters", key, domain.MaxSettingValLen))
			return
		}
	}

	for key, value := range req.Settings {
		if err := h.service.Set(r.Context(), key, value); err != nil {
			h.logger.Error("PUT /settings - Failed to store %q: %v", key, err)
			handlers.RespondInternalError(w)
			return
		}
	}

	h.logger.Info("PUT /settings - Updated %d settings", len(req.Settings))
	handlers.RespondNoContent(w)
}
