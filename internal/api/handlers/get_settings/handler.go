package get_settings

import (
	"net/http"
	"sort"

	"github.com/barbearia/barbershop-service/internal/api/handlers"
)

// SettingsResponse maps setting keys to their effective values.
type SettingsResponse struct {
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

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	found, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /settings - Failed to list settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Key < found[j].Key })

	resp := SettingsResponse{Settings: make(map[string]string, len(found))}
	for _, s := range found {
		resp.Settings[s.Key] = s.Value
	}

	h.logger.Info("GET /settings - Listed %d settings", len(found))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
