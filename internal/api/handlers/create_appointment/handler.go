package create_appointment

import (
	"errors"
	"net/http"

	"github.com/barbearia/barbershop-service/internal/api/handlers"
	createAppointment "github.com/barbearia/barbershop-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateTime    = "invalid appointment datetime, expected YYYY-MM-DDTHH:MM:SS"
	msgClientNotFound     = "client not found"
	msgNoActivePlan       = "client has no active plan"
	msgPlanNotFound       = "subscribed plan no longer exists"
	msgWeekdayOnly        = "plan allows weekday appointments only"
	msgWeeklyLimit        = "weekly appointment limit reached"
	msgMinimumSpacing     = "too soon after the last completed visit"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse datetime %q: %v", req.AppointmentDateTime, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrClientNotFound):
			h.logger.Warn("POST /appointments - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createAppointment.ErrNoActivePlan):
			h.logger.Warn("POST /appointments - No active plan: client_id=%d", req.ClientID)
			handlers.RespondUnprocessable(w, msgNoActivePlan)

		case errors.Is(err, createAppointment.ErrPlanNotFound):
			h.logger.Error("POST /appointments - Subscribed plan missing: client_id=%d", req.ClientID)
			handlers.RespondUnprocessable(w, msgPlanNotFound)

		case errors.Is(err, createAppointment.ErrWeekdayOnly):
			h.logger.Warn("POST /appointments - Weekday-only plan: client_id=%d", req.ClientID)
			handlers.RespondUnprocessable(w, msgWeekdayOnly)

		case errors.Is(err, createAppointment.ErrWeeklyLimit):
			h.logger.Warn("POST /appointments - Weekly limit reached: client_id=%d", req.ClientID)
			handlers.RespondUnprocessable(w, msgWeeklyLimit)

		case errors.Is(err, createAppointment.ErrMinimumSpacing):
			h.logger.Warn("POST /appointments - Minimum spacing violated: client_id=%d", req.ClientID)
			handlers.RespondUnprocessable(w, msgMinimumSpacing)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, error=%v",
				req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, client_id=%d",
		result.ID, req.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
