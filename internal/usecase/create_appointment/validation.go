package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/barbearia/barbershop-service/internal/domain"
)

// Metric rule labels.
const (
	ruleNoActivePlan   = "no_active_plan"
	ruleWeekdayOnly    = "weekday_only"
	ruleWeeklyLimit    = "weekly_limit"
	ruleMinimumSpacing = "minimum_spacing"
)

func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientId must be positive", ErrInvalidInput)
	}
	if req.AppointmentDateTime.IsZero() {
		return fmt.Errorf("%w: appointmentDateTime is required", ErrInvalidInput)
	}
	service := strings.TrimSpace(req.Service)
	if service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if len(service) > domain.MaxServiceLength {
		return fmt.Errorf("%w: service exceeds %d characters", ErrInvalidInput, domain.MaxServiceLength)
	}
	return nil
}

// weekWindow returns the Monday and Sunday dates of the ISO week containing
// day, both at midnight.
func weekWindow(day time.Time) (time.Time, time.Time) {
	date := truncateToDate(day)
	offset := int(date.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday belongs to the week started the previous Monday
	}
	monday := date.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func isWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// validateDayRule rejects weekend appointments for weekday-only plans.
func validateDayRule(plan *domain.Plan, candidate time.Time) error {
	if !plan.AllowsWeekends() && isWeekend(candidate) {
		return ErrWeekdayOnly
	}
	return nil
}

// validateWeeklyLimit counts the client's scheduled appointments whose date
// falls inside the candidate's ISO week. The candidate itself is not part
// of history yet and is never counted.
func validateWeeklyLimit(plan *domain.Plan, history []*domain.Appointment, candidate time.Time) error {
	monday, sunday := weekWindow(candidate)

	scheduled := 0
	for _, a := range history {
		if !a.IsScheduled() {
			continue
		}
		date := a.Date()
		if !date.Before(monday) && !date.After(sunday) {
			scheduled++
		}
	}
	if scheduled >= plan.WeeklyLimit {
		return ErrWeeklyLimit
	}
	return nil
}

// validateMinimumSpacing compares the candidate's date against the latest
// completed visit. Clients with no completed visit are not constrained.
func validateMinimumSpacing(plan *domain.Plan, history []*domain.Appointment, candidate time.Time) error {
	var lastDone *domain.Appointment
	for _, a := range history {
		if !a.IsDone() {
			continue
		}
		if lastDone == nil || a.AppointmentDateTime.After(lastDone.AppointmentDateTime) {
			lastDone = a
		}
	}
	if lastDone == nil {
		return nil
	}

	days := domain.DaysBetween(lastDone.AppointmentDateTime, candidate)
	if days < plan.MinDaysBetweenAppointments {
		return ErrMinimumSpacing
	}
	return nil
}
