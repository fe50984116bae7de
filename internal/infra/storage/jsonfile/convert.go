package jsonfile

import (
	"sort"
	"time"

	"github.com/barbearia/barbershop-service/internal/domain"
)

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateTimeFormat)
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(domain.DateTimeFormat, s, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateFormat)
}

func parseDate(s string) time.Time {
	t, err := time.ParseInLocation(domain.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

func sortClientsByName(clients []*domain.Client) {
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].FullName < clients[j].FullName
	})
}

func sortPlansByName(plans []*domain.Plan) {
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].Name < plans[j].Name
	})
}

func sortAppointmentsByDateTime(appointments []*domain.Appointment) {
	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].AppointmentDateTime.Before(appointments[j].AppointmentDateTime)
	})
}
