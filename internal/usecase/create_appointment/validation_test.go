package create_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbearia/barbershop-service/internal/domain"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation(domain.DateTimeFormat, value, time.Local)
	require.NoError(t, err)
	return parsed
}

func TestWeekWindow(t *testing.T) {
	// Wednesday 2026-03-04 belongs to the week 2026-03-02 .. 2026-03-08.
	monday, sunday := weekWindow(mustParse(t, "2026-03-04T15:30:00"))
	assert.Equal(t, "2026-03-02", monday.Format(domain.DateFormat))
	assert.Equal(t, "2026-03-08", sunday.Format(domain.DateFormat))

	// Sunday stays in the week that started the previous Monday.
	monday, sunday = weekWindow(mustParse(t, "2026-03-08T09:00:00"))
	assert.Equal(t, "2026-03-02", monday.Format(domain.DateFormat))
	assert.Equal(t, "2026-03-08", sunday.Format(domain.DateFormat))

	// Monday starts its own week.
	monday, _ = weekWindow(mustParse(t, "2026-03-09T09:00:00"))
	assert.Equal(t, "2026-03-09", monday.Format(domain.DateFormat))
}

func TestValidateDayRule(t *testing.T) {
	weekdaysOnly := &domain.Plan{DayRule: domain.DayRuleWeekdaysOnly}
	anyDay := &domain.Plan{DayRule: domain.DayRuleAnyDay}

	saturday := mustParse(t, "2026-03-07T10:00:00")
	sunday := mustParse(t, "2026-03-08T10:00:00")
	friday := mustParse(t, "2026-03-06T10:00:00")

	assert.ErrorIs(t, validateDayRule(weekdaysOnly, saturday), ErrWeekdayOnly)
	assert.ErrorIs(t, validateDayRule(weekdaysOnly, sunday), ErrWeekdayOnly)
	assert.NoError(t, validateDayRule(weekdaysOnly, friday))
	assert.NoError(t, validateDayRule(anyDay, saturday))
}

func TestValidateWeeklyLimit(t *testing.T) {
	plan := &domain.Plan{WeeklyLimit: 1}

	scheduledMonday := &domain.Appointment{
		AppointmentDateTime: mustParse(t, "2026-03-02T10:00:00"),
		Status:              domain.StatusScheduled,
	}

	// Another booking in the same Monday-Sunday week hits the limit.
	err := validateWeeklyLimit(plan, []*domain.Appointment{scheduledMonday}, mustParse(t, "2026-03-08T10:00:00"))
	assert.ErrorIs(t, err, ErrWeeklyLimit)

	// The following Monday is a fresh week.
	err = validateWeeklyLimit(plan, []*domain.Appointment{scheduledMonday}, mustParse(t, "2026-03-09T10:00:00"))
	assert.NoError(t, err)

	// Non-scheduled statuses never count against the limit.
	canceled := &domain.Appointment{
		AppointmentDateTime: mustParse(t, "2026-03-03T10:00:00"),
		Status:              domain.StatusCanceled,
	}
	done := &domain.Appointment{
		AppointmentDateTime: mustParse(t, "2026-03-04T10:00:00"),
		Status:              domain.StatusDone,
	}
	err = validateWeeklyLimit(plan, []*domain.Appointment{canceled, done}, mustParse(t, "2026-03-06T10:00:00"))
	assert.NoError(t, err)
}

func TestValidateMinimumSpacing(t *testing.T) {
	plan := &domain.Plan{MinDaysBetweenAppointments: 7}

	lastDone := &domain.Appointment{
		AppointmentDateTime: mustParse(t, "2026-03-01T18:00:00"),
		Status:              domain.StatusDone,
	}

	// Six whole days after the last completed visit is too soon.
	err := validateMinimumSpacing(plan, []*domain.Appointment{lastDone}, mustParse(t, "2026-03-07T08:00:00"))
	assert.ErrorIs(t, err, ErrMinimumSpacing)

	// Exactly seven days is allowed; the comparison is date-only, so the
	// time of day never matters.
	err = validateMinimumSpacing(plan, []*domain.Appointment{lastDone}, mustParse(t, "2026-03-08T08:00:00"))
	assert.NoError(t, err)

	// Clients with no completed visit are not constrained.
	scheduled := &domain.Appointment{
		AppointmentDateTime: mustParse(t, "2026-03-01T18:00:00"),
		Status:              domain.StatusScheduled,
	}
	err = validateMinimumSpacing(plan, []*domain.Appointment{scheduled}, mustParse(t, "2026-03-02T08:00:00"))
	assert.NoError(t, err)
}

func TestValidateMinimumSpacing_UsesLatestDone(t *testing.T) {
	plan := &domain.Plan{MinDaysBetweenAppointments: 7}

	history := []*domain.Appointment{
		{AppointmentDateTime: mustParse(t, "2026-02-01T10:00:00"), Status: domain.StatusDone},
		{AppointmentDateTime: mustParse(t, "2026-03-01T10:00:00"), Status: domain.StatusDone},
	}

	// Eight days after the older visit but only five after the latest one.
	err := validateMinimumSpacing(plan, history, mustParse(t, "2026-03-06T10:00:00"))
	assert.ErrorIs(t, err, ErrMinimumSpacing)
}

func TestValidateMinimumSpacing_AcrossClockChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	plan := &domain.Plan{MinDaysBetweenAppointments: 7}
	lastDone := &domain.Appointment{
		AppointmentDateTime: time.Date(2026, 3, 7, 18, 0, 0, 0, loc),
		Status:              domain.StatusDone,
	}

	// Clocks spring forward on 2026-03-08; the interval is an hour short of
	// seven 24-hour days, but the calendar distance is exactly seven days.
	err = validateMinimumSpacing(plan, []*domain.Appointment{lastDone}, time.Date(2026, 3, 14, 8, 0, 0, 0, loc))
	assert.NoError(t, err)

	err = validateMinimumSpacing(plan, []*domain.Appointment{lastDone}, time.Date(2026, 3, 13, 8, 0, 0, 0, loc))
	assert.ErrorIs(t, err, ErrMinimumSpacing)
}

func TestValidateRequest(t *testing.T) {
	valid := &Request{
		ClientID:            1,
		AppointmentDateTime: mustParse(t, "2026-03-02T10:00:00"),
		Service:             "corte",
	}
	assert.NoError(t, validateRequest(valid))

	assert.ErrorIs(t, validateRequest(&Request{
		ClientID:            0,
		AppointmentDateTime: valid.AppointmentDateTime,
		Service:             "corte",
	}), ErrInvalidInput)

	assert.ErrorIs(t, validateRequest(&Request{
		ClientID:            1,
		AppointmentDateTime: valid.AppointmentDateTime,
		Service:             "   ",
	}), ErrInvalidInput)
}
