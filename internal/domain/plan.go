package domain

import "time"

// PlanDayRule restricts which weekdays a plan allows appointments on.
type PlanDayRule string

const (
	DayRuleAnyDay       PlanDayRule = "ANY_DAY"
	DayRuleWeekdaysOnly PlanDayRule = "WEEKDAYS_ONLY"
)

// IsValid reports whether the rule is one of the known values.
func (r PlanDayRule) IsValid() bool {
	return r == DayRuleAnyDay || r == DayRuleWeekdaysOnly
}

// Plan represents a subscription plan and its booking rules.
type Plan struct {
	ID                         int64
	Name                       string
	Price                      float64
	DayRule                    PlanDayRule
	MinDaysBetweenAppointments int
	WeeklyLimit                int
	Active                     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AllowsWeekends returns true when the plan permits Saturday and Sunday
// appointments.
func (p *Plan) AllowsWeekends() bool {
	return p.DayRule != DayRuleWeekdaysOnly
}
