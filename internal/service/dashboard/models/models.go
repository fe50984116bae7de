package models

// Summary is the dashboard counter set.
type Summary struct {
	TotalClients          int64 `json:"totalClients"`
	AppointmentsToday     int64 `json:"appointmentsToday"`
	AppointmentsNext7Days int64 `json:"appointmentsNext7Days"`
	ClientsWithoutPlan    int64 `json:"clientsWithoutPlan"`
	InactivePlans         int64 `json:"inactivePlans"`
}
