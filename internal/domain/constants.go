package domain

// Time format constants. Appointment datetimes are naive local time.
const (
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // ISO-8601 without offset
)

// Estimator bounds.
const (
	MinBaselineDays = 5 // floor for the rate-derived baseline
	MinEstimateDays = 3 // floor for both ends of the returned range
)

// Age brackets for the estimator rate adjustment.
const (
	EstimatorYouthAgeLimit = 18   // below: faster growth
	EstimatorAdultAgeLimit = 45   // above: slower growth
	EstimatorYouthFactor   = 1.10 // multiplier for age < 18
	EstimatorSeniorFactor  = 0.9  // multiplier for age > 45
)

// History threshold: DONE appointments needed before the moving-average
// blend replaces the pure heuristic.
const EstimatorHistoryMinVisits = 3

// Validation limits for CRUD input.
const (
	MaxFullNameLength = 255
	MaxEmailLength    = 255
	MaxPhoneLength    = 60
	MaxPlanNameLength = 120
	MaxServiceLength  = 255
	MaxNotesLength    = 2000
	MaxSettingKeyLen  = 100
	MaxSettingValLen  = 1000
)
