package domain

// Setting is a single key/value configuration record. Values are stored as
// strings; numeric interpretation is the caller's responsibility.
type Setting struct {
	Key   string
	Value string
}

// Well-known setting keys (stable wire format).
const (
	SettingEmailMode         = "email.mode"
	SettingEmailFrom         = "email.from"
	SettingEstimatorTargetCm = "estimator.targetCm"
	SettingEstimatorBaseRate = "estimator.baseRateCmPerDay"
)

// Email modes.
const (
	EmailModeTest = "TEST"
	EmailModeSMTP = "SMTP"
)

// Defaults seeded at startup and used as fallbacks on read.
const (
	DefaultEmailMode         = EmailModeTest
	DefaultEmailFrom         = "no-reply@barbearia.local"
	DefaultEstimatorTargetCm = "1.2"
	DefaultEstimatorBaseRate = "0.04"
)

// DefaultSettings maps every well-known key to its seed value.
var DefaultSettings = map[string]string{
	SettingEmailMode:         DefaultEmailMode,
	SettingEmailFrom:         DefaultEmailFrom,
	SettingEstimatorTargetCm: DefaultEstimatorTargetCm,
	SettingEstimatorBaseRate: DefaultEstimatorBaseRate,
}
