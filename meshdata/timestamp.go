package meshdata

import "time"

// TimeUnit is the unit of a relative timestamp.
type TimeUnit int

const (
	Milliseconds TimeUnit = iota
	Seconds
	Minutes
	Hours
	Days
	Weeks
)

// String returns the unit name.
func (u TimeUnit) String() string {
	switch u {
	case Milliseconds:
		return "milliseconds"
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	case Days:
		return "days"
	case Weeks:
		return "weeks"
	}
	return "unknown"
}

// hoursPer returns the unit's length in hours.
func (u TimeUnit) hoursPer() float64 {
	switch u {
	case Milliseconds:
		return 1.0 / 3600000.0
	case Seconds:
		return 1.0 / 3600.0
	case Minutes:
		return 1.0 / 60.0
	case Days:
		return 24.0
	case Weeks:
		return 168.0
	}
	return 1.0 // Hours
}

// RelativeTimestamp is a dataset's offset from its group's reference time.
// Stored canonically in hours; zero value is time zero.
type RelativeTimestamp struct {
	hours float64
}

// NewRelativeTimestamp returns a timestamp of value expressed in unit.
func NewRelativeTimestamp(value float64, unit TimeUnit) RelativeTimestamp {
	return RelativeTimestamp{hours: value * unit.hoursPer()}
}

// Value returns the timestamp expressed in unit.
func (t RelativeTimestamp) Value(unit TimeUnit) float64 {
	return t.hours / unit.hoursPer()
}

// Duration returns the timestamp as a time.Duration.
func (t RelativeTimestamp) Duration() time.Duration {
	return time.Duration(t.hours * float64(time.Hour))
}
