package meshdata

import "math"

// Statistics holds an aggregate minimum/maximum pair. NaN marks an unset
// field; both fields start unset. When both are set, Minimum <= Maximum.
type Statistics struct {
	Minimum float64
	Maximum float64
}

// NewStatistics returns statistics with both fields unset.
func NewStatistics() Statistics {
	return Statistics{Minimum: math.NaN(), Maximum: math.NaN()}
}

// IsSet reports whether both fields carry a value.
func (s Statistics) IsSet() bool {
	return !math.IsNaN(s.Minimum) && !math.IsNaN(s.Maximum)
}

// Observe folds a single value into the aggregate. NaN values are ignored.
func (s *Statistics) Observe(v float64) {
	if math.IsNaN(v) {
		return
	}
	if math.IsNaN(s.Minimum) || v < s.Minimum {
		s.Minimum = v
	}
	if math.IsNaN(s.Maximum) || v > s.Maximum {
		s.Maximum = v
	}
}

// Combine folds another aggregate into this one. Unset fields in other
// contribute nothing.
func (s *Statistics) Combine(other Statistics) {
	s.Observe(other.Minimum)
	s.Observe(other.Maximum)
}
