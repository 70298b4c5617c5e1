package domain

// Status is the ordinal health classification of a scored node.
type Status string

const (
	StatusGreen Status = "green"
	StatusAmber Status = "amber"
	StatusRed   Status = "red"
)

// Band cut points. Downstream alerting and UI coloring depend on these
// exact values; do not change them without coordinating both.
const (
	GreenThreshold = 70.0
	AmberThreshold = 40.0
)

// Classify maps a numeric score to its status band.
// The lower bound of each band is inclusive.
func Classify(score float64) Status {
	switch {
	case score >= GreenThreshold:
		return StatusGreen
	case score >= AmberThreshold:
		return StatusAmber
	default:
		return StatusRed
	}
}

// severity ranks statuses from healthy (0) to critical (2).
func (s Status) severity() int {
	switch s {
	case StatusRed:
		return 2
	case StatusAmber:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether s is at least as severe as threshold.
// Used by the alert extractor: AtLeast(StatusAmber) selects amber and red.
func (s Status) AtLeast(threshold Status) bool {
	return s.severity() >= threshold.severity()
}

// Valid reports whether s is one of the three known bands.
func (s Status) Valid() bool {
	switch s {
	case StatusGreen, StatusAmber, StatusRed:
		return true
	}
	return false
}
