package progress

// Status is the phase label shown while matching runs.
type Status int

const (
	StatusAnalyzing Status = iota
	StatusSearching
	StatusScoring
	StatusFinalizing
)

// StatusFor maps a progress value to its band: [0,30) analyzing,
// [30,60) searching, [60,90) scoring, [90,100] finalizing. Values outside
// [0,100] are clamped first.
func StatusFor(value int) Status {
	switch {
	case value < 30:
		return StatusAnalyzing
	case value < 60:
		return StatusSearching
	case value < 90:
		return StatusScoring
	default:
		return StatusFinalizing
	}
}

func (s Status) String() string {
	switch s {
	case StatusAnalyzing:
		return "analyzing"
	case StatusSearching:
		return "searching"
	case StatusScoring:
		return "scoring"
	case StatusFinalizing:
		return "finalizing"
	default:
		return "unknown"
	}
}

// Message returns the sentence displayed for the status.
func (s Status) Message() string {
	switch s {
	case StatusAnalyzing:
		return "Analyzing your preferences..."
	case StatusSearching:
		return "Searching for compatible matches..."
	case StatusScoring:
		return "Calculating compatibility scores..."
	case StatusFinalizing:
		return "Almost there! Preparing your matches..."
	default:
		return ""
	}
}
