package engine

import "time"

// Stats counts what one solve did. It is owned by the caller and threaded
// through propagation and search; there is no global state, so concurrent
// solves never share counters.
type Stats struct {
	LoneSingles    int           `json:"loneSingles"`
	HiddenSingles  int           `json:"hiddenSingles"`
	NakedPairs     int           `json:"nakedPairs"`
	NakedTriples   int           `json:"nakedTriples"`
	Visited        int           `json:"visited"`
	Contradictions int           `json:"contradictions"`
	Duration       time.Duration `json:"-"`
}
