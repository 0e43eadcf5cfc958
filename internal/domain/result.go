package domain

import "time"

// PairStatus classifies the outcome of comparing one matched pair.
type PairStatus string

const (
	StatusIdentical PairStatus = "identical"
	StatusDifferent PairStatus = "different"
	StatusFailed    PairStatus = "failed"
)

// Pair is one file from each input directory sharing the same derived key.
type Pair struct {
	Key   string
	PathA string
	PathB string
}

// MatchSet is the output of matching two directories: the ordered pairs plus
// the files that had no counterpart on the other side.
type MatchSet struct {
	Pairs      []Pair
	UnmatchedA []string
	UnmatchedB []string
}

// PairResult records the outcome of processing one pair.
type PairResult struct {
	Key   string
	PathA string
	PathB string

	Status       PairStatus
	SizeMismatch bool   // the pair differs by dimensions; no mask exists
	DiffPixels   uint64 // pixels where the mask is set
	MaxDelta     uint8  // largest per-channel delta observed
	DiffPath     string // composite image path, set for rendered pairs
	Error        string // set when Status == StatusFailed
}

// RunResult is the outcome of one full comparison run.
type RunResult struct {
	DirA      string
	DirB      string
	OutputDir string

	StartedAt time.Time
	EndedAt   time.Time

	Results    []PairResult
	UnmatchedA []string
	UnmatchedB []string

	ReportPath string
}

// Keys returns the keys of all pairs with the given status, in processing order.
func (r RunResult) Keys(status PairStatus) []string {
	var out []string
	for _, pr := range r.Results {
		if pr.Status == status {
			out = append(out, pr.Key)
		}
	}
	return out
}

// Counts returns how many pairs ended up in each status.
func (r RunResult) Counts() (identical, different, failed int) {
	for _, pr := range r.Results {
		switch pr.Status {
		case StatusIdentical:
			identical++
		case StatusDifferent:
			different++
		case StatusFailed:
			failed++
		}
	}
	return identical, different, failed
}

// Processed returns the number of pairs that were compared without failing.
func (r RunResult) Processed() int {
	identical, different, _ := r.Counts()
	return identical + different
}
