package ports

import "github.com/kobayashik-Faber/shotcheck/internal/domain"

// PairMatcher pairs image files from two directories by their derived key.
type PairMatcher interface {
	Match(dirA, dirB string) (domain.MatchSet, error)
}
