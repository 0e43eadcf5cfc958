// Package fsmatcher pairs image files from two directories by filename
// prefix, stripping a trailing timestamp-shaped suffix to derive the key.
package fsmatcher

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/kobayashik-Faber/shotcheck/internal/domain"
	"github.com/kobayashik-Faber/shotcheck/internal/ports"
)

type Matcher struct {
	pattern *regexp.Regexp
	exts    map[string]bool
}

// New builds a Matcher from the match configuration. The pattern must be a
// valid regexp; it is applied to the filename stem (name without extension).
func New(cfg domain.MatchConfig) (*Matcher, error) {
	pattern := cfg.Pattern
	if strings.TrimSpace(pattern) == "" {
		pattern = domain.DefaultTimestampPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "fsmatcher.new",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("pattern %q: %w", pattern, err),
		}
	}

	exts := map[string]bool{}
	for _, e := range cfg.Extensions {
		exts[strings.ToLower(e)] = true
	}
	if len(exts) == 0 {
		exts[".png"] = true
	}

	return &Matcher{pattern: re, exts: exts}, nil
}

var _ ports.PairMatcher = (*Matcher)(nil)

// Match lists both directories, derives keys and pairs keys present on both
// sides. Pairs come out ordered lexicographically by key; unmatched files
// are reported per side, ordered by name.
func (m *Matcher) Match(dirA, dirB string) (domain.MatchSet, error) {
	imagesA, err := m.collect(dirA)
	if err != nil {
		return domain.MatchSet{}, err
	}
	imagesB, err := m.collect(dirB)
	if err != nil {
		return domain.MatchSet{}, err
	}

	var common []string
	for key := range imagesA {
		if _, ok := imagesB[key]; ok {
			common = append(common, key)
		}
	}
	sort.Strings(common)

	set := domain.MatchSet{
		Pairs:      make([]domain.Pair, 0, len(common)),
		UnmatchedA: unmatched(imagesA, imagesB),
		UnmatchedB: unmatched(imagesB, imagesA),
	}
	for _, key := range common {
		set.Pairs = append(set.Pairs, domain.Pair{
			Key:   key,
			PathA: imagesA[key],
			PathB: imagesB[key],
		})
	}
	return set, nil
}

// Key derives the matching key for one filename: the stem with the trailing
// timestamp suffix removed. A stem the pattern does not match keys to itself.
func (m *Matcher) Key(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return m.pattern.ReplaceAllString(stem, "")
}

// collect maps key -> path for every recognized image directly in dir.
// os.ReadDir returns entries sorted by name, so when two files derive the
// same key the lexicographically last one wins, deterministically.
func (m *Matcher) collect(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "fsmatcher.collect",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	images := map[string]string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !m.exts[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		images[m.Key(name)] = filepath.Join(dir, name)
	}

	if len(images) == 0 {
		return nil, &domain.OpError{
			Op:   "fsmatcher.collect",
			Kind: domain.KindUsage,
			Path: dir,
			Err:  domain.ErrNoImages,
		}
	}
	return images, nil
}

// unmatched returns the file names from a whose key has no counterpart in b.
func unmatched(a, b map[string]string) []string {
	var out []string
	for key, path := range a {
		if _, ok := b[key]; !ok {
			out = append(out, filepath.Base(path))
		}
	}
	sort.Strings(out)
	return out
}
