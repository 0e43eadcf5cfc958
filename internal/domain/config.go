package domain

import "image/color"

// DefaultTimestampPattern strips a trailing timestamp-shaped suffix from a
// filename stem: _YYYYMMDD, _YYYYMMDD_HHMMSS, _YYYY-MM-DD or
// _YYYY-MM-DD[T_]HH:MM:SS.
const DefaultTimestampPattern = `_(?:\d{8}(?:_\d{6})?|\d{4}-\d{2}-\d{2}(?:[T_]\d{2}:\d{2}:\d{2})?)$`

// DefaultReportFilename is where the text summary lands in the output directory.
const DefaultReportFilename = "difference_report.txt"

// Config represents the shotcheck configuration, loaded from shotcheck.yaml
// when present and overridable per flag.
type Config struct {
	Match   MatchConfig
	Compare CompareConfig
	Render  RenderConfig
	Report  ReportConfig
}

type MatchConfig struct {
	// Pattern is an anchored regexp removed from the filename stem to derive
	// the matching key.
	Pattern string
	// Extensions are the recognized image extensions (lowercase, with dot).
	Extensions []string
}

type CompareConfig struct {
	// Threshold is the per-channel delta tolerated before a pixel counts as
	// different. Zero means exact comparison.
	Threshold uint8
}

type RenderConfig struct {
	Highlight      color.RGBA
	LabelBarHeight int
	LabelA         string
	LabelB         string
	LabelDiff      string
}

type ReportConfig struct {
	Filename string
}

// DefaultConfig provides sane defaults if shotcheck.yaml is absent or partial.
func DefaultConfig() Config {
	return Config{
		Match: MatchConfig{
			Pattern:    DefaultTimestampPattern,
			Extensions: []string{".png"},
		},
		Compare: CompareConfig{Threshold: 0},
		Render: RenderConfig{
			Highlight:      color.RGBA{R: 255, G: 50, B: 50, A: 255},
			LabelBarHeight: 40,
			LabelA:         "Image 1",
			LabelB:         "Image 2",
			LabelDiff:      "Difference",
		},
		Report: ReportConfig{Filename: DefaultReportFilename},
	}
}
