package config

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"github.com/kobayashik-Faber/shotcheck/internal/domain"
)

// Map validates a parsed DTO and fills defaults for everything omitted.
func Map(path string, dto YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if p := strings.TrimSpace(dto.Match.Pattern); p != "" {
		if _, err := regexp.Compile(p); err != nil {
			return domain.Config{}, invalidField(path, "match.pattern", err.Error())
		}
		cfg.Match.Pattern = p
	}
	if len(dto.Match.Extensions) > 0 {
		exts := make([]string, 0, len(dto.Match.Extensions))
		for i, e := range dto.Match.Extensions {
			e = strings.ToLower(strings.TrimSpace(e))
			if !strings.HasPrefix(e, ".") {
				return domain.Config{}, invalidField(path,
					fmt.Sprintf("match.extensions[%d]", i), "extension must start with a dot")
			}
			exts = append(exts, e)
		}
		cfg.Match.Extensions = exts
	}

	if dto.Compare.Threshold != nil {
		t := *dto.Compare.Threshold
		if t < 0 || t > 255 {
			return domain.Config{}, invalidField(path, "compare.threshold", "must be in [0, 255]")
		}
		cfg.Compare.Threshold = uint8(t)
	}

	if h := strings.TrimSpace(dto.Render.Highlight); h != "" {
		c, err := parseHexColor(h)
		if err != nil {
			return domain.Config{}, invalidField(path, "render.highlight", err.Error())
		}
		cfg.Render.Highlight = c
	}
	if dto.Render.LabelBar != nil {
		if *dto.Render.LabelBar < 0 {
			return domain.Config{}, invalidField(path, "render.label_bar", "must be >= 0")
		}
		cfg.Render.LabelBarHeight = *dto.Render.LabelBar
	}
	if dto.Render.Labels.A != "" {
		cfg.Render.LabelA = dto.Render.Labels.A
	}
	if dto.Render.Labels.B != "" {
		cfg.Render.LabelB = dto.Render.Labels.B
	}
	if dto.Render.Labels.Diff != "" {
		cfg.Render.LabelDiff = dto.Render.Labels.Diff
	}

	if f := strings.TrimSpace(dto.Report.Filename); f != "" {
		cfg.Report.Filename = f
	}

	return cfg, nil
}

func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("expected #RRGGBB, got %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("expected #RRGGBB, got %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
