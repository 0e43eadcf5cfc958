// Package config loads the optional shotcheck.yaml configuration file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kobayashik-Faber/shotcheck/internal/domain"
)

// DefaultFilename is looked up in the working directory when no explicit
// config path is given.
const DefaultFilename = "shotcheck.yaml"

// Load reads a shotcheck.yaml. With an empty path it falls back to
// DefaultFilename in the working directory; a missing implicit file is not
// an error and yields the defaults, a missing explicit file is.
func Load(path string) (domain.Config, error) {
	implicit := path == ""
	if implicit {
		path = DefaultFilename
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if implicit && os.IsNotExist(err) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return Map(path, dto)
}
