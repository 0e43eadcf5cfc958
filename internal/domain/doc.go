// Package domain contains the core domain model for shotcheck.
//
// The domain is codec- and filesystem-agnostic: it does not depend on
// image/png, YAML parsing, or os. Infra/adapters map into/from these types.
package domain
