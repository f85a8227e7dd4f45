// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • tagFn     = DefaultTagFn (1, 2, 3, ... per dimension)
//   • tagOffset = 0
//   • subdomain = none

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	tagFn     TagFn
	tagOffset int
	// vertex labels whose spanned simplices are flagged as subdomain
	subdomain map[int]struct{}
}

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		tagFn:     DefaultTagFn,
		subdomain: make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// tag returns the tag of the idx-th cell (0-based, whole complex) of dimension dim.
func (c builderConfig) tag(dim, idx int) int {
	return c.tagOffset + c.tagFn(dim, idx)
}

// inSubdomain reports whether every vertex label of s is listed by WithSubdomain.
func (c builderConfig) inSubdomain(s simplex) bool {
	if len(c.subdomain) == 0 {
		return false
	}
	for _, v := range s {
		if _, ok := c.subdomain[v]; !ok {
			return false
		}
	}

	return true
}
