// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves never panic.

package builder

// BuilderOption customizes constructors by mutating builderConfig before the
// first constructor runs.
type BuilderOption func(*builderConfig)

// WithTagFn sets the tag scheme. Panics on nil.
func WithTagFn(fn TagFn) BuilderOption {
	if fn == nil {
		panic("builder: WithTagFn(nil)")
	}
	return func(c *builderConfig) {
		c.tagFn = fn
	}
}

// WithTagOffset shifts every generated tag by off (off ≥ 0). Useful to keep
// tags of a composed fixture disjoint from hand-made cells. Panics if off < 0.
func WithTagOffset(off int) BuilderOption {
	if off < 0 {
		panic("builder: WithTagOffset(off<0)")
	}
	return func(c *builderConfig) {
		c.tagOffset = off
	}
}

// WithSubdomain flags every simplex whose vertices all carry one of the given
// labels as a subdomain cell. Labels are those passed to the constructors.
// Repeated options accumulate.
func WithSubdomain(labels ...int) BuilderOption {
	return func(c *builderConfig) {
		for _, v := range labels {
			c.subdomain[v] = struct{}{}
		}
	}
}
