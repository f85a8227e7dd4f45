// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildComplex(bopts, cons...). Creates the complex,
//     resolves cfg and runs cons in order.
//   - Each constructor appends a disjoint piece; composing Polygon(3) with
//     Simplex(0) yields a circle plus an isolated point.
//   - Determinism: same options and constructor order ⇒ identical complexes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/homology/cells"
)

// Constructor appends cells to cx using the resolved builderConfig.
// Constructors validate parameters before touching cx and return sentinel
// errors; they never panic.
type Constructor func(cx *cells.Complex, cfg builderConfig) error

// BuildComplex creates an empty complex, resolves the configuration from bopts
// and applies every constructor in order. The first failure is returned
// wrapped as "BuildComplex: %w"; no partial result is returned.
func BuildComplex(bopts []BuilderOption, cons ...Constructor) (*cells.Complex, error) {
	cx := cells.New()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildComplex: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(cx, cfg); err != nil {
			return nil, fmt.Errorf("BuildComplex: %w", err)
		}
	}

	return cx, nil
}

// Extend runs constructors against an existing complex, e.g. one decoded from
// YAML, with freshly resolved options.
func Extend(cx *cells.Complex, bopts []BuilderOption, cons ...Constructor) error {
	if cx == nil {
		return fmt.Errorf("Extend: nil complex: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Extend: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(cx, cfg); err != nil {
			return fmt.Errorf("Extend: %w", err)
		}
	}

	return nil
}
