// SPDX-License-Identifier: MIT
// Package homology: functional options for New.

package homology

import "go.uber.org/zap"

// IncidencePolicy selects how New reacts to a coefficient outside {-1,0,1}.
type IncidencePolicy int

const (
	// PolicyModTwo reduces the entry with truncated % 2 and records a diagnostic.
	PolicyModTwo IncidencePolicy = iota

	// PolicyReject makes New fail with ErrIncidenceAnomaly.
	PolicyReject
)

// Options configures a ChainComplex.
//
// Logger          – receives anomalies and aborts at Warn, step progress at Debug.
//
//	Default is zap.NewNop().
//
// IncidencePolicy – PolicyModTwo (default) or PolicyReject.
type Options struct {
	Logger          *zap.Logger
	IncidencePolicy IncidencePolicy
}

// Option represents a functional option for New.
type Option func(*Options)

// DefaultOptions returns a silent logger and the modulo-2 fallback.
func DefaultOptions() Options {
	return Options{
		Logger:          zap.NewNop(),
		IncidencePolicy: PolicyModTwo,
	}
}

// WithLogger attaches a zap logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("homology: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithIncidencePolicy selects the anomaly policy. Panics on unknown values.
func WithIncidencePolicy(p IncidencePolicy) Option {
	if p != PolicyModTwo && p != PolicyReject {
		panic("homology: WithIncidencePolicy: unknown policy")
	}
	return func(o *Options) {
		o.IncidencePolicy = p
	}
}
