// SPDX-License-Identifier: MIT

package plate

import "log/slog"

// Defaults for the preset layouts.
const (
	// DefaultGeneric96Make labels plates built by NewGeneric96.
	DefaultGeneric96Make = "generic 96 well plate"

	// DefaultGeneric384Make labels plates built by NewGeneric384.
	DefaultGeneric384Make = "generic 384 well plate"
)

const panicNilLogger = "plate: WithLogger: logger must not be nil"

// Option configures a Plate at construction. Option constructors panic only
// on nonsensical values (programmer error).
type Option func(*options)

// options is the resolved configuration; unexported so it cannot be mutated
// after construction.
type options struct {
	logger *slog.Logger // nil ⇒ no logging
}

// WithLogger mirrors overflow warnings (Warn) and every committed dispense
// (Debug) to logger. Without it the plate performs no I/O.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = logger }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
