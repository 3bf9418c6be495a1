// SPDX-License-Identifier: MIT

package protocol

import (
	"log/slog"

	"github.com/katalvlaran/plateplan/plate"
)

const panicNilLogger = "protocol: WithLogger: logger must not be nil"

// Option configures Load and Parse.
type Option func(*options)

type options struct {
	logger *slog.Logger // nil ⇒ no logging
}

// WithLogger logs loading progress at Debug and hands logger to the plate, so
// overflow warnings are logged as they happen.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = logger }
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// plateOptions translates the loader options for plate construction.
func (o options) plateOptions() []plate.Option {
	if o.logger == nil {
		return nil
	}

	return []plate.Option{plate.WithLogger(o.logger)}
}

// debug logs msg when a logger is configured.
func (o options) debug(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, args...)
	}
}
