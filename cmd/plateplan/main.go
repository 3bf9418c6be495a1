// SPDX-License-Identifier: MIT

// Command plateplan loads an HCL dispensing protocol, runs it against its
// plate and prints the resulting lab sheet to stdout. Logs go to stderr.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/plateplan/protocol"
	"github.com/katalvlaran/plateplan/report"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}

// run is main without the process exit, for tests.
func run(stdout, stderr io.Writer, args []string) error {
	cfg, exit, err := parseArgs(args, stdout)
	if err != nil || exit {
		return err
	}
	logger := newLogger(cfg.logLevel, cfg.logFormat, stderr)

	p, err := protocol.Load(cfg.path, protocol.WithLogger(logger))
	if err != nil {
		return &ExitError{Code: exitFailure, Message: err.Error()}
	}

	var short int
	for _, u := range p.Plate.Usage() {
		if u.Sufficient() {
			continue
		}
		short++
		logger.Warn("supply insufficient", "source", u.Source.String(), "label", p.Label(u.Source),
			"used_ul", u.UsedUL, "available_ul", u.AvailableUL())
	}
	warnings := len(p.Plate.Warnings())
	logger.Info("protocol complete", "file", cfg.path, "steps", len(p.Plate.Instructions()),
		"warnings", warnings, "short_supplies", short)

	if err := report.Write(stdout, p.Plate, p.Stocks); err != nil {
		return err
	}
	if cfg.strict && (warnings > 0 || short > 0) {
		return &ExitError{Code: exitFailure,
			Message: fmt.Sprintf("%d capacity warning(s), %d insufficient supply(ies)", warnings, short)}
	}

	return nil
}
