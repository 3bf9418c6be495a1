// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string { return e.Message }

// Exit codes.
const (
	exitFailure = 1 // protocol could not be loaded, or -strict found problems
	exitUsage   = 2 // bad flags or arguments
)

// config is the parsed command line.
type config struct {
	path      string
	logLevel  string
	logFormat string
	strict    bool
}

// parseArgs parses the command line. It returns exit=true after printing
// help, and an *ExitError for usage mistakes.
func parseArgs(args []string, output io.Writer) (cfg config, exit bool, err error) {
	fs := flag.NewFlagSet("plateplan", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
plateplan - plan reagent dispensing onto a multi-well plate.

Usage:
  plateplan [options] PROTOCOL.hcl

Runs every dispense step of the protocol and prints the lab sheet: stock
recipes, steps, per-well volumes and concentrations, supply check and
capacity warnings.

Options:
`)
		fs.PrintDefaults()
	}

	logLevel := fs.String("log-level", "info", "Logging level: debug, info, warn or error.")
	logFormat := fs.String("log-format", "text", "Log output format: text or json.")
	strict := fs.Bool("strict", false, "Exit with status 1 if any well overflows or any supply runs short.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config{}, true, nil
		}
		return config{}, false, &ExitError{Code: exitUsage, Message: err.Error()}
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return config{}, false, &ExitError{Code: exitUsage, Message: "expected exactly one protocol file"}
	}

	cfg = config{
		path:      fs.Arg(0),
		logLevel:  strings.ToLower(*logLevel),
		logFormat: strings.ToLower(*logFormat),
		strict:    *strict,
	}
	switch cfg.logFormat {
	case "text", "json":
	default:
		return config{}, false, &ExitError{Code: exitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch cfg.logLevel {
	case "debug", "info", "warn", "error":
	default:
		return config{}, false, &ExitError{Code: exitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return cfg, false, nil
}
