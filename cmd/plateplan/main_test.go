package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overflowing = `
plate "tiny" {
  rows         = ["A"]
  column_count = 2
  max_volume   = 50
}

solvent "water" {
  volume = 0.05
}

dispense "custom" {
  source = "water"
  wells  = { "A:1" = 60 }
}
`

// writeProtocol stores src in a temporary .hcl file and returns its path.
func writeProtocol(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "protocol.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "want *ExitError, got %v", err)

	return exitErr.Code
}

func TestRun_Help(t *testing.T) {
	t.Parallel()
	var out, errOut bytes.Buffer
	require.NoError(t, run(&out, &errOut, []string{"-h"}))
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()
	path := writeProtocol(t, overflowing)
	cases := map[string][]string{
		"UnknownFlag":  {"-no-such-flag", path},
		"NoArguments":  {},
		"TwoArguments": {path, path},
		"BadLogFormat": {"-log-format", "xml", path},
		"BadLogLevel":  {"-log-level", "loud", path},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			assert.Equal(t, exitUsage, exitCode(t, run(&out, &errOut, args)))
		})
	}
}

func TestRun_Report(t *testing.T) {
	t.Parallel()
	var out, errOut bytes.Buffer
	path := writeProtocol(t, overflowing)

	require.NoError(t, run(&out, &errOut, []string{"-log-format", "json", path}))

	assert.Contains(t, out.String(), "Plate: tiny (custom plate, 1x2, max 50.000 uL/well)")
	assert.Contains(t, out.String(), "INSUFFICIENT")
	assert.Contains(t, out.String(), "A:1 (60.00 uL)")

	logs := errOut.String()
	assert.Contains(t, logs, `"msg":"well volume exceeds plate capacity"`)
	assert.Contains(t, logs, `"msg":"supply insufficient"`)
	assert.Contains(t, logs, `"label":"water"`)
	assert.Contains(t, logs, `"msg":"protocol complete"`)
	assert.NotContains(t, logs, "protocol loaded") // Debug is filtered at info
}

func TestRun_Strict(t *testing.T) {
	t.Parallel()
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"-strict", writeProtocol(t, overflowing)})
	assert.Equal(t, exitFailure, exitCode(t, err))
	assert.Contains(t, err.Error(), "1 capacity warning(s), 1 insufficient supply(ies)")
	assert.Contains(t, out.String(), "Warnings:") // report still printed
}

func TestRun_ProtocolError(t *testing.T) {
	t.Parallel()
	var out, errOut bytes.Buffer

	err := run(&out, &errOut, []string{filepath.Join(t.TempDir(), "missing.hcl")})
	assert.Equal(t, exitFailure, exitCode(t, err))

	err = run(&out, &errOut, []string{writeProtocol(t, `plate "x" {`)})
	assert.Equal(t, exitFailure, exitCode(t, err))
	assert.Empty(t, out.String())
}

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := newLogger("warn", "text", &buf)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}
