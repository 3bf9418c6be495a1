// SPDX-License-Identifier: MIT

package plate

import (
	"fmt"
	"strconv"
	"strings"
)

// Axis describes one plate dimension: either explicit labels or a count of
// numbered positions.
type Axis struct {
	labels []string
	count  int
}

// Labeled describes an axis by explicit labels. Labels must be non-blank,
// unique and unpadded, free of ':' and must not parse as integers, so that a
// reference can never mean one position by label and another by number.
func Labeled(labels ...string) Axis {
	cp := make([]string, len(labels))
	copy(cp, labels)

	return Axis{labels: cp}
}

// Numbered describes an axis of n positions labeled "1".."n".
func Numbered(n int) Axis { return Axis{count: n} }

// axis is the validated, resolved form of an Axis.
type axis struct {
	kind  string // "row" or "column", for messages
	names []string
	index map[string]int
}

// build validates a and returns its resolved form.
func (a Axis) build(kind string) (axis, error) {
	if a.labels == nil {
		if a.count < 1 {
			return axis{}, fmt.Errorf("plate: %s count %d must be >= 1: %w", kind, a.count, ErrInvalidArgument)
		}
		names := make([]string, a.count)
		for i := range names {
			names[i] = strconv.Itoa(i + 1)
		}
		return newAxis(kind, names), nil
	}
	if len(a.labels) == 0 {
		return axis{}, fmt.Errorf("plate: at least one %s is required: %w", kind, ErrInvalidArgument)
	}
	seen := make(map[string]struct{}, len(a.labels))
	for _, name := range a.labels {
		switch {
		case strings.TrimSpace(name) == "":
			return axis{}, fmt.Errorf("plate: %s names must not be blank: %w", kind, ErrInvalidArgument)
		case strings.TrimSpace(name) != name:
			return axis{}, fmt.Errorf("plate: %s name %q must not have surrounding spaces: %w", kind, name, ErrInvalidArgument)
		case strings.Contains(name, ":"):
			return axis{}, fmt.Errorf("plate: %s name %q must not contain ':': %w", kind, name, ErrInvalidArgument)
		case isInteger(name):
			return axis{}, fmt.Errorf("plate: %s name %q must not be an integer: %w", kind, name, ErrInvalidArgument)
		}
		if _, dup := seen[name]; dup {
			return axis{}, fmt.Errorf("plate: duplicate %s name %q: %w", kind, name, ErrInvalidArgument)
		}
		seen[name] = struct{}{}
	}

	return newAxis(kind, a.labels), nil
}

func newAxis(kind string, names []string) axis {
	idx := make(map[string]int, len(names))
	for i, n := range names {
		idx[n] = i
	}

	return axis{kind: kind, names: names, index: idx}
}

// len returns the number of positions.
func (a axis) len() int { return len(a.names) }

// resolve maps a Ref to a zero-based index.
// Stage 1: exact label match.
// Stage 2: a 1-indexed integer within [1, len].
// Otherwise ErrInvalidLocation.
func (a axis) resolve(r Ref) (int, error) {
	n := r.num
	if r.byLabel {
		if i, ok := a.index[r.label]; ok {
			return i, nil
		}
		v, err := strconv.Atoi(r.label)
		if err != nil {
			return 0, fmt.Errorf("plate: unknown %s %q: %w", a.kind, r.label, ErrInvalidLocation)
		}
		n = v
	}
	if n < 1 || n > a.len() {
		return 0, fmt.Errorf("plate: %s %d outside 1..%d: %w", a.kind, n, a.len(), ErrInvalidLocation)
	}

	return n - 1, nil
}

// isInteger reports whether s parses as an int.
func isInteger(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}
