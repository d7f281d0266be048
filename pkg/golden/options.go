// Copyright © 2018 One Concern

package golden

import (
	"bytes"
	"regexp"
)

// LineFilter tells if a line must be excluded from the comparison
type LineFilter func(line []byte) bool

type compareOpts struct {
	gzipped       bool
	createMissing bool
	filters       []LineFilter
	diffContext   int
}

// Option for Compare
type Option func(*compareOpts)

// Gzipped decompresses both files before comparing them
func Gzipped(enabled bool) Option {
	return func(o *compareOpts) {
		o.gzipped = enabled
	}
}

// CreateMissing copies the output over a missing fixture
func CreateMissing(enabled bool) Option {
	return func(o *compareOpts) {
		o.createMissing = enabled
	}
}

// Filter excludes lines from the comparison. Several filters may be combined.
func Filter(filter LineFilter) Option {
	return func(o *compareOpts) {
		if filter != nil {
			o.filters = append(o.filters, filter)
		}
	}
}

// FilterPattern excludes lines matching a regular expression
func FilterPattern(re *regexp.Regexp) Option {
	if re == nil {
		return Filter(nil)
	}
	return Filter(re.Match)
}

// FilterContaining excludes lines containing a literal value
func FilterContaining(value string) Option {
	needle := []byte(value)
	return Filter(func(line []byte) bool {
		return bytes.Contains(line, needle)
	})
}

// DiffContext sets the number of context lines in reported diffs
func DiffContext(lines int) Option {
	return func(o *compareOpts) {
		if lines >= 0 {
			o.diffContext = lines
		}
	}
}
