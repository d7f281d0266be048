// Copyright © 2018 One Concern

package genome

import (
	"path/filepath"
	"strings"

	"github.com/oneconcern/igvsession/pkg/genome/status"
)

const tokenSeparator = "_"

// Build describes a genome assembly known to IGV, with the legacy names that map onto it.
type Build struct {
	Name    string   `json:"name" yaml:"name" mapstructure:"name"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty" mapstructure:"aliases"`
}

// Matches tells if a build token designates this build.
func (b Build) Matches(token string) bool {
	if token == b.Name {
		return true
	}
	for _, alias := range b.Aliases {
		if strings.HasPrefix(token, alias) {
			return true
		}
	}
	return false
}

// Table is an ordered list of builds.
//
// A Table is never mutated once built: With returns a new table.
type Table struct {
	builds []Build
}

var defaultBuilds = []Build{
	{Name: "hg38", Aliases: []string{"GRCh38"}},
	{Name: "hg19", Aliases: []string{"GRCh37", "b37"}},
	{Name: "mm10", Aliases: []string{"GRCm38"}},
	{Name: "mm9", Aliases: []string{"MGSCv37"}},
	{Name: "rn6", Aliases: []string{"Rnor_6.0"}},
}

// DefaultTable returns the builds known to IGV sessions out of the box
func DefaultTable() Table {
	return NewTable(defaultBuilds...)
}

// NewTable builds a table from builds, in order
func NewTable(builds ...Build) Table {
	return Table{builds: copyBuilds(builds)}
}

// With returns a new table with extra builds appended.
//
// Builds already in the table keep precedence when resolving.
func (t Table) With(extra ...Build) (Table, error) {
	for _, b := range extra {
		if b.Name == "" {
			return Table{}, status.ErrInvalidBuild.Wrapf("missing name (aliases: %v)", b.Aliases)
		}
	}
	builds := make([]Build, 0, len(t.builds)+len(extra))
	builds = append(builds, t.builds...)
	builds = append(builds, extra...)
	return NewTable(builds...), nil
}

// Builds returns a copy of the builds in this table
func (t Table) Builds() []Build {
	return copyBuilds(t.builds)
}

// Len of the table
func (t Table) Len() int {
	return len(t.builds)
}

// Lookup a build by its canonical name
func (t Table) Lookup(name string) (Build, bool) {
	for _, b := range t.builds {
		if b.Name == name {
			return Build{Name: b.Name, Aliases: append([]string(nil), b.Aliases...)}, true
		}
	}
	return Build{}, false
}

// Match returns the canonical name of the first build matching token, or the empty string.
func (t Table) Match(token string) string {
	for _, b := range t.builds {
		if b.Matches(token) {
			return b.Name
		}
	}
	return ""
}

// Resolve the build identifier carried by a file name.
func (t Table) Resolve(filename string) (string, error) {
	token, err := BuildToken(filename)
	if err != nil {
		return "", err
	}
	return t.Match(token), nil
}

// BuildToken extracts the second underscore-delimited field of the base name of filename.
func BuildToken(filename string) (string, error) {
	fields := strings.Split(filepath.Base(filename), tokenSeparator)
	if len(fields) < 2 {
		return "", status.ErrMalformedInput.Wrapf("%q: expected <prefix>_<build>_<suffix>", filename)
	}
	return fields[1], nil
}

func copyBuilds(builds []Build) []Build {
	res := make([]Build, len(builds))
	for i, b := range builds {
		res[i] = Build{Name: b.Name, Aliases: append([]string(nil), b.Aliases...)}
	}
	return res
}
