// Copyright © 2018 One Concern

package genome

import (
	"testing"

	"github.com/oneconcern/igvsession/pkg/errors"
	"github.com/oneconcern/igvsession/pkg/genome/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	table := DefaultTable()

	for _, toPin := range []struct {
		filename string
		expected string
	}{
		{filename: "sample_hg19_temp_igv.txt", expected: "hg19"},
		{filename: "x_b37_temp_igv.txt", expected: "hg19"},
		{filename: "x_GRCh37.p13_temp_igv.txt", expected: "hg19"},
		{filename: "x_hg38_temp_igv.txt", expected: "hg38"},
		{filename: "x_GRCh38_temp_igv.txt", expected: "hg38"},
		{filename: "x_mm10_temp_igv.txt", expected: "mm10"},
		{filename: "x_GRCm38_temp_igv.txt", expected: "mm10"},
		{filename: "x_mm9_temp_igv.txt", expected: "mm9"},
		{filename: "x_MGSCv37_temp_igv.txt", expected: "mm9"},
		{filename: "x_rn6_temp_igv.txt", expected: "rn6"},
		{filename: "x_Rnor_6.0_temp_igv.txt", expected: ""}, // the alias is split by the separator
		{filename: "x_Rnor", expected: ""},
		{filename: "x_unknownbuild_temp_igv.txt", expected: ""},
		{filename: "x_hg19x_temp_igv.txt", expected: ""},
		{filename: "x__temp_igv.txt", expected: ""},
		{filename: "a_b", expected: ""},
		{filename: "archive/dir_with_underscores/sample_mm10_temp_igv.txt", expected: "mm10"},
	} {
		fixture := toPin

		t.Run(fixture.filename, func(t *testing.T) {
			build, err := table.Resolve(fixture.filename)
			require.NoError(t, err)
			assert.Equal(t, fixture.expected, build)
		})
	}
}

func TestResolveMalformed(t *testing.T) {
	table := DefaultTable()

	for _, filename := range []string{"", "noseparator.txt", "dir_name/noseparator.txt"} {
		_, err := table.Resolve(filename)
		require.Error(t, err, filename)
		assert.True(t, errors.Is(err, status.ErrMalformedInput), filename)
	}
}

func TestMatchOrder(t *testing.T) {
	table := NewTable(
		Build{Name: "first", Aliases: []string{"GRC"}},
		Build{Name: "second", Aliases: []string{"GRCh"}},
	)
	assert.Equal(t, "first", table.Match("GRCh37"))

	table = NewTable(
		Build{Name: "second", Aliases: []string{"GRCh"}},
		Build{Name: "first", Aliases: []string{"GRC"}},
	)
	assert.Equal(t, "second", table.Match("GRCh37"))
	assert.Equal(t, "first", table.Match("GRCm38"))
}

func TestWith(t *testing.T) {
	base := DefaultTable()

	extended, err := base.With(
		Build{Name: "dm6", Aliases: []string{"BDGP6"}},
		Build{Name: "hg19x", Aliases: []string{"b37"}},
	)
	require.NoError(t, err)

	assert.Equal(t, 5, base.Len())
	assert.Equal(t, 7, extended.Len())
	assert.Equal(t, "dm6", extended.Match("BDGP6.28"))
	assert.Equal(t, "hg19", extended.Match("b37"), "defaults keep precedence")
	assert.Equal(t, "", base.Match("BDGP6"))

	_, err = base.With(Build{Aliases: []string{"x"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrInvalidBuild))
}

func TestTableImmutable(t *testing.T) {
	table := DefaultTable()

	builds := table.Builds()
	builds[0].Name = "changed"
	builds[1].Aliases[0] = "changed"

	b, ok := table.Lookup("hg19")
	require.True(t, ok)
	assert.Equal(t, []string{"GRCh37", "b37"}, b.Aliases)
	assert.Equal(t, "hg38", table.Builds()[0].Name)

	_, ok = table.Lookup("changed")
	assert.False(t, ok)
}

func TestBuildToken(t *testing.T) {
	token, err := BuildToken("/data/archive/sample_GRCh38_temp_igv.txt")
	require.NoError(t, err)
	assert.Equal(t, "GRCh38", token)

	token, err = BuildToken("a_")
	require.NoError(t, err)
	assert.Equal(t, "", token)
}
