// Copyright © 2018 One Concern

package manifest

import (
	"errors"
	"path"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/oneconcern/igvsession/internal/rand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResource(t *testing.T) {
	for _, toPin := range []struct {
		entry    string
		expected Resource
	}{
		{
			entry:    "None/bam/reads.bam",
			expected: Resource{Name: "reads.bam", Path: "../other_data/bam/reads.bam"},
		},
		{
			entry:    "Homo_sapiens/hg19/reads.bam",
			expected: Resource{Name: "reads.bam", Path: "../Homo_sapiens/hg19/reads.bam"},
		},
		{
			// only the grandparent directory triggers the relocation
			entry:    "None/reads.bam",
			expected: Resource{Name: "reads.bam", Path: "../None/reads.bam"},
		},
		{
			entry:    "a/None/b/reads.bam",
			expected: Resource{Name: "reads.bam", Path: "../a/None/b/reads.bam"},
		},
		{
			// every occurrence is replaced, the display name is taken from the listed entry
			entry:    "None/bam/None.bam",
			expected: Resource{Name: "None.bam", Path: "../other_data/bam/other_data.bam"},
		},
		{
			entry:    "reads.bam",
			expected: Resource{Name: "reads.bam", Path: "../reads.bam"},
		},
		{
			entry:    "/abs/None/x/reads.bam",
			expected: Resource{Name: "reads.bam", Path: "/abs/None/x/reads.bam"},
		},
		{
			// entries are not cleaned before looking up the grandparent directory
			entry:    "./None/bam/reads.bam",
			expected: Resource{Name: "reads.bam", Path: ".././None/bam/reads.bam"},
		},
		{
			entry:    "None/x/../y/reads.bam",
			expected: Resource{Name: "reads.bam", Path: "../None/x/../y/reads.bam"},
		},
		{
			entry:    "None//bam//reads.bam",
			expected: Resource{Name: "reads.bam", Path: "../other_data//bam//reads.bam"},
		},
		{
			// a trailing slash yields an empty display name
			entry:    "None/bam/",
			expected: Resource{Name: "", Path: "../other_data/bam/"},
		},
		{
			entry:    "Homo sapiens/hg19/R&D <1>.bam",
			expected: Resource{Name: "R&D <1>.bam", Path: "../Homo sapiens/hg19/R&D <1>.bam"},
		},
	} {
		fixture := toPin

		t.Run(fixture.entry, func(t *testing.T) {
			assert.Equal(t, fixture.expected, NewResource(fixture.entry))
		})
	}
}

func TestReadAll(t *testing.T) {
	const manifest = "None/bam/reads.bam\n" +
		"Homo_sapiens/hg19/reads.bam.bai  \r\n" +
		"\n" +
		"Homo_sapiens/hg19/variants.vcf.gz"

	resources, err := ReadAll(strings.NewReader(manifest))
	require.NoError(t, err)
	assert.Equal(t, []Resource{
		{Name: "reads.bam", Path: "../other_data/bam/reads.bam"},
		{Name: "reads.bam.bai", Path: "../Homo_sapiens/hg19/reads.bam.bai"},
		{Name: "variants.vcf.gz", Path: "../Homo_sapiens/hg19/variants.vcf.gz"},
	}, resources)
}

func TestReadAllEmpty(t *testing.T) {
	resources, err := ReadAll(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, resources)
}

func TestReaderSinglePass(t *testing.T) {
	rdr := NewReader(strings.NewReader("a/b/c.bam\nd/e/f.bam\n"))

	require.True(t, rdr.Next())
	assert.Equal(t, "c.bam", rdr.Resource().Name)
	require.True(t, rdr.Next())
	assert.Equal(t, "f.bam", rdr.Resource().Name)
	assert.Equal(t, 2, rdr.Line())
	assert.False(t, rdr.Next())
	assert.False(t, rdr.Next())
	require.NoError(t, rdr.Err())
}

func TestReaderLongLines(t *testing.T) {
	long := "None/bam/" + strings.Repeat("r", 256*1024) + ".bam"

	resources, err := ReadAll(strings.NewReader("a/b/c.bam\n" + long + "\n" + long))
	require.NoError(t, err)
	require.Len(t, resources, 3)
	assert.Equal(t, "../other_data/bam/"+strings.Repeat("r", 256*1024)+".bam", resources[1].Path)
	assert.Equal(t, resources[1], resources[2])
}

func TestReaderError(t *testing.T) {
	boom := errors.New("boom")

	resources, err := ReadAll(iotest.ErrReader(boom))
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Empty(t, resources)

	rdr := NewReader(iotest.TimeoutReader(strings.NewReader("a/b/c.bam\n")))
	require.True(t, rdr.Next())
	assert.False(t, rdr.Next())
	assert.True(t, errors.Is(rdr.Err(), iotest.ErrTimeout))
	assert.False(t, rdr.Next(), "a failed reader stays failed")
}

func TestReadAllRandom(t *testing.T) {
	entries := make([]string, 0, 200)
	for i := 0; i < cap(entries); i++ {
		entries = append(entries, rand.Entry())
	}

	resources, err := ReadAll(strings.NewReader(strings.Join(entries, "\n") + "\n"))
	require.NoError(t, err)
	require.Len(t, resources, len(entries))

	for i, entry := range entries {
		res := resources[i]
		assert.Equal(t, path.Base(entry), res.Name)
		assert.True(t, strings.HasPrefix(res.Path, "../"), res.Path)
		assert.NotContains(t, res.Path, "None", "entry %q", entry)
	}
}
