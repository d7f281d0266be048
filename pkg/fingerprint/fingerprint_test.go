// Copyright © 2018 One Concern

package fingerprint

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"testing/iotest"

	units "github.com/docker/go-units"
	"github.com/oneconcern/igvsession/internal/rand"
	"github.com/oneconcern/igvsession/pkg/storage/localfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumDeterministic(t *testing.T) {
	content := bytes.Repeat([]byte("<Resource name=\"reads.bam\"/>\n"), 100)

	for _, leafSize := range []int64{16, 29, 1024, DefaultLeafSize} {
		sequential, err := New(LeafSize(leafSize), NumberOfWorkers(1)).Sum(context.Background(), bytes.NewReader(content))
		require.NoError(t, err)
		concurrent, err := New(LeafSize(leafSize), NumberOfWorkers(8)).Sum(context.Background(), bytes.NewReader(content))
		require.NoError(t, err)
		assert.Equal(t, sequential, concurrent, "leaf size %d", leafSize)
		assert.Len(t, sequential, DefaultSize)
	}
}

func TestSumSensitivity(t *testing.T) {
	m := New(LeafSize(8))
	a, err := m.Sum(context.Background(), bytes.NewReader([]byte("0123456789abcdef")))
	require.NoError(t, err)
	b, err := m.Sum(context.Background(), bytes.NewReader([]byte("0123456789abcdeF")))
	require.NoError(t, err)
	c, err := New(LeafSize(4)).Sum(context.Background(), bytes.NewReader([]byte("0123456789abcdef")))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c, "the leaf size is part of the digest")
}

func TestSumSize(t *testing.T) {
	digest, err := New(Size(32)).Sum(context.Background(), bytes.NewReader([]byte("abc")))
	require.NoError(t, err)
	assert.Len(t, digest, 32)

	empty, err := New().Sum(context.Background(), bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Len(t, empty, DefaultSize)

	_, err = New(Size(65)).Sum(context.Background(), bytes.NewReader(nil))
	require.Error(t, err)
	_, err = New(Size(0)).Sum(context.Background(), bytes.NewReader(nil))
	require.Error(t, err)
	_, err = New(LeafSize(0)).Sum(context.Background(), bytes.NewReader(nil))
	require.Error(t, err)
}

func TestSumLeafSizeOverflow(t *testing.T) {
	for _, leafSize := range []int64{-1, 4 * units.GiB, 5 * units.GiB} {
		_, err := New(LeafSize(leafSize)).Sum(context.Background(), bytes.NewReader([]byte("abc")))
		require.Error(t, err, "leaf size %d", leafSize)
		assert.Contains(t, err.Error(), "leaf size")
	}
}

func TestSumReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := New(LeafSize(4)).Sum(context.Background(), iotest.ErrReader(boom))
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestProcess(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "IGV/sample_hg19_igv.xml", []byte("<Global/>\n"), 0644))
	store := localfs.New(fs)

	digest, err := New().Process(context.Background(), store, "IGV/sample_hg19_igv.xml")
	require.NoError(t, err)
	expected, err := New().Sum(context.Background(), bytes.NewReader([]byte("<Global/>\n")))
	require.NoError(t, err)
	assert.Equal(t, expected, digest)

	_, err = New().Process(context.Background(), store, "IGV/missing.xml")
	require.Error(t, err)
}

func TestSumRandom(t *testing.T) {
	content := rand.Bytes(4096 + 17)

	sequential, err := New(LeafSize(512), NumberOfWorkers(1)).Sum(context.Background(), bytes.NewReader(content))
	require.NoError(t, err)
	concurrent, err := New(LeafSize(512), NumberOfWorkers(4)).Sum(context.Background(), bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, sequential, concurrent)
}
