// Copyright © 2018 One Concern

package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/oneconcern/igvsession/pkg/errors"
	"github.com/oneconcern/igvsession/pkg/manifest"
	"github.com/oneconcern/igvsession/pkg/session/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	doc := New("hg19", []manifest.Resource{
		manifest.NewResource("None/bam/reads.bam"),
	})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))
	assert.Equal(t, `<?xml version='1.0' encoding='UTF-8'?>
<Global genome="hg19" version="3">
  <Resources>
    <Resource name="reads.bam" path="../other_data/bam/reads.bam"/>
  </Resources>
</Global>
`, buf.String())
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, New("", nil)))
	assert.Equal(t, `<?xml version='1.0' encoding='UTF-8'?>
<Global genome="" version="3">
  <Resources/>
</Global>
`, buf.String())
}

func TestEncodeEscapes(t *testing.T) {
	doc := New("hg19", []manifest.Resource{
		{Name: "a&b \"c\" <d>", Path: "../x\ty\nz"},
	})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))
	assert.Contains(t, buf.String(), `<Resource name="a&amp;b &quot;c&quot; &lt;d&gt;" path="../x&#9;y&#10;z"/>`)

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}

func TestEncodeInvalid(t *testing.T) {
	for _, doc := range []Document{
		New("hg19", []manifest.Resource{{Name: "bell\a", Path: "../bell"}}),
		New("hg19", []manifest.Resource{{Name: "x", Path: "../\xff"}}),
		New("hg\x0019", nil),
	} {
		var buf bytes.Buffer
		err := Encode(&buf, doc)
		require.Error(t, err)
		assert.True(t, errors.Is(err, status.ErrInvalidDocument))
		assert.Zero(t, buf.Len())
	}
}

func TestEncodeDeterministic(t *testing.T) {
	doc := New("mm10", []manifest.Resource{
		manifest.NewResource("Mus_musculus/mm10/a.bam"),
		manifest.NewResource("Mus_musculus/mm10/b.bam"),
	})

	var first, second bytes.Buffer
	require.NoError(t, Encode(&first, doc))
	require.NoError(t, Encode(&second, doc))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestRoundTrip(t *testing.T) {
	resources, err := manifest.ReadAll(strings.NewReader("None/bam/reads.bam\nHomo_sapiens/hg38/x.bw\nz.bed\n"))
	require.NoError(t, err)
	doc := New("hg38", resources)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
	assert.Equal(t, Version, decoded.Version)
}

func TestDecodeInvalid(t *testing.T) {
	for _, input := range []string{
		"",
		"<Global genome='hg19'>",
		`<?xml version='1.0' encoding='UTF-8'?><Session genome="hg19" version="8"/>`,
	} {
		_, err := Decode(strings.NewReader(input))
		require.Error(t, err, input)
		assert.True(t, errors.Is(err, status.ErrInvalidDocument), input)
	}
}
