// Copyright © 2018 One Concern

// Package golden compares produced files against reference fixtures.
//
// Files are compared by sha256 hash, after optional decompression and after
// dropping the lines excluded by filters (e.g. session resources with a changing
// host URL). When they differ, a unified diff is reported.
package golden

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/oneconcern/igvsession/pkg/errors"
	"github.com/oneconcern/igvsession/pkg/golden/status"
	"github.com/oneconcern/igvsession/pkg/storage"
	storagestatus "github.com/oneconcern/igvsession/pkg/storage/status"
	"github.com/pmezard/go-difflib/difflib"
)

const defaultDiffContext = 3

// Report on a comparison
type Report struct {
	Output     string `json:"output" yaml:"output"`
	Wanted     string `json:"wanted" yaml:"wanted"`
	OutputHash string `json:"outputHash" yaml:"outputHash"`
	WantedHash string `json:"wantedHash" yaml:"wantedHash"`
	Match      bool   `json:"match" yaml:"match"`
	Diff       string `json:"diff,omitempty" yaml:"diff,omitempty"`
}

// Compare the output file with the wanted fixture.
//
// When the fixture is missing and CreateMissing is enabled, the output is copied
// as the new fixture and ErrFixtureCreated is returned along with the report.
func Compare(ctx context.Context, store storage.Store, output, wanted string, opts ...Option) (Report, error) {
	o := compareOpts{diffContext: defaultDiffContext}
	for _, apply := range opts {
		apply(&o)
	}
	report := Report{Output: output, Wanted: wanted}

	outputContent, err := load(ctx, store, output, o, status.ErrOutputMissing)
	if err != nil {
		return report, err
	}
	report.OutputHash = hash(outputContent)

	wantedContent, err := load(ctx, store, wanted, o, status.ErrFixtureMissing)
	if err != nil {
		if !errors.Is(err, status.ErrFixtureMissing) || !o.createMissing {
			return report, err
		}
		if _, err = storage.ReadTee(ctx, store, output, store, wanted); err != nil {
			return report, status.ErrRead.Wrap(err)
		}
		report.WantedHash = report.OutputHash
		report.Match = true
		return report, status.ErrFixtureCreated.Wrapf("%s: check it before using it for further runs", wanted)
	}
	report.WantedHash = hash(wantedContent)

	report.Match = report.OutputHash == report.WantedHash
	if !report.Match {
		report.Diff, err = difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(wantedContent)),
			B:        difflib.SplitLines(string(outputContent)),
			FromFile: wanted,
			ToFile:   output,
			Context:  o.diffContext,
		})
		if err != nil {
			return report, err
		}
	}
	return report, nil
}

// String renders a one-line summary of the report
func (r Report) String() string {
	if r.Match {
		return fmt.Sprintf("%s: ok (%s)", r.Output, r.OutputHash)
	}
	return fmt.Sprintf("%s: file hash mismatch: %s != %s", r.Output, r.WantedHash, r.OutputHash)
}

func load(ctx context.Context, store storage.Store, key string, o compareOpts, missing *errors.Error) ([]byte, error) {
	rdr, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storagestatus.ErrNotExists) {
			return nil, missing.Wrap(err)
		}
		return nil, status.ErrRead.Wrap(err)
	}
	defer rdr.Close()

	var src io.Reader = rdr
	if o.gzipped {
		zr, err := gzip.NewReader(rdr)
		if err != nil {
			return nil, status.ErrRead.Wrap(fmt.Errorf("%s: %w", key, err))
		}
		defer zr.Close()
		src = zr
	}

	if len(o.filters) == 0 {
		content, err := ioutil.ReadAll(src)
		if err != nil {
			return nil, status.ErrRead.Wrap(fmt.Errorf("%s: %w", key, err))
		}
		return content, nil
	}
	return filterLines(src, o.filters, key)
}

func filterLines(src io.Reader, filters []LineFilter, key string) ([]byte, error) {
	var buf bytes.Buffer
	rdr := bufio.NewReader(src)
	for {
		line, err := rdr.ReadBytes('\n')
		if len(line) > 0 && !excluded(line, filters) {
			buf.Write(line)
		}
		if err == io.EOF {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, status.ErrRead.Wrap(fmt.Errorf("%s: %w", key, err))
		}
	}
}

func excluded(line []byte, filters []LineFilter) bool {
	for _, filter := range filters {
		if filter(line) {
			return true
		}
	}
	return false
}

func hash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
