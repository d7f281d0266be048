// Copyright © 2018 One Concern

package golden

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/oneconcern/igvsession/pkg/errors"
	"github.com/oneconcern/igvsession/pkg/golden/status"
	"github.com/oneconcern/igvsession/pkg/storage"
	"github.com/pmezard/go-difflib/difflib"
)

// canonical JSON: sorted keys, numbers kept as written
var canonicalJSON = jsoniter.Config{
	EscapeHTML:  true,
	SortMapKeys: true,
	UseNumber:   true,
}.Froze()

// CompareJSON compares a JSON value in the output file with the wanted fixture.
//
// The field path selects a value in nested objects, with keys separated by dots
// (e.g. "output.session"). An empty path selects the whole document.
// Both sides are canonicalized (sorted keys, two-space indentation) before hashing,
// so formatting differences are ignored. Line filters do not apply.
//
// When the fixture is missing and CreateMissing is enabled, the canonical value is
// written as the new fixture and ErrFixtureCreated is returned along with the report.
func CompareJSON(ctx context.Context, store storage.Store, output, field, wanted string, opts ...Option) (Report, error) {
	o := compareOpts{diffContext: defaultDiffContext}
	for _, apply := range opts {
		apply(&o)
	}
	o.filters = nil
	report := Report{Output: output, Wanted: wanted}

	outputContent, err := loadJSON(ctx, store, output, field, o, status.ErrOutputMissing)
	if err != nil {
		return report, err
	}
	report.OutputHash = hash(outputContent)

	wantedContent, err := loadJSON(ctx, store, wanted, "", o, status.ErrFixtureMissing)
	if err != nil {
		if !errors.Is(err, status.ErrFixtureMissing) || !o.createMissing {
			return report, err
		}
		if err = store.Put(ctx, wanted, bytes.NewReader(outputContent)); err != nil {
			return report, err
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

// loadJSON reads a JSON document and returns the canonical form of the value at field
func loadJSON(ctx context.Context, store storage.Store, key, field string, o compareOpts, missing *errors.Error) ([]byte, error) {
	content, err := load(ctx, store, key, o, missing)
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if err = canonicalJSON.Unmarshal(content, &doc); err != nil {
		return nil, status.ErrInvalidJSON.Wrap(fmt.Errorf("%s: %w", key, err))
	}

	value, err := lookupField(doc, field)
	if err != nil {
		return nil, status.ErrFieldMissing.Wrap(fmt.Errorf("%s: %w", key, err))
	}

	canonical, err := canonicalJSON.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, status.ErrInvalidJSON.Wrap(fmt.Errorf("%s: %w", key, err))
	}
	return append(canonical, '\n'), nil
}

func lookupField(doc interface{}, field string) (interface{}, error) {
	if field == "" {
		return doc, nil
	}
	value := doc
	for _, key := range strings.Split(field, ".") {
		obj, ok := value.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%q is not an object at %q", field, key)
		}
		if value, ok = obj[key]; !ok {
			return nil, fmt.Errorf("no key %q in %q", key, field)
		}
	}
	return value, nil
}
