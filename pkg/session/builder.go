// Copyright © 2018 One Concern

package session

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/oneconcern/igvsession/pkg/genome"
	"github.com/oneconcern/igvsession/pkg/manifest"
	"github.com/oneconcern/igvsession/pkg/session/status"
	"github.com/oneconcern/igvsession/pkg/storage"
	"github.com/oneconcern/igvsession/pkg/storage/localfs"
	"go.uber.org/zap"
)

const (
	manifestSuffix = "temp_igv.txt"
	sessionSuffix  = "igv.xml"
)

// Builder produces session documents from manifests
type Builder struct {
	table     genome.Table
	store     storage.Store
	outputDir string
	l         *zap.Logger
}

// Result describes a written session document
type Result struct {
	Genome    string `json:"genome" yaml:"genome"`
	Output    string `json:"output" yaml:"output"`
	Resources int    `json:"resources" yaml:"resources"`
}

// NewBuilder creates a session builder.
//
// By default, builds are resolved with the default genome table, and files are
// read and written on the local file system, relative to the current directory.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		table:     genome.DefaultTable(),
		outputDir: DefaultOutputDir,
		l:         zap.NewNop(),
	}
	for _, apply := range opts {
		apply(b)
	}
	if b.store == nil {
		b.store = localfs.New(nil)
	}
	return b
}

// OutputName derives the session file name from the manifest file name
func OutputName(inputFile string) string {
	return strings.Replace(filepath.Base(inputFile), manifestSuffix, sessionSuffix, -1)
}

// OutputPath is the location of the session document built from inputFile
func (b *Builder) OutputPath(inputFile string) string {
	return filepath.Join(b.outputDir, OutputName(inputFile))
}

// Build the session document for a manifest and write it.
//
// An existing document at the output location is overwritten.
func (b *Builder) Build(ctx context.Context, inputFile string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	build, err := b.table.Resolve(inputFile)
	if err != nil {
		return Result{}, err
	}
	if build == "" {
		b.l.Warn("unknown genome build, the session will not specify a genome", zap.String("manifest", inputFile))
	}

	doc, err := b.Document(ctx, build, inputFile)
	if err != nil {
		return Result{}, err
	}

	var buf bytes.Buffer
	if err = Encode(&buf, doc); err != nil {
		return Result{}, err
	}

	output := b.OutputPath(inputFile)
	if err = b.store.Put(ctx, output, &buf); err != nil {
		return Result{}, status.ErrUnwritableOutput.Wrap(err)
	}

	b.l.Info("session written",
		zap.String("manifest", inputFile),
		zap.String("output", output),
		zap.String("genome", build),
		zap.Int("resources", len(doc.Resources)),
		zap.Stringer("store", b.store),
	)
	return Result{Genome: build, Output: output, Resources: len(doc.Resources)}, nil
}

// Document reads the resources listed by a manifest into a session document for genome build.
func (b *Builder) Document(ctx context.Context, build, inputFile string) (Document, error) {
	rdr, err := b.store.Get(ctx, inputFile)
	if err != nil {
		return Document{}, status.ErrUnreadableManifest.Wrap(err)
	}
	defer rdr.Close()

	var resources []manifest.Resource
	entries := manifest.NewReader(rdr)
	for entries.Next() {
		resource := entries.Resource()
		b.l.Debug("resource", zap.Int("line", entries.Line()), zap.String("name", resource.Name), zap.String("path", resource.Path))
		resources = append(resources, resource)
	}
	if err = entries.Err(); err != nil {
		return Document{}, status.ErrUnreadableManifest.Wrap(err)
	}
	return New(build, resources), nil
}
