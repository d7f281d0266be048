// Copyright © 2018 One Concern

package session

import (
	"github.com/oneconcern/igvsession/pkg/genome"
	"github.com/oneconcern/igvsession/pkg/storage"
	"go.uber.org/zap"
)

// DefaultOutputDir is the directory where session documents are written
const DefaultOutputDir = "IGV"

// Option to configure a session Builder
type Option func(*Builder)

// Table specifies the genome builds used to resolve the build identifier
func Table(table genome.Table) Option {
	return func(b *Builder) {
		b.table = table
	}
}

// Store specifies the storage where manifests are read and sessions are written
func Store(store storage.Store) Option {
	return func(b *Builder) {
		if store != nil {
			b.store = store
		}
	}
}

// OutputDir specifies the directory where sessions are written, relative to the store
func OutputDir(dir string) Option {
	return func(b *Builder) {
		if dir != "" {
			b.outputDir = dir
		}
	}
}

// Logger for the builder
func Logger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.l = l
		}
	}
}
