// Copyright © 2018 One Concern

// Package status exports errors produced by the golden package.
package status

import (
	"github.com/oneconcern/igvsession/pkg/errors"
)

var (
	// ErrFixtureCreated indicates that the wanted fixture was missing and has been created from the output.
	// The fixture must be checked before being relied upon.
	ErrFixtureCreated = errors.New("fixture missing so it was created")

	// ErrFixtureMissing indicates that the wanted fixture does not exist
	ErrFixtureMissing = errors.New("fixture missing")

	// ErrOutputMissing indicates that the output to verify does not exist
	ErrOutputMissing = errors.New("output missing")

	// ErrInvalidJSON indicates that a file compared as JSON is not valid JSON
	ErrInvalidJSON = errors.New("invalid json")

	// ErrFieldMissing indicates that the compared JSON field does not exist
	ErrFieldMissing = errors.New("json field missing")

	// ErrRead indicates that a file could not be read or decompressed
	ErrRead = errors.New("cannot read file")
)
