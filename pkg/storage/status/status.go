// Copyright © 2018 One Concern

// Package status declares error constants returned by
// implementations of the Store interface.
//
// NOTE: such constants are located in a separate package to avoid
// creating undue cyclical dependencies between pkg/storage and one
// of its implementions.
package status

import "github.com/oneconcern/igvsession/pkg/errors"

var (
	// Sentinel errors returned by implementations of the interface defined by storage

	// ErrNotExists indicates that the fetched object does not exist on storage
	ErrNotExists = errors.New("object doesn't exist")

	// ErrIsDirectory indicates that the key designates a directory, not an object
	ErrIsDirectory = errors.New("object is a directory")

	// ErrCreateDirectory indicates that the parent directories of an object could not be created
	ErrCreateDirectory = errors.New("cannot create directory")

	// ErrWrite indicates that an object could not be written
	ErrWrite = errors.New("cannot write object")
)
