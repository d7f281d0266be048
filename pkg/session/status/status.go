// Copyright © 2018 One Concern

// Package status exports errors produced by the session package.
package status

import (
	"github.com/oneconcern/igvsession/pkg/errors"
	genomestatus "github.com/oneconcern/igvsession/pkg/genome/status"
)

var (
	// ErrMalformedInput indicates that the input file name does not carry a build token
	ErrMalformedInput = genomestatus.ErrMalformedInput

	// ErrUnreadableManifest indicates that the manifest could not be opened or read
	ErrUnreadableManifest = errors.New("cannot read manifest")

	// ErrUnwritableOutput indicates that the session document could not be written
	ErrUnwritableOutput = errors.New("cannot write session document")

	// ErrInvalidDocument indicates a session document that cannot be encoded or decoded
	ErrInvalidDocument = errors.New("invalid session document")
)
