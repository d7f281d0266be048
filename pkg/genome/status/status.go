// Copyright © 2018 One Concern

// Package status exports errors produced by the genome package.
package status

import (
	"github.com/oneconcern/igvsession/pkg/errors"
)

var (
	// ErrMalformedInput indicates that a file name does not carry an underscore-delimited build token
	ErrMalformedInput = errors.New("malformed input file name")

	// ErrInvalidBuild indicates a genome build definition without a name
	ErrInvalidBuild = errors.New("invalid genome build definition")
)
