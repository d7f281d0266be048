// Copyright © 2018 One Concern

// Package manifest reads the list of archived files referenced by an IGV session.
//
// A manifest is a plain text file with one path per line, relative to the archive root.
// Files for which neither species nor build are known are archived under a "None"
// directory: such paths are relocated under "other_data".
package manifest

import (
	"bufio"
	"io"
	"path"
	"strings"
	"unicode"
)

const (
	// UnknownDir is the directory token used by the archiver when species and build are undefined
	UnknownDir = "None"

	// OtherDataDir replaces UnknownDir in resource paths
	OtherDataDir = "other_data"

	parentDir = ".."
)

// Resource describes a file referenced by a session document.
type Resource struct {
	// Name displayed by IGV
	Name string `json:"name" yaml:"name"`

	// Path relative to the session document
	Path string `json:"path" yaml:"path"`
}

// NewResource builds the resource descriptor for a manifest entry.
//
// The display name is computed from the entry as listed, while the path is computed
// from the normalized entry.
func NewResource(entry string) Resource {
	return Resource{
		Name: basename(entry),
		Path: relativeToSession(Normalize(entry)),
	}
}

// relativeToSession prefixes entries with the parent directory, leaving absolute
// entries untouched. Entries are not cleaned: they are reproduced as listed.
func relativeToSession(entry string) string {
	if path.IsAbs(entry) {
		return entry
	}
	return parentDir + "/" + entry
}

// Normalize relocates entries whose grandparent directory is UnknownDir.
//
// The grandparent is taken lexically, without cleaning the entry: "./None/bam/reads.bam"
// and "None/x/../y/reads.bam" are left untouched.
func Normalize(entry string) string {
	if dirname(dirname(entry)) == UnknownDir {
		return strings.Replace(entry, UnknownDir, OtherDataDir, -1)
	}
	return entry
}

// dirname returns everything before the last slash, with trailing slashes removed
// unless the result is made only of slashes. Unlike path.Dir, it never cleans.
func dirname(entry string) string {
	head := entry[:strings.LastIndexByte(entry, '/')+1]
	if trimmed := strings.TrimRight(head, "/"); trimmed != "" {
		return trimmed
	}
	return head
}

// basename returns everything after the last slash, possibly empty.
func basename(entry string) string {
	return entry[strings.LastIndexByte(entry, '/')+1:]
}

// Reader iterates over the resources listed by a manifest, in order.
//
// A Reader makes a single forward pass: open the manifest again to iterate again.
type Reader struct {
	rdr     *bufio.Reader
	current Resource
	lines   int
	err     error
}

// NewReader builds a resource iterator over a manifest
func NewReader(r io.Reader) *Reader {
	return &Reader{rdr: bufio.NewReader(r)}
}

// Next advances to the next resource. It returns false at the end of the manifest
// or when an error occurred.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	for {
		line, err := r.rdr.ReadString('\n')
		if err != nil && err != io.EOF {
			r.err = err
			return false
		}
		if line == "" && err == io.EOF {
			return false
		}
		r.lines++
		entry := strings.TrimRightFunc(line, unicode.IsSpace)
		if entry != "" {
			r.current = NewResource(entry)
			return true
		}
		if err == io.EOF {
			return false
		}
	}
}

// Resource returns the current resource
func (r *Reader) Resource() Resource {
	return r.current
}

// Line returns the number of manifest lines consumed so far
func (r *Reader) Line() int {
	return r.lines
}

// Err returns the first error encountered while reading the manifest
func (r *Reader) Err() error {
	return r.err
}

// ReadAll returns all the resources listed by a manifest
func ReadAll(r io.Reader) ([]Resource, error) {
	var resources []Resource
	rdr := NewReader(r)
	for rdr.Next() {
		resources = append(resources, rdr.Resource())
	}
	return resources, rdr.Err()
}

