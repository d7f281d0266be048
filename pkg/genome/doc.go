// Copyright © 2018 One Concern

// Package genome resolves the genome build identifier used by IGV sessions.
//
// Archived files are named <prefix>_<build>_<suffix...>. The build token is matched
// against an ordered table of known builds: a build matches when the token equals
// its canonical name, or when the token starts with one of its legacy aliases
// (e.g. b37 and GRCh37 both resolve to hg19).
//
// Table order is the tie-break: the first matching build wins. An unknown token
// resolves to the empty identifier, which is not an error.
package genome
