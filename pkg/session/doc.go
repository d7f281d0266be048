// Copyright © 2018 One Concern

// Package session builds IGV session documents for data archives.
//
// A session document references the files of an archive so that IGV can load them all at once:
//
//	<?xml version='1.0' encoding='UTF-8'?>
//	<Global genome="hg19" version="3">
//	  <Resources>
//	    <Resource name="reads.bam" path="../other_data/bam/reads.bam"/>
//	  </Resources>
//	</Global>
//
// The Builder runs the whole pipeline once per input manifest: resolve the genome build
// from the manifest file name, read the resources listed by the manifest, encode the
// document, then write it to the output directory. There is no retry and no intermediate state.
package session
