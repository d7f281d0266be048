// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/igvsession/pkg/dlogger"
	"github.com/oneconcern/igvsession/pkg/fingerprint"
	"github.com/oneconcern/igvsession/pkg/session"
	"github.com/spf13/cobra"
)

type flagsT struct {
	session struct {
		InputFile string
		OutputDir string
	}
	verify struct {
		Output        string
		Wanted        string
		Gzipped       bool
		CreateMissing bool
		Filters       []string
		Excludes      []string
		DiffContext   int
		JSON          bool
		JSONField     string
	}
	checksum struct {
		DigestSize int
		LeafSize   string
	}
	inspect struct {
		Format string
	}
	root struct {
		logLevel string
		cpuProf  string
	}
	doc struct {
		docTarget string
		format    string
	}
}

var igvFlags = flagsT{}

const (
	inputFileFlag = "input_file"
	outputDirFlag = "output-dir"
	logLevelFlag  = "loglevel"
	cpuProfFlag   = "cpuprof"
)

func addInputFileFlag(cmd *cobra.Command) string {
	cmd.Flags().StringVarP(&igvFlags.session.InputFile, inputFileFlag, "f", "", "File with paths to files for IGV, named <prefix>_<build>_temp_igv.txt")
	return inputFileFlag
}

func addOutputDirFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&igvFlags.session.OutputDir, outputDirFlag, session.DefaultOutputDir, "The directory where session documents are written")
	return outputDirFlag
}

func addLogLevel(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&igvFlags.root.logLevel, logLevelFlag, dlogger.LogLevelInfo, "The logging level. Levels by increasing order of verbosity: none, error, warn, info, debug")
	return logLevelFlag
}

func addCPUProfFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&igvFlags.root.cpuProf, cpuProfFlag, "", "Write a CPU profile to this file")
	return cpuProfFlag
}

func addVerifyOutputFlag(cmd *cobra.Command) string {
	c := "output"
	cmd.Flags().StringVar(&igvFlags.verify.Output, c, "", "The produced file to verify")
	return c
}

func addVerifyWantedFlag(cmd *cobra.Command) string {
	c := "wanted"
	cmd.Flags().StringVar(&igvFlags.verify.Wanted, c, "", "The reference fixture")
	return c
}

func addGzippedFlag(cmd *cobra.Command) string {
	c := "gzipped"
	cmd.Flags().BoolVar(&igvFlags.verify.Gzipped, c, false, "Decompress both files before comparing them")
	return c
}

func addCreateMissingFlag(cmd *cobra.Command) string {
	c := "create-missing"
	cmd.Flags().BoolVar(&igvFlags.verify.CreateMissing, c, false, "When the fixture is missing, create it from the output. The verification still fails")
	return c
}

func addFilterFlag(cmd *cobra.Command) string {
	c := "filter"
	cmd.Flags().StringSliceVar(&igvFlags.verify.Filters, c, nil, "A regular expression (RE2) matching lines excluded from the comparison. May be repeated")
	return c
}

func addExcludeFlag(cmd *cobra.Command) string {
	c := "exclude"
	cmd.Flags().StringSliceVar(&igvFlags.verify.Excludes, c, nil, "Lines containing this literal value are excluded from the comparison. May be repeated")
	return c
}

func addDiffContextFlag(cmd *cobra.Command) string {
	c := "diff-context"
	cmd.Flags().IntVar(&igvFlags.verify.DiffContext, c, 3, "Number of context lines in the reported diff")
	return c
}

func addJSONFlag(cmd *cobra.Command) string {
	c := "json"
	cmd.Flags().BoolVar(&igvFlags.verify.JSON, c, false, "Compare JSON values, ignoring key order and formatting")
	return c
}

func addJSONFieldFlag(cmd *cobra.Command) string {
	c := "json-field"
	cmd.Flags().StringVar(&igvFlags.verify.JSONField, c, "", "With --json, the dot-separated path of the output value to compare (default: whole document)")
	return c
}

func addDigestSizeFlag(cmd *cobra.Command) string {
	c := "digest-size"
	cmd.Flags().IntVar(&igvFlags.checksum.DigestSize, c, fingerprint.DefaultSize, "Digest size in bytes")
	return c
}

func addLeafSizeFlag(cmd *cobra.Command) string {
	c := "leaf-size"
	cmd.Flags().StringVar(&igvFlags.checksum.LeafSize, c, "5MiB", "Leaf size for tree mode (in B, KiB, MiB, ...)")
	return c
}

func addFormatFlag(cmd *cobra.Command) string {
	c := "format"
	cmd.Flags().StringVar(&igvFlags.inspect.Format, c, formatXML, "Output format: xml, json or yaml")
	return c
}

func addTargetFlag(cmd *cobra.Command) string {
	c := "target-dir"
	cmd.Flags().StringVar(&igvFlags.doc.docTarget, c, ".", "The target directory where to generate the markdown documentation")
	return c
}

func addDocFormatFlag(cmd *cobra.Command) string {
	c := "doc-format"
	cmd.Flags().StringVar(&igvFlags.doc.format, c, docFormatMarkdown, "Documentation format: markdown or man")
	return c
}
