// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"fmt"
	"regexp"

	"github.com/fatih/color"
	"github.com/oneconcern/igvsession/pkg/errors"
	"github.com/oneconcern/igvsession/pkg/golden"
	"github.com/oneconcern/igvsession/pkg/golden/status"
	"github.com/oneconcern/igvsession/pkg/storage/localfs"
	"github.com/spf13/cobra"
)

// exit code of a failed verification
const verifyFailed = 1

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Compare a produced file with a reference fixture",
	Long: `Compare a produced file with a reference fixture, by sha256 hash.

Lines which legitimately change from one run to another (e.g. resources pointing to a data host)
may be excluded from the comparison with --filter or --exclude.

With --json, both files are parsed as JSON and compared in canonical form. --json-field selects
a nested value of the output (e.g. output.session) to compare with the whole fixture.

When the files differ, a unified diff is printed and the command exits with a non-zero code.
`,
	Example: `% igvsession verify --output IGV/sample_hg19_igv.xml --wanted tests/files/igv_session_bam.xml \
    --exclude '<Resource path="https://dummy.host.com/data/'`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := mustGetLogger(&igvFlags)
		defer func() { _ = logger.Sync() }()

		opts := []golden.Option{
			golden.Gzipped(igvFlags.verify.Gzipped),
			golden.CreateMissing(igvFlags.verify.CreateMissing),
			golden.DiffContext(igvFlags.verify.DiffContext),
		}
		for _, filter := range igvFlags.verify.Filters {
			re, err := regexp.Compile(filter)
			if err != nil {
				wrapFatalln(fmt.Sprintf("invalid filter %q", filter), err)
				return
			}
			opts = append(opts, golden.FilterPattern(re))
		}
		for _, exclude := range igvFlags.verify.Excludes {
			opts = append(opts, golden.FilterContaining(exclude))
		}

		var (
			report golden.Report
			err    error
		)
		store := localfs.New(appFs)
		if igvFlags.verify.JSON {
			report, err = golden.CompareJSON(ctx, store, igvFlags.verify.Output, igvFlags.verify.JSONField, igvFlags.verify.Wanted, opts...)
		} else {
			report, err = golden.Compare(ctx, store, igvFlags.verify.Output, igvFlags.verify.Wanted, opts...)
		}
		out := cmd.OutOrStdout()
		switch {
		case errors.Is(err, status.ErrFixtureCreated):
			fmt.Fprintf(out, "%s %v\n", color.YellowString("CREATED"), err)
			osExit(verifyFailed)
			return
		case err != nil:
			wrapFatalln("verify", err)
			return
		case report.Match:
			fmt.Fprintf(out, "%s %s\n", color.GreenString("OK"), report)
		default:
			fmt.Fprintf(out, "%s %s\n", color.RedString("FAIL"), report)
			fmt.Fprint(out, report.Diff)
			osExit(verifyFailed)
		}
	},
}

func init() {
	requiredFlags := []string{
		addVerifyOutputFlag(verifyCmd),
		addVerifyWantedFlag(verifyCmd),
	}
	addGzippedFlag(verifyCmd)
	addCreateMissingFlag(verifyCmd)
	addFilterFlag(verifyCmd)
	addExcludeFlag(verifyCmd)
	addDiffContextFlag(verifyCmd)
	addJSONFlag(verifyCmd)
	addJSONFieldFlag(verifyCmd)

	for _, flag := range requiredFlags {
		err := verifyCmd.MarkFlagRequired(flag)
		if err != nil {
			logFatalln(err)
		}
	}
	rootCmd.AddCommand(verifyCmd)
}
