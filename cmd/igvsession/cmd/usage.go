// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

const (
	docFormatMarkdown = "markdown"
	docFormatMan      = "man"
)

// docFrontMatter heads every markdown page with the command title and the tool version
func docFrontMatter(filename string) string {
	title := strings.Replace(strings.TrimSuffix(filepath.Base(filename), ".md"), "_", " ", -1)
	return fmt.Sprintf("---\ntitle: %q\n---\n\n**Version: %s**\n\n", title, NewVersionInfo().Version)
}

// docCmd is a doc generation command powered by cobra
var docCmd = &cobra.Command{
	Use:   "usage",
	Short: "Generates documentation",
	Long: `Generate the usage documentation of igvsession and its subcommands, one page per command.

Pages are written to --target-dir as markdown (default) or as man pages (section 1).`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		target := igvFlags.doc.docTarget
		if err := os.MkdirAll(target, 0755); err != nil {
			wrapFatalln("create documentation directory", err)
			return
		}

		var err error
		switch igvFlags.doc.format {
		case docFormatMarkdown:
			err = doc.GenMarkdownTreeCustom(rootCmd, target, docFrontMatter, func(s string) string { return s })
		case docFormatMan:
			err = doc.GenManTree(rootCmd, &doc.GenManHeader{
				Title:   "IGVSESSION",
				Section: "1",
				Source:  "igvsession " + NewVersionInfo().Version,
			}, target)
		default:
			err = fmt.Errorf("unsupported format %q: expected %s or %s", igvFlags.doc.format, docFormatMarkdown, docFormatMan)
		}
		if err != nil {
			wrapFatalln("failed to generate doc", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(docCmd)
	addTargetFlag(docCmd)
	addDocFormatFlag(docCmd)
}
