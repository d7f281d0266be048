// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

var genomesCmd = &cobra.Command{
	Use:   "genomes [file...]",
	Short: "List the known genome builds, or resolve the build of input files",
	Long: `List the known genome builds and their legacy names, in resolution order.

When file names are given, prints the build resolved for each of them instead.
Extra builds may be declared in the configuration file:

  genomes:
    - name: dm6
      aliases: [BDGP6]
`,
	Example: `% igvsession genomes x_b37_temp_igv.txt
x_b37_temp_igv.txt  hg19`,
	Run: func(cmd *cobra.Command, args []string) {
		table, err := config.genomeTable()
		if err != nil {
			wrapFatalln("invalid genome builds in configuration", err)
			return
		}

		tbl := uitable.New()
		tbl.MaxColWidth = 80
		if len(args) == 0 {
			tbl.AddRow("BUILD", "ALIASES")
			for _, b := range table.Builds() {
				tbl.AddRow(b.Name, strings.Join(b.Aliases, ", "))
			}
		} else {
			tbl.AddRow("FILE", "BUILD")
			for _, arg := range args {
				build, err := table.Resolve(arg)
				if err != nil {
					wrapFatalln("resolve genome build", err)
					return
				}
				tbl.AddRow(arg, build)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), tbl)
	},
}

func init() {
	rootCmd.AddCommand(genomesCmd)
}
