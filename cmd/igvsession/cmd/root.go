// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/oneconcern/igvsession/internal"
	"github.com/oneconcern/igvsession/pkg/session"
	"github.com/oneconcern/igvsession/pkg/storage/localfs"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "igvsession",
	Short: "Create an IGV session for a data archive",
	Long: `Create an IGV session for a data archive.

The input file lists the paths of the archived files, one per line, relative to the archive root.
Its name follows the pattern <prefix>_<build>_temp_igv.txt: the genome build is resolved from <build>,
matching either a known build (hg38, hg19, mm10, mm9, rn6) or one of its legacy names (e.g. GRCh37, b37).

The session document is written to IGV/<prefix>_<build>_igv.xml. Files archived under an undefined
species and build ("None" directory) are referenced from "other_data".
`,
	Example: `% igvsession -f sample_hg19_temp_igv.txt
% cat IGV/sample_hg19_igv.xml
<?xml version='1.0' encoding='UTF-8'?>
<Global genome="hg19" version="3">
  <Resources>
    <Resource name="reads.bam" path="../other_data/bam/reads.bam"/>
  </Resources>
</Global>`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if igvFlags.root.cpuProf == "" {
			return
		}
		stop, err := internal.StartCPUProf(igvFlags.root.cpuProf, mustGetLogger(&igvFlags))
		if err != nil {
			wrapFatalln("start cpu profile", err)
			return
		}
		stopProf = stop
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if stopProf != nil {
			stopProf()
			stopProf = nil
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		logger := mustGetLogger(&igvFlags)
		defer func() { _ = logger.Sync() }()

		table, err := config.genomeTable()
		if err != nil {
			wrapFatalln("invalid genome builds in configuration", err)
			return
		}

		builder := session.NewBuilder(
			session.Store(localfs.New(appFs)),
			session.OutputDir(igvFlags.session.OutputDir),
			session.Table(table),
			session.Logger(logger),
		)
		if _, err = builder.Build(ctx, igvFlags.session.InputFile); err != nil {
			wrapFatalln("create igv session", err)
			return
		}
	},
}

var (
	config *CLIConfig

	stopProf func()

	// file system used by all commands, patched during tests
	appFs = afero.NewOsFs()
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var err error
	if err = rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	requiredFlags := []string{addInputFileFlag(rootCmd)}
	addOutputDirFlag(rootCmd)
	addLogLevel(rootCmd)
	addCPUProfFlag(rootCmd)

	for _, flag := range requiredFlags {
		err := rootCmd.MarkFlagRequired(flag)
		if err != nil {
			logFatalln(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	setConfigDefaults()
	if os.Getenv(envPrefix+"_CONFIG") != "" {
		// Use config file from the env.
		viper.SetConfigFile(os.Getenv(envPrefix + "_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.igvsession")
		viper.AddConfigPath("/etc/igvsession")
		viper.SetConfigName("igvsession")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
	var err error
	config, err = newConfig()
	if err != nil {
		logFatalln(err)
		return
	}
	config.setSessionParams(&igvFlags)
}
