// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/igvsession/pkg/dlogger"
	"github.com/oneconcern/igvsession/pkg/genome"
	"github.com/oneconcern/igvsession/pkg/session"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "IGVSESSION"

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// bug in viper? Need to keep names of fields the same as the serialized names..
	OutputDir string         `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"` // Directory where sessions are written
	LogLevel  string         `json:"loglevel" yaml:"loglevel" mapstructure:"loglevel"`       // Logging level
	Genomes   []genome.Build `json:"genomes" yaml:"genomes" mapstructure:"genomes"`          // Extra genome builds, after the default ones
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// setSessionParams fills in flags left unset on the command line
func (c *CLIConfig) setSessionParams(flags *flagsT) {
	if !rootCmd.PersistentFlags().Changed(outputDirFlag) && c.OutputDir != "" {
		flags.session.OutputDir = c.OutputDir
	}
	if !rootCmd.PersistentFlags().Changed(logLevelFlag) && c.LogLevel != "" {
		flags.root.logLevel = c.LogLevel
	}
}

// genomeTable is the default build table, extended with the configured builds
func (c *CLIConfig) genomeTable() (genome.Table, error) {
	if c == nil {
		return genome.DefaultTable(), nil
	}
	return genome.DefaultTable().With(c.Genomes...)
}

func setConfigDefaults() {
	viper.SetDefault("output_dir", session.DefaultOutputDir)
	viper.SetDefault("loglevel", dlogger.LogLevelInfo)
}

func mustGetLogger(flags *flagsT) *zap.Logger {
	logger, err := dlogger.GetLogger(flags.root.logLevel)
	if err != nil {
		wrapFatalln("failed to set log level", err)
		return zap.NewNop()
	}
	return logger
}
