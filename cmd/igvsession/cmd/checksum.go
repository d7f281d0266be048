// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"fmt"

	units "github.com/docker/go-units"
	"github.com/oneconcern/igvsession/pkg/fingerprint"
	"github.com/oneconcern/igvsession/pkg/storage/localfs"
	"github.com/spf13/cobra"
)

// checksumCmd represents the checksum command
var checksumCmd = &cobra.Command{
	Use:   "checksum <file>",
	Short: "Create a blake2b checksum for a file",
	Long: `Create a blake2b tree checksum for a file, e.g. a session document.

The checksum depends on the digest and leaf sizes.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := mustGetLogger(&igvFlags)
		defer func() { _ = logger.Sync() }()

		leafSize, err := units.RAMInBytes(igvFlags.checksum.LeafSize)
		if err != nil {
			wrapFatalln("invalid leaf size", err)
			return
		}
		if igvFlags.checksum.DigestSize <= 0 || igvFlags.checksum.DigestSize > fingerprint.DefaultSize {
			wrapFatalln(fmt.Sprintf("invalid digest size %d: expected at most %d bytes", igvFlags.checksum.DigestSize, fingerprint.DefaultSize), nil)
			return
		}

		fp, err := fingerprint.New(
			fingerprint.Size(uint8(igvFlags.checksum.DigestSize)),
			fingerprint.LeafSize(leafSize),
			fingerprint.Logger(logger),
		).Process(context.Background(), localfs.New(appFs), args[0])
		if err != nil {
			wrapFatalln("checksum", err)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%x\n", fp)
	},
}

func init() {
	addDigestSizeFlag(checksumCmd)
	addLeafSizeFlag(checksumCmd)
	rootCmd.AddCommand(checksumCmd)
}
