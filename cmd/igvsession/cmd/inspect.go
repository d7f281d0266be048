// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/oneconcern/igvsession/pkg/session"
	"github.com/oneconcern/igvsession/pkg/storage/localfs"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const (
	formatXML  = "xml"
	formatJSON = "json"
	formatYAML = "yaml"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <session.xml>",
	Short: "Print the content of a session document",
	Long: `Decode a session document and print its genome, version and resources.

The document is re-encoded in the requested format: xml (canonical session layout), json or yaml.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rdr, err := localfs.New(appFs).Get(context.Background(), args[0])
		if err != nil {
			wrapFatalln("open session", err)
			return
		}
		defer rdr.Close()

		doc, err := session.Decode(rdr)
		if err != nil {
			wrapFatalln("decode session", err)
			return
		}
		if err = printDocument(cmd.OutOrStdout(), doc, igvFlags.inspect.Format); err != nil {
			wrapFatalln("print session", err)
			return
		}
	},
}

func printDocument(w io.Writer, doc session.Document, format string) error {
	switch format {
	case formatXML:
		return session.Encode(w, doc)
	case formatJSON:
		b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case formatYAML:
		b, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unsupported format %q: expected one of %s, %s, %s", format, formatXML, formatJSON, formatYAML)
	}
}

func init() {
	addFormatFlag(inspectCmd)
	rootCmd.AddCommand(inspectCmd)
}
