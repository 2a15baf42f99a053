package cmd

import (
	"fmt"
	"io"
	"os"

	"toolkit/core/codec"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	convertFrom string
	convertTo   string
)

// convertCmd re-encodes a document between formats.
var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a document between json, yaml, xml and binary",
	Long: `Reads a document from file, or stdin when no file is given, decodes it
with --from and writes it encoded with --to. Generic documents only map to
xml when they decode to a type encoding/xml supports.`,
	Example: `  toolkit convert --from json --to yaml config.json
  cat doc.yaml | toolkit convert --from yaml --to binary > doc.bin`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		from, ok := codec.ByName(convertFrom)
		if !ok {
			return fmt.Errorf("unknown input format %q", convertFrom)
		}
		to, ok := codec.ByName(convertTo)
		if !ok {
			return fmt.Errorf("unknown output format %q", convertTo)
		}

		in := cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return err
		}

		var doc any
		if err := from.Unmarshal(data, &doc); err != nil {
			return err
		}
		out, err := to.Marshal(doc)
		if err != nil {
			return err
		}

		s.log.Debug("Document converted",
			zap.String("from", from.ContentType()),
			zap.String("to", to.ContentType()),
			zap.Int("in", len(data)),
			zap.Int("out", len(out)))
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertFrom, "from", "f", "json", "input format")
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "yaml", "output format")
	RootCmd.AddCommand(convertCmd)
}
