package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/remod/format"
	"github.com/dhamidi/remod/java/syntax"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .java file and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read java file: %w", err)
			}
			root := syntax.Parse(data)

			switch outputFormat {
			case "json":
				if err := format.NewASTJSONEncoder(os.Stdout).Encode(root); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			case "tree":
				fmt.Fprint(os.Stdout, root.String())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json)")

	return cmd
}
