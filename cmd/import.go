/*
Copyright © 2026 JACOB ARTHURS
*/
package cmd

import (
	"io"

	"github.com/jacobarthurs/qpml/internal/document"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Convert a plan into a QPML document",
	Long: `Convert plan text, EXPLAIN JSON, SQL or another QPML document into a QPML document.

The document is written as YAML unless --format json is given or the output
file ends in .json.`,
	Example: `  # Indented plan text to QPML
  qpml import plan.txt -o plan.qpml

  # PostgreSQL plan to a JSON document
  qpml import query.sql --profile prod --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatFlag, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		format := document.FormatFromPath(output)
		if formatFlag != "" {
			f, err := document.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			format = f
		}

		doc, err := loadDocument(cmd, args)
		if err != nil {
			return err
		}
		return writeOutput(cmd, output, func(w io.Writer) error {
			return document.Write(w, doc, format)
		})
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringP("format", "f", "", "Document format: yaml, json (default from output extension, else yaml)")
	importCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
}
