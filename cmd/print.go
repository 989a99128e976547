/*
Copyright © 2026 JACOB ARTHURS
*/
package cmd

import (
	"io"

	"github.com/jacobarthurs/qpml/internal/render"

	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print [file]",
	Short: "Print a plan as an indented tree",
	Long: `Print a plan as an indented tree, one node title per line.

Input can be a QPML document, plan text, EXPLAIN JSON or SQL file.
Use "-" to read from stdin. If no file is provided, enters interactive mode.`,
	Example: `  # Print a plan document
  qpml print plan.qpml

  # Normalize indentation of plan text
  cat plan.txt | qpml print -`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		doc, err := loadDocument(cmd, args)
		if err != nil {
			return err
		}
		return writeOutput(cmd, output, func(w io.Writer) error {
			return render.WriteText(w, &doc)
		})
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
	printCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
}
