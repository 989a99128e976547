/*
Copyright © 2026 JACOB ARTHURS
*/
package cmd

import (
	"io"

	"github.com/jacobarthurs/qpml/internal/render"

	"github.com/spf13/cobra"
)

var mermaidCmd = &cobra.Command{
	Use:   "mermaid [file]",
	Short: "Render a plan as a Mermaid flowchart",
	Long: `Render a plan as a fenced Mermaid flowchart, ready to paste into Markdown.

Edges point from each input to the operator consuming it; --inverted points
them from the operator to its inputs instead.`,
	Example: `  qpml mermaid plan.qpml >> README.md
  qpml mermaid query.sql --db "postgres://localhost/app" --inverted`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inverted, _ := cmd.Flags().GetBool("inverted")
		output, _ := cmd.Flags().GetString("output")

		doc, err := loadDocument(cmd, args)
		if err != nil {
			return err
		}
		return writeOutput(cmd, output, func(w io.Writer) error {
			return render.WriteMermaid(w, &doc, render.MermaidOptions{Inverted: inverted})
		})
	},
}

func init() {
	rootCmd.AddCommand(mermaidCmd)
	mermaidCmd.Flags().Bool("inverted", false, "Point edges from each operator to its inputs")
	mermaidCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
}
