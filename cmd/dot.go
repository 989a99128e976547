/*
Copyright © 2026 JACOB ARTHURS
*/
package cmd

import (
	"io"

	"github.com/jacobarthurs/qpml/internal/render"

	"github.com/spf13/cobra"
)

var dotCmd = &cobra.Command{
	Use:   "dot [file]",
	Short: "Render a plan as a Graphviz diagram",
	Long: `Render a plan as Graphviz DOT source, one box per operator.

Edges point from each input to the operator consuming it; --inverted points
them from the operator to its inputs instead. Styles named by nodes are looked
up in the config, the --styles sheet and the document, in that order.

With --image the DOT is laid out in-process and written as SVG or PNG.`,
	Example: `  # DOT source to stdout
  qpml dot plan.qpml

  # SVG image with edges pointing down to the inputs
  qpml dot plan.qpml --inverted --image svg -o plan.svg`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inverted, _ := cmd.Flags().GetBool("inverted")
		image, _ := cmd.Flags().GetString("image")
		output, _ := cmd.Flags().GetString("output")

		var format render.ImageFormat
		if image != "" {
			f, err := render.ParseImageFormat(image)
			if err != nil {
				return err
			}
			format = f
		}

		doc, err := loadDocument(cmd, args)
		if err != nil {
			return err
		}
		opts := render.DOTOptions{Inverted: inverted}

		if format == "" {
			return writeOutput(cmd, output, func(w io.Writer) error {
				return render.WriteDOT(w, &doc, opts)
			})
		}

		p := newProgress(loggerFromContext(cmd.Context()))
		data, err := render.Image(cmd.Context(), render.DOT(&doc, opts), format)
		if err != nil {
			return err
		}
		p.done("rendered image", "format", format, "bytes", len(data))

		return writeOutput(cmd, output, func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(dotCmd)
	dotCmd.Flags().Bool("inverted", false, "Point edges from each operator to its inputs")
	dotCmd.Flags().String("image", "", "Render an image instead of DOT source: svg, png")
	dotCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
}
