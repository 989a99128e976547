/*
Copyright © 2026 JACOB ARTHURS
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jacobarthurs/qpml/internal/document"
	"github.com/jacobarthurs/qpml/internal/profile"
	"github.com/jacobarthurs/qpml/internal/source"

	"github.com/spf13/cobra"
)

// loadDocument resolves the optional input argument into a document whose
// style table is config styles, then --styles, then the document's own.
func loadDocument(cmd *cobra.Command, args []string) (document.Document, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	var input string
	if len(args) > 0 {
		input = args[0]
	}

	p := newProgress(logger)
	res, err := source.Resolve(ctx, input, source.Options{
		Connection: func() (string, error) {
			return profile.ResolveConnStr(dbConn, profileName)
		},
		Analyze: analyze,
		Costs:   costs,
		Stdin:   cmd.InOrStdin(),
		Prompt:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return document.Document{}, err
	}
	p.done("loaded input", "kind", res.Kind, "nodes", res.Document.Diagram.Count(), "depth", res.Document.Diagram.Depth())
	if res.PlanningTime > 0 || res.ExecutionTime > 0 {
		logger.Info("postgres timing", "planning_ms", res.PlanningTime, "execution_ms", res.ExecutionTime)
	}

	base, err := profile.Styles()
	if err != nil {
		return document.Document{}, err
	}
	if stylesPath != "" {
		sheet, err := document.LoadStyleSheet(stylesPath)
		if err != nil {
			return document.Document{}, fmt.Errorf("loading style sheet: %w", err)
		}
		logger.Debug("loaded style sheet", "path", stylesPath, "styles", len(sheet))
		base = append(base, sheet...)
	}

	return res.Document.WithStyles(base...), nil
}

// writeOutput sends write's output to path, or to the command's stdout when
// path is empty.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	loggerFromContext(cmd.Context()).Info("wrote output", "path", path)
	return nil
}
