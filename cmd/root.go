/*
Copyright © 2026 JACOB ARTHURS
*/
package cmd

import (
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var Version = "dev"

var (
	verbose     bool
	stylesPath  string
	dbConn      string
	profileName string
	analyze     bool
	costs       bool
)

func init() {
	if Version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "(devel)" && info.Main.Version != "" {
			Version = info.Main.Version
		}
	}
	rootCmd.Version = Version

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&stylesPath, "styles", "", "TOML style sheet applied underneath the document's styles")
	flags.StringVarP(&dbConn, "db", "d", "", "PostgreSQL connection string for SQL input")
	flags.StringVarP(&profileName, "profile", "p", "", "Use named profile from config for SQL input")
	flags.BoolVar(&analyze, "analyze", false, "Run EXPLAIN ANALYZE for SQL input (executes the query) and show actual timings")
	flags.BoolVar(&costs, "costs", false, "Show planner cost estimates in PostgreSQL plan titles")
	rootCmd.MarkFlagsMutuallyExclusive("db", "profile")
}

var rootCmd = &cobra.Command{
	Use:          "qpml",
	SilenceUsage: true,
	Short:        "Render query plans as text, Graphviz and Mermaid diagrams",
	Long: `qpml is a CLI tool for turning query plans into diagrams.

Plans are read as QPML documents (YAML or JSON), indented plan text,
PostgreSQL EXPLAIN JSON, or SQL run against a PostgreSQL connection.
They can be printed as an indented tree, rendered to Graphviz DOT (or an
SVG/PNG image), rendered to Mermaid, or saved as a QPML document.`,
	Example: `  # Render a plan document to Graphviz
  qpml dot plan.qpml | dot -Tsvg > plan.svg

  # Convert indented plan text into a QPML document
  qpml import plan.txt -o plan.qpml

  # Diagram a query straight from PostgreSQL
  qpml mermaid query.sql --profile prod

  # Setup connection profiles
  qpml init`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
