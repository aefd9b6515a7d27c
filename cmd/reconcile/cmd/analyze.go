// Package cmd implements the reconcile CLI subcommands. Commands receive
// their dependencies through appcontext.Interface rather than globals.
package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tabwise/reconcile/internal/appcontext"
	"github.com/tabwise/reconcile/internal/render"
	"github.com/tabwise/reconcile/internal/sources/directory"
	"github.com/tabwise/reconcile/pkg/errors"
	"github.com/tabwise/reconcile/pkg/logging"
)

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(appCtx appcontext.Interface) *cobra.Command {
	var outFile string

	c := &cobra.Command{
		Use:   "analyze <directory>",
		Short: "Analyze a directory of CSV extracts",
		Long: `Analyze reads every CSV file in a directory, maps observed headers onto
the canonical field registry, classifies date values, and measures
per-field completeness across files.

Files that cannot be read or parsed are reported in the output and do
not abort the run.`,
		Example: `  reconcile analyze ./extracts
  reconcile analyze ./extracts -o json
  reconcile analyze ./extracts --out report.yaml -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runAnalyze(c, appCtx, args[0], outFile)
		},
	}

	c.Flags().StringVar(&outFile, "out", "", "write the report to a file instead of stdout")

	return c
}

func runAnalyze(c *cobra.Command, appCtx appcontext.Interface, dir, outFile string) error {
	format, err := render.ParseFormat(appCtx.OutputFormat())
	if err != nil {
		return err
	}

	client, err := appCtx.Client()
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(c.Context(), appCtx.Logger())
	report, err := client.Analyze(ctx, directory.New(dir))
	if err != nil {
		return err
	}

	var w io.Writer = c.OutOrStdout()
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return errors.WrapIO("create", outFile, err)
		}
		defer f.Close()
		w = f
	}

	return render.Write(w, report, format)
}
