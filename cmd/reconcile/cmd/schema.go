package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/tabwise/reconcile/internal/appcontext"
	"github.com/tabwise/reconcile/internal/ddl"
	"github.com/tabwise/reconcile/internal/sources/directory"
	"github.com/tabwise/reconcile/pkg/logging"
)

// NewSchemaCommand creates the schema command.
func NewSchemaCommand(appCtx appcontext.Interface) *cobra.Command {
	var tableName string

	c := &cobra.Command{
		Use:   "schema <directory>",
		Short: "Recommend a SQL schema from analyzed extracts",
		Long: `Schema analyzes a directory of CSV extracts and prints a CREATE TABLE
recommendation for the canonical registry, with column types, observed
coverage, and index suggestions for high-frequency fields.`,
		Example: `  reconcile schema ./extracts
  reconcile schema ./extracts --table probate_records`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runSchema(c, appCtx, args[0], tableName)
		},
	}

	c.Flags().StringVar(&tableName, "table", "records", "table name for the generated DDL")

	return c
}

func runSchema(c *cobra.Command, appCtx appcontext.Interface, dir, tableName string) error {
	client, err := appCtx.Client()
	if err != nil {
		return err
	}
	registry, err := appCtx.Registry()
	if err != nil {
		return err
	}

	ctx := logging.WithLogger(c.Context(), appCtx.Logger())
	report, err := client.Analyze(ctx, directory.New(dir))
	if err != nil {
		return err
	}

	_, err = io.WriteString(c.OutOrStdout(), ddl.Generate(tableName, report, registry))
	return err
}
