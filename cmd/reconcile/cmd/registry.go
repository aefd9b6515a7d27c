package cmd

import (
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/tabwise/reconcile/internal/appcontext"
)

// NewRegistryCommand creates the registry command.
func NewRegistryCommand(appCtx appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "registry",
		Short: "Show the canonical field registry in effect",
		Long: `Registry prints the canonical fields and their known aliases as YAML.
The output is a valid starting point for a custom --registry file.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			registry, err := appCtx.Registry()
			if err != nil {
				return err
			}
			return yaml.NewEncoder(c.OutOrStdout()).Encode(registry)
		},
	}
}
