package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tabwise/reconcile/internal/appcontext"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(appCtx appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, _ []string) {
			w := c.OutOrStdout()
			fmt.Fprintf(w, "reconcile version %s\n", appCtx.Version())
			fmt.Fprintf(w, "commit: %s\n", appCtx.Commit())
			fmt.Fprintf(w, "built: %s\n", appCtx.Date())
			fmt.Fprintf(w, "go version: %s\n", runtime.Version())
			fmt.Fprintf(w, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
