package cli

import (
	"github.com/alexanderramin/inputtree/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and terminal facts used by CLI commands.
type App struct {
	Forest service.ForestService

	// IsInteractive reports whether stdin is a terminal. The bare root
	// command starts the editor when it does and reads a script from stdin
	// otherwise. Nil means non-interactive.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "inputtree" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "inputtree",
		Short: "Hierarchical input tree editor",
		Long: `Edit a forest of labeled inputs: add children, duplicate subtrees,
sync values across copies and reorder nodes by dragging them over others.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runEditor(cmd.Context(), app, cmd.InOrStdin(), cmd.OutOrStdout())
			}
			return runScript(cmd.Context(), app, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), runOptions{})
		},
	}

	root.AddCommand(
		newRunCmd(app),
		newTUICmd(app),
	)

	return root
}
