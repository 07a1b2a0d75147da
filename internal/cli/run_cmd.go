package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/inputtree/internal/cli/formatter"
	"github.com/alexanderramin/inputtree/internal/domain"
	"github.com/spf13/cobra"
)

type runOptions struct {
	JSON     bool
	ShowIDs  bool
	SeedPath string
}

func newRunCmd(app *App) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run [SCRIPT]",
		Short: "Run an editing script and print the resulting tree",
		Long: `Run executes one editor command per line against a fresh forest and prints
the result. The script is read from SCRIPT, or from stdin when omitted.

Commands:
  add REF              add an empty child under REF
  edit REF VALUE...    set REF's value
  copy REF             duplicate REF's subtree as its next sibling
  sync REF VALUE...    set REF's value and broadcast it to copies
  del REF              delete REF and its subtree
  move DRAG HOVER      drop DRAG's subtree in front of HOVER
  undo | redo          step through history
  show                 print the current tree

REF is a positional path (0, 0.1, 1.0.2) or a unique ID prefix.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening script: %w", err)
				}
				defer f.Close()
				in = f
			}
			return runScript(cmd.Context(), app, in, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the final forest as JSON")
	cmd.Flags().BoolVar(&opts.ShowIDs, "ids", false, "Show short node IDs next to values")
	cmd.Flags().StringVar(&opts.SeedPath, "seed", "", "Start from a forest saved with --json instead of a single empty root")

	return cmd
}

// runScript seeds a fresh session, executes the script and prints the final
// forest.
func runScript(ctx context.Context, app *App, in io.Reader, out, errOut io.Writer, opts runOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	seed, err := loadSeed(opts.SeedPath)
	if err != nil {
		return err
	}
	if _, err := app.Forest.Seed(ctx, seed); err != nil {
		return fmt.Errorf("seeding forest: %w", err)
	}

	runner := &scriptRunner{svc: app.Forest, out: out, errOut: errOut, showIDs: opts.ShowIDs}
	if err := runner.Run(ctx, in); err != nil {
		return err
	}

	f, err := app.Forest.Forest(ctx)
	if err != nil {
		return err
	}
	if opts.JSON {
		return writeForestJSON(out, f)
	}
	fmt.Fprint(out, formatter.RenderForest(f, opts.ShowIDs))
	return nil
}

// loadSeed reads a saved forest. An empty path yields nil, which seeds a
// single empty root.
func loadSeed(path string) (domain.Forest, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed: %w", err)
	}
	defer f.Close()
	return readForestJSON(f)
}
