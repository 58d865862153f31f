package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/layup-dev/layup/internal/engine"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <name> <dir>",
	Short: "Write a component's original file tree to a directory",
	Long: `Map a tracked component's on-disk layout back to its captured paths,
restoring the shared directory prefix and removing the wrapper, and write
the result under the given directory.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		eng, err := newEngine(cwd)
		if err != nil {
			return err
		}

		req := &engine.RestoreRequest{
			WorkspaceRoot: cwd,
			Name:          args[0],
			Dir:           args[1],
		}

		result, err := eng.Restore(context.Background(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			out, err := formatJSON(result)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		}

		fmt.Printf("Restored %s (%d files) to %s\n", result.ID, len(result.Restored), args[1])
		return nil
	},
}
