package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/layup-dev/layup/internal/engine"
)

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Untrack a component and delete its files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		eng, err := newEngine(cwd)
		if err != nil {
			return err
		}

		req := &engine.RemoveRequest{
			WorkspaceRoot: cwd,
			Name:          args[0],
		}

		if _, err := eng.Remove(context.Background(), req); err != nil {
			return err
		}

		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}
