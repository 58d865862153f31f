package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/layup-dev/layup/internal/engine"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout <name>",
	Short: "Rematerialize a tracked component",
	Long: `Lay a tracked component's files out again using its recorded origin and its
dependencies' recorded directory transforms.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		eng, err := newEngine(cwd)
		if err != nil {
			return err
		}

		req := &engine.CheckoutRequest{
			WorkspaceRoot: cwd,
			Name:          args[0],
		}

		result, err := eng.Checkout(context.Background(), req)
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

		fmt.Printf("Checked out %s (%d files)\n", result.ID, len(result.Written))
		return nil
	},
}
