package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/layup-dev/layup/internal/engine"
)

var publishDeps []string

var publishCmd = &cobra.Command{
	Use:   "publish <dir> <name@version>",
	Short: "Capture a directory as a component snapshot",
	Long: `Read every file under the directory and store the result in the object store
as an immutable snapshot addressed by its content digest.`,
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

		req := &engine.PublishRequest{
			Dir:            args[0],
			Ref:            args[1],
			DependencyRefs: publishDeps,
		}

		result, err := eng.Publish(context.Background(), req)
		if err != nil {
			return err
		}

		fmt.Printf("Published %s (%d files)\n", result.ID, result.FileCount)
		return nil
	},
}

func init() {
	publishCmd.Flags().StringSliceVar(&publishDeps, "dep", nil, "dependency reference (name@version), repeatable")
}
