package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/layup-dev/layup/internal/engine"
)

var importDryRun bool

var importCmd = &cobra.Command{
	Use:   "import <name@version>...",
	Short: "Import components into the workspace",
	Long: `Resolve each component and its full dependency set, compute the directory
transforms used on disk, and lay the files out under components/.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		eng, err := newEngine(cwd)
		if err != nil {
			return err
		}

		req := &engine.ImportRequest{
			WorkspaceRoot: cwd,
			Refs:          args,
			DryRun:        importDryRun,
		}

		result, err := eng.Import(context.Background(), req)
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

		for _, item := range result.Items {
			fmt.Printf("%s  shared=%s  wrap=%s\n", item.ID, item.SharedDir, item.WrapDir)
		}
		if importDryRun {
			fmt.Println("Dry run: no files written")
		} else {
			fmt.Printf("Imported %d components (%d files)\n", len(result.Items), len(result.Written))
		}
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "compute transforms without writing anything")
}
