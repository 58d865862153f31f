package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/layup-dev/layup/internal/engine"
)

var originColors = map[string]*color.Color{
	"authored": color.New(color.FgGreen),
	"imported": color.New(color.FgCyan),
	"nested":   color.New(color.FgYellow),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show tracked components",
	Long:  `Display the workspace's tracked components, their provenance, and the directory transforms recorded for them.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		eng, err := newEngine(cwd)
		if err != nil {
			return err
		}

		result, err := eng.Status(context.Background(), &engine.StatusRequest{})
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

		if len(result.Components) == 0 {
			fmt.Println("No tracked components")
			return nil
		}

		fmt.Printf("Tracked components: %d\n\n", len(result.Components))
		for _, info := range result.Components {
			origin := string(info.Origin)
			if c, ok := originColors[origin]; ok {
				origin = c.Sprint(origin)
			}
			fmt.Printf("  %s  [%s]\n", info.ID, origin)
			fmt.Printf("    shared: %s  wrap: %s\n", info.SharedDir, info.WrapDir)
		}
		return nil
	},
}
