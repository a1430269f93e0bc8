package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(depsCmd)
}

var depsCmd = &cobra.Command{
	Use:   "deps <tool>...",
	Short: "Check that a tool's package dependencies are installed",
	Long:  "Runs the pre-install dependency check. Only macOS (Homebrew) performs a real check; other platforms always pass.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		selected, err := selectTools(args)
		if err != nil {
			return err
		}
		a, err := requireApp()
		if err != nil {
			return err
		}
		missing := 0
		for _, t := range selected {
			if a.Deps(cmd.Context(), t.ID) {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: dependencies satisfied\n", t.ID)
				continue
			}
			missing++
			fmt.Fprintf(cmd.OutOrStdout(), "× %s: missing dependencies (see log)\n", t.ID)
		}
		if missing > 0 {
			return fmt.Errorf("deps: %s not ready", plural(missing, "tool"))
		}
		return nil
	},
}
