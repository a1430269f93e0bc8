package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install <tool|all>...",
	Short: "Install EDA tools",
	Long:  "Checks dependencies, runs the platform install commands, verifies the installed version and configures the shell environment. Tools: ngspice, kicad, ghdl or all.",
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
		out := cmd.OutOrStdout()
		failed := 0
		for i, t := range selected {
			fmt.Fprintf(out, "[%d/%d] %s installing…\n", i+1, len(selected), t.DisplayName)
			res := a.Install(cmd.Context(), t.ID)
			if res.OK {
				fmt.Fprintf(out, "  ✓ %s\n", res)
				continue
			}
			failed++
			fmt.Fprintf(out, "  × %s\n", res)
		}
		if failed > 0 {
			return fmt.Errorf("install: %s failed", plural(failed, "tool"))
		}
		return nil
	},
}
