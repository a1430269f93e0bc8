package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"edactl/internal/tools"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update <tool|all>...",
	Short: "Upgrade EDA tools when the vendor lists a different version",
	Long:  "Compares the installed version with the vendor download page and runs the platform upgrade commands only when they differ. Tools: ngspice, kicad, ghdl or all.",
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
			fmt.Fprintf(out, "[%d/%d] %s update check…\n", i+1, len(selected), t.DisplayName)
			res := a.Update(cmd.Context(), t.ID)
			switch {
			case res.OK:
				fmt.Fprintf(out, "  ✓ %s\n", res)
			case res.CheckFailed():
				failed++
				fmt.Fprintf(out, "  × %s\n", res)
			case res.Reason == tools.ReasonNoUpdate, res.Reason == tools.ReasonNotInstalled:
				// nothing to do is not an error
				fmt.Fprintf(out, "  • %s\n", res)
			default:
				failed++
				fmt.Fprintf(out, "  × %s\n", res)
			}
		}
		if failed > 0 {
			return fmt.Errorf("update: %s failed", plural(failed, "tool"))
		}
		return nil
	},
}
