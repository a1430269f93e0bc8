package cli

import (
	"github.com/spf13/cobra"

	"edactl/internal/ui"
)

func init() {
	rootCmd.AddCommand(tuiCmd)
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the terminal dashboard",
	Long:  "Interactive dashboard listing every tool with recorded, installed and latest versions. Keys: i install, u update, c check, r refresh, q quit.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		return ui.Run(cmd.Context(), a)
	},
}
