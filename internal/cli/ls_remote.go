package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lsRemoteCmd)
}

var lsRemoteCmd = &cobra.Command{
	Use:   "ls-remote",
	Short: "List the latest versions found on vendor pages",
	Long:  "Fetches each tool's vendor download page and prints the version its update marker points to.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, e := range a.Installed() {
			info, _ := a.Manager.Info(e.Tool.ID)
			v, err := a.Manager.LatestVersion(cmd.Context(), e.Tool.ID)
			switch {
			case err != nil:
				fmt.Fprintf(out, "- %s: fetch failed (%v)\n", e.Tool.DisplayName, err)
			case v == "":
				fmt.Fprintf(out, "- %s: marker %q not found on %s\n", e.Tool.DisplayName, info.Vendor.Marker, info.Vendor.URL)
			default:
				fmt.Fprintf(out, "- %s: %s\n", e.Tool.DisplayName, v)
			}
		}
		return nil
	},
}
