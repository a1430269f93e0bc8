package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"edactl/internal/tools"
)

var checkJSON bool

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output JSON report")
}

type checkRow struct {
	Tool    string `json:"tool"`
	State   string `json:"state"`
	Current string `json:"current,omitempty"`
	Latest  string `json:"latest,omitempty"`
	Error   string `json:"error,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check [tool|all]...",
	Short: "Check vendor pages for newer releases",
	Long:  "Reports, per tool, whether it is installed and whether the vendor download page lists a different version. Nothing is installed or upgraded.",
	RunE: func(cmd *cobra.Command, args []string) error {
		selected, err := selectTools(args)
		if err != nil {
			return err
		}
		a, err := loadApp()
		if err != nil {
			return err
		}
		rows := make([]checkRow, 0, len(selected))
		for _, t := range selected {
			chk := a.Check(cmd.Context(), t.ID)
			row := checkRow{Tool: string(chk.Tool), State: string(chk.State), Current: chk.Current, Latest: chk.Latest}
			if chk.Err != nil {
				row.Error = chk.Err.Error()
			}
			rows = append(rows, row)
			if !checkJSON {
				fmt.Fprintln(cmd.OutOrStdout(), checkLine(chk))
			}
		}
		if checkJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		}
		return nil
	},
}

func checkLine(chk tools.UpdateCheck) string {
	switch chk.State {
	case tools.UpdateAvailable:
		return fmt.Sprintf("↑ %s", chk)
	case tools.UpdateNotInstalled:
		return fmt.Sprintf("- %s", chk)
	}
	if chk.Err != nil {
		return fmt.Sprintf("? %s", chk)
	}
	return fmt.Sprintf("✓ %s", chk)
}
