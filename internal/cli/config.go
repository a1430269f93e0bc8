package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cfg "edactl/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd)
	configSchemaCmd.Flags().BoolVar(&schemaRegistry, "registry", false, "print the registry file schema instead")
}

var schemaRegistry bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration locations and settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return configPathCmd.RunE(cmd, args)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config, registry and log file paths",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := cfg.Dir()
		if err != nil {
			return err
		}
		file := flagConfig
		if file == "" {
			if file, err = cfg.FilePath(); err != nil {
				return err
			}
		}
		reg, err := loaded.ResolvedRegistryFile()
		if err != nil {
			return err
		}
		logf, err := loaded.ResolvedLogFile()
		if err != nil {
			return err
		}
		profile, err := loaded.ResolvedShellProfile()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config dir:    %s\n", dir)
		fmt.Fprintf(out, "config file:   %s\n", file)
		fmt.Fprintf(out, "registry:      %s\n", reg)
		fmt.Fprintf(out, "log file:      %s\n", logf)
		fmt.Fprintf(out, "shell profile: %s\n", profile)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config.yaml settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loaded.Marshal()
		if err != nil {
			return err
		}
		if len(loaded.Vendors) == 0 && string(b) == "{}\n" {
			fmt.Fprintln(cmd.OutOrStdout(), "# built-in defaults")
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		sch := cfg.ConfigSchema()
		if schemaRegistry {
			sch = cfg.RegistrySchema()
		}
		b, err := cfg.MarshalSchema(sch)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}
