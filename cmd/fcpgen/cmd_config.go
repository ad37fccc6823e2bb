package main

import (
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration generate would use: defaults, overlaid with
--config and FCP_* environment variables. The YAML output is a valid config
file and a starting point for custom sessions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			return writeResult(cmd.OutOrStdout(), format, cfg)
		},
	}
	cmd.Flags().String("format", "yaml", "Output format: json or yaml")
	return cmd
}
