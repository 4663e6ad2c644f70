// Package cmd (config.go) defines the 'config' commands for inspecting the
// resolved configuration.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tonimelisma/dealcloud-activity/internal/config"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration with the secret redacted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShowLogic(cmd)
	},
}

func configShowLogic(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		if usage, uerr := config.Usage(); uerr == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), usage)
		}
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(cfg.Redacted()); err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	return enc.Close()
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
