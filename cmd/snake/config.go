package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagPrintDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the game configuration",
	Long: `Show the configuration a game would start with.

Without flags, prints the effective settings after the config file search
(see --config). With --print-default, prints the built-in config file,
ready to be saved and edited.

Examples:
  snake config --print-default > ~/.snake/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagPrintDefault, "print-default", false, "Print the built-in default config YAML")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagPrintDefault {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
