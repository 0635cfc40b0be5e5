package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stellar-defender/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a game would start with, after the --config file
(or ~/.stellar/configs/stellar.yaml, or ./configs/stellar.yaml) and the
--difficulty preset are applied. The output is a valid config file.

Examples:
  stellar config dump > ~/.stellar/configs/stellar.yaml
  stellar config dump --difficulty hard`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if err := dumpConfig(os.Stdout, flagConfig, flagDifficulty); err != nil {
			fail("%v", err)
		}
	},
}

func init() {
	configCmd.AddCommand(configDumpCmd)
}

// dumpConfig writes the effective configuration to w.
func dumpConfig(w io.Writer, path, difficulty string) error {
	cfg, err := config.LoadStellar(path)
	if err != nil {
		return err
	}
	config.ApplyStellarPreset(&cfg, config.ParsePreset(difficulty))

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, string(data))
	return err
}
