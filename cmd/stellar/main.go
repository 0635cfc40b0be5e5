// stellar is the Stellar Defender arcade shooter.
//
// Usage:
//
//	stellar play [mode]       - Play in the terminal
//	stellar window [mode]     - Play in a desktop window
//	stellar serve             - Start SSH server for remote play
//	stellar scores [mode]     - Show high scores
//	stellar list              - List game modes
//	stellar config dump       - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.stellar/scores.db)
//	--device <class>      - Layout profile: terminal, desktop, tablet, mobile
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--mute                - Disable sound
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stellar-defender/internal/config"
	"github.com/vovakirdan/stellar-defender/internal/games/stellar"
	"github.com/vovakirdan/stellar-defender/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagDevice     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stellar",
	Short: "Stellar Defender - a wave shooter for terminal and desktop",
	Long: `Stellar Defender is an arcade shooter: steer your craft, blast
meteors, aliens and bosses, and grab power-ups to survive the waves.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show game modes
  config   - Inspect the game configuration

Examples:
  stellar play
  stellar play stellar_practice
  stellar window --device tablet
  stellar serve --ssh :2222
  stellar scores --tui`,
	PersistentPreRunE: applyGlobalFlags,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagDevice, "device", "", "Layout profile: terminal, desktop, tablet, mobile")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGlobalFlags validates the shared flags and hands game options to the
// stellar package before any game is created.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 || flagFPS > 240 {
		return fmt.Errorf("--fps must be between 1 and 240, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if !validDevice(flagDevice) {
		return fmt.Errorf("unknown device %q (want terminal, desktop, tablet or mobile)", flagDevice)
	}
	if _, err := parseLogLevel(flagLogLevel); err != nil {
		return err
	}

	stellar.SetConfigPath(flagConfig)
	stellar.SetDifficultyPreset(flagDifficulty)
	return nil
}

func validDevice(device string) bool {
	switch device {
	case "", stellar.DeviceTerminal, stellar.DeviceDesktop, stellar.DeviceTablet, stellar.DeviceMobile:
		return true
	}
	return false
}

// fail prints an error and exits, as every command does on fatal errors.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
