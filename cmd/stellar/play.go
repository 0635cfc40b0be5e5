package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stellar-defender/internal/core"
	"github.com/vovakirdan/stellar-defender/internal/games/stellar"
	"github.com/vovakirdan/stellar-defender/internal/platform/tui"
	"github.com/vovakirdan/stellar-defender/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start Stellar Defender in the terminal. The mode defaults to "stellar".

Controls:
  Arrows/WASD  - Steer
  Mouse drag   - Fly towards the pointer
  Enter/Space  - Start
  P/Esc        - Pause / resume
  R            - Restart (after game over)
  B            - Back to the menu (after game over)
  M            - Toggle sound
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Extra lives, slow waves
  normal - The default tuning
  hard   - Fewer lives, starts deeper
  fixed  - No progression, wave 1 forever

Examples:
  stellar play
  stellar play stellar_practice
  stellar play --difficulty hard
  stellar play --config ./my-stellar.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID, err := resolveMode(args)
	if err != nil {
		fail("%v", err)
	}

	var logOut io.Writer = io.Discard
	if f, logErr := openLogFile(defaultLogPath); logErr == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "stellar")

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	svc, release := localServices(logger, true)
	defer release()
	svc.Device = resolveDevice(svc.Save, stellar.DeviceTerminal, logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Device:   svc.Device,
	}

	logger.Info("session start", "mode", gameID, "device", cfg.Device, "size", [2]int{width, height})
	if runErr := tui.Run(game, cfg, tui.Options{Services: svc}); runErr != nil {
		release()
		fail("running game: %v", runErr)
	}
	if sg, ok := game.(*stellar.Game); ok && sg.ConfigError() != nil {
		logger.Warn("config fell back to defaults", "error", sg.ConfigError())
	}
}
