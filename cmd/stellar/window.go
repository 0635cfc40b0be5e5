package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stellar-defender/internal/core"
	"github.com/vovakirdan/stellar-defender/internal/games/stellar"
	"github.com/vovakirdan/stellar-defender/internal/platform/window"
	"github.com/vovakirdan/stellar-defender/internal/registry"
)

var (
	flagWidth  int
	flagHeight int
	flagTouch  bool
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open Stellar Defender in its own window. The canvas follows the window
size and the layout profile follows --device (desktop by default).

Controls are the same as in the terminal. With --touch the pointer steers the
craft while a finger or the left button is down.

Examples:
  stellar window
  stellar window --width 1280 --height 720
  stellar window --device mobile --touch --width 390 --height 844`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", window.DefaultWidth, "Initial window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", window.DefaultHeight, "Initial window height in pixels")
	windowCmd.Flags().BoolVar(&flagTouch, "touch", false, "Use the touch layout for the chosen device")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID, err := resolveMode(args)
	if err != nil {
		fail("%v", err)
	}
	if flagWidth <= 0 || flagHeight <= 0 {
		fail("window size must be positive, got %dx%d", flagWidth, flagHeight)
	}

	logger := newLogger(os.Stderr, "stellar")
	svc, release := localServices(logger, true)
	defer release()
	svc.Device = resolveDevice(svc.Save, stellar.DeviceDesktop, logger)

	created, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}
	game, ok := created.(*stellar.Game)
	if !ok {
		fail("mode %q cannot run in a window", gameID)
	}

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
		Device:   svc.Device,
		Touch:    flagTouch,
		CanvasW:  float64(flagWidth),
		CanvasH:  float64(flagHeight),
	}

	logger.Info("window start", "mode", gameID, "device", cfg.Device, "touch", cfg.Touch)
	if runErr := window.Run(game, cfg, svc); runErr != nil {
		release()
		fail("running window: %v", runErr)
	}
}
