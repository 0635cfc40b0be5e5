package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stellar-defender/internal/audio"
	"github.com/vovakirdan/stellar-defender/internal/games/stellar"
	"github.com/vovakirdan/stellar-defender/internal/registry"
	"github.com/vovakirdan/stellar-defender/internal/savedata"
	"github.com/vovakirdan/stellar-defender/internal/session"
	"github.com/vovakirdan/stellar-defender/internal/storage"
)

// defaultLogPath receives TUI logs so they do not corrupt the alt screen.
const defaultLogPath = "~/.stellar/stellar.log"

func parseLogLevel(name string) (log.Level, error) {
	level, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// newLogger builds a process logger at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, _ := parseLogLevel(flagLogLevel)
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// openLogFile opens the TUI log for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// resolveMode returns the game mode named in args, defaulting to waves.
func resolveMode(args []string) (string, error) {
	mode := "stellar"
	if len(args) > 0 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return "", fmt.Errorf("unknown mode %q, run 'stellar list' to see game modes", mode)
	}
	return mode, nil
}

// resolveDevice picks the layout profile: the flag, then the saved choice,
// then the frontend default. An explicit flag is remembered. A saved choice
// only applies to the frontend kind it was made for.
func resolveDevice(save *savedata.Manager, fallback string, logger *log.Logger) string {
	if flagDevice != "" {
		if err := save.SetDevice(flagDevice); err != nil {
			logger.Warn("could not save device choice", "error", err)
		}
		return flagDevice
	}
	if d := save.Record().Device; d != "" && isTerminal(d) == isTerminal(fallback) {
		return d
	}
	return fallback
}

// localServices opens everything a local player session uses. Missing
// pieces degrade to warnings. The returned func releases them.
func localServices(logger *log.Logger, withSound bool) (session.Services, func()) {
	svc := session.Services{Logger: logger}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
	} else {
		svc.Store = store
	}

	svc.Save = savedata.Open(savedata.AppName)

	if withSound {
		sm := audio.NewSoundManager(flagMute || svc.Save.Record().Muted)
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio unavailable", "error", err)
		}
		svc.Sound = sm
	}

	return svc, func() {
		if svc.Sound != nil {
			svc.Sound.Cleanup()
		}
		if svc.Store != nil {
			svc.Store.Close()
		}
	}
}

func isTerminal(device string) bool {
	return device == stellar.DeviceTerminal
}
