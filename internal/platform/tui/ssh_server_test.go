package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	_ "github.com/vovakirdan/stellar-defender/internal/games/stellar"
)

func TestHostKeyPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "keys", "nested")
	path, err := hostKeyPath(filepath.Join(dir, "host_key"))
	if err != nil {
		t.Fatalf("hostKeyPath() error: %v", err)
	}
	if path != filepath.Join(dir, "host_key") {
		t.Errorf("path = %q", path)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Error("key directory should be created")
	}

	t.Setenv("HOME", t.TempDir())
	def, err := hostKeyPath("")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(def) != "host_key" || filepath.Base(filepath.Dir(def)) != ".stellar" {
		t.Errorf("default key path = %q", def)
	}
}

func TestNewSSHServer(t *testing.T) {
	quiet := log.New(io.Discard)
	dir := t.TempDir()

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")

	bad := cfg
	bad.GameID = "pong"
	if _, err := NewSSHServer(bad, quiet); err == nil {
		t.Error("unknown mode should be rejected")
	}

	srv, err := NewSSHServer(cfg, quiet)
	if err != nil {
		t.Fatalf("NewSSHServer() error: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" || srv.Active() != 0 {
		t.Errorf("addr=%q active=%d", srv.Addr(), srv.Active())
	}
	if srv.store == nil {
		t.Error("store should be open")
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() error: %v", err)
	}
	if srv.store != nil {
		t.Error("Shutdown should close the store")
	}
}
