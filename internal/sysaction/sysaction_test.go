package sysaction

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/leechristophermurray/launch/internal/errs"
)

// withStubPath installs no-op stub executables for the named commands on
// PATH so Execute's fire-and-forget os/exec.Start calls succeed without
// touching the real system.
func withStubPath(t *testing.T, names ...string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub shell scripts require a POSIX shell")
	}

	dir := t.TempDir()
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestExecuteUnsupportedAction(t *testing.T) {
	t.Parallel()

	err := New().Execute("not-a-real-action")
	if !errors.Is(err, errs.ErrUnsupportedAction) {
		t.Fatalf("expected ErrUnsupportedAction, got %v", err)
	}
}

func TestExecuteKnownActionsSpawn(t *testing.T) {
	withStubPath(t, "systemctl", "loginctl", "wpctl", "gsettings")

	d := New()
	for _, action := range []string{
		"suspend", "reboot", "poweroff", "shutdown", "hibernate", "lock",
		"mute", "mute_audio", "mute_mic", "mute_all",
		"toggle_night_light", "toggle_dark_mode", "toggle_dnd",
	} {
		if err := d.Execute(action); err != nil {
			t.Errorf("Execute(%q): %v", action, err)
		}
	}
}
