package procmon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leechristophermurray/launch/internal/model"
)

func fakeProcRoot(t *testing.T, procs map[string]struct{ comm, cmdline string }) string {
	t.Helper()
	root := t.TempDir()
	for pid, p := range procs {
		dir := filepath.Join(root, pid)
		if err := os.Mkdir(dir, 0o755); err != nil {
			t.Fatalf("Mkdir: %v", err)
		}
		if p.comm != "" {
			if err := os.WriteFile(filepath.Join(dir, "comm"), []byte(p.comm+"\n"), 0o644); err != nil {
				t.Fatalf("WriteFile comm: %v", err)
			}
		}
		if p.cmdline != "" {
			if err := os.WriteFile(filepath.Join(dir, "cmdline"), []byte(p.cmdline), 0o644); err != nil {
				t.Fatalf("WriteFile cmdline: %v", err)
			}
		}
	}
	// A non-numeric directory should be ignored.
	if err := os.Mkdir(filepath.Join(root, "self"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	return root
}

func TestAnnotateMarksRunningByCommBasename(t *testing.T) {
	t.Parallel()

	root := fakeProcRoot(t, map[string]struct{ comm, cmdline string }{
		"123": {comm: "firefox"},
	})

	apps := []model.Application{{Name: "Firefox", Exec: "/usr/bin/firefox"}, {Name: "GIMP", Exec: "gimp"}}
	m := New(root)
	if err := m.Annotate(apps); err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if !apps[0].Running {
		t.Error("expected firefox to be running")
	}
	if apps[1].Running {
		t.Error("expected gimp to not be running")
	}
}

func TestAnnotateMarksRunningByCmdlineToken(t *testing.T) {
	t.Parallel()

	root := fakeProcRoot(t, map[string]struct{ comm, cmdline string }{
		"456": {cmdline: "/opt/app/bin/myapp\x00--flag\x00"},
	})

	apps := []model.Application{{Name: "MyApp", Exec: "myapp"}}
	m := New(root)
	if err := m.Annotate(apps); err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if !apps[0].Running {
		t.Error("expected myapp to be running via cmdline basename")
	}
}

func TestAnnotateChromeHeuristicFallback(t *testing.T) {
	t.Parallel()

	root := fakeProcRoot(t, map[string]struct{ comm, cmdline string }{
		"789": {comm: "chrome"},
	})

	apps := []model.Application{{Name: "Google Chrome", Exec: "/usr/bin/google-chrome-stable"}}
	m := New(root)
	if err := m.Annotate(apps); err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if !apps[0].Running {
		t.Error("expected google-chrome to match via chrome* heuristic")
	}
}

func TestAnnotateUnreadableProcRootIsNotFatal(t *testing.T) {
	t.Parallel()

	m := New("/nonexistent-proc-root-for-omnibar-tests")
	apps := []model.Application{{Name: "X", Exec: "x"}}
	if err := m.Annotate(apps); err != nil {
		t.Fatalf("Annotate should not error: %v", err)
	}
	if apps[0].Running {
		t.Error("expected no apps running when /proc is unreadable")
	}
}
