package omnibar

import (
	"strings"
	"testing"
	"time"

	"github.com/leechristophermurray/launch/internal/appcache"
	"github.com/leechristophermurray/launch/internal/model"
	"github.com/leechristophermurray/launch/internal/ports"
)

type fakeAppRepo struct{ apps []model.Application }

func (f fakeAppRepo) FindApps() ([]model.Application, error) { return f.apps, nil }

type fakeProcMon struct{}

func (fakeProcMon) Annotate(apps []model.Application) error { return nil }

type fakeWindows struct {
	wins []model.Window
	err  error
}

func (f fakeWindows) Open() ([]model.Window, error) { return f.wins, f.err }
func (f fakeWindows) Focus(id string) error          { return nil }

type fakeFS struct {
	dirs map[string][]ports.FileEntry
}

func (f fakeFS) ListDir(path string) ([]ports.FileEntry, error) { return f.dirs[path], nil }
func (f fakeFS) IsDir(path string) bool                         { _, ok := f.dirs[path]; return ok }
func (f fakeFS) Exists(path string) bool                        { _, ok := f.dirs[path]; return ok }

type fakeShortcuts struct{ entries map[string]model.Shortcut }

func (f fakeShortcuts) All() ([]model.Shortcut, error) {
	out := make([]model.Shortcut, 0, len(f.entries))
	for _, sc := range f.entries {
		out = append(out, sc)
	}
	return out, nil
}
func (f fakeShortcuts) Get(key string) (model.Shortcut, bool, error) {
	sc, ok := f.entries[key]
	return sc, ok, nil
}
func (f fakeShortcuts) Put(model.Shortcut) error  { return nil }
func (f fakeShortcuts) Delete(string) error       { return nil }

type fakeMacros struct{ entries map[string]model.Macro }

func (f fakeMacros) All() ([]model.Macro, error) {
	out := make([]model.Macro, 0, len(f.entries))
	for _, m := range f.entries {
		out = append(out, m)
	}
	return out, nil
}
func (f fakeMacros) Get(name string) (model.Macro, bool, error) {
	m, ok := f.entries[name]
	return m, ok, nil
}
func (f fakeMacros) Put(model.Macro) error { return nil }
func (f fakeMacros) Delete(string) error   { return nil }

type fakeCalculator struct{}

func (fakeCalculator) Evaluate(expr string) (string, bool) {
	if expr == "1+1" {
		return "2", true
	}
	return "", false
}

type fakeDictionary struct{}

func (fakeDictionary) Lookup(term string) (string, bool) {
	if term == "rust" {
		return "Awesome language for systems programming.", true
	}
	return "", false
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cache, err := appcache.New(fakeAppRepo{apps: []model.Application{{Name: "Firefox", Exec: "firefox"}}}, fakeProcMon{}, time.Hour)
	if err != nil {
		t.Fatalf("appcache.New: %v", err)
	}
	return &Engine{
		Cache: cache,
		Windows: fakeWindows{wins: []model.Window{
			{ID: "0x2", Title: "Terminal", AppName: "Gnome-terminal", Workspace: 1, Screen: 0},
		}},
		FS:         fakeFS{dirs: map[string][]ports.FileEntry{}},
		Shortcuts:  fakeShortcuts{entries: map[string]model.Shortcut{"term": {Key: "term", Command: "gnome-terminal"}}},
		Macros:     fakeMacros{entries: map[string]model.Macro{"test": {Name: "test"}}},
		Calculator: fakeCalculator{},
		Dictionary: fakeDictionary{},
	}
}

func TestS1DictionaryMode(t *testing.T) {
	e := newTestEngine(t)
	items := e.Search("d rust")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %+v", len(items), items)
	}
	if !strings.Contains(items[0].Name, "Awesome language") {
		t.Errorf("name = %q, want substring \"Awesome language\"", items[0].Name)
	}
	if !strings.Contains(items[0].Exec, "google.com") {
		t.Errorf("exec = %q, want substring \"google.com\"", items[0].Exec)
	}
}

func TestS2TerminalMode(t *testing.T) {
	e := newTestEngine(t)
	items := e.Search("x echo hello")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Name != "Execute: echo hello" {
		t.Errorf("name = %q, want \"Execute: echo hello\"", items[0].Name)
	}
	for _, want := range []string{"gnome-terminal", "ptyxis", "x-terminal-emulator", "echo hello"} {
		if !strings.Contains(items[0].Exec, want) {
			t.Errorf("exec %q missing %q", items[0].Exec, want)
		}
	}
}

func TestS3ShortcutMode(t *testing.T) {
	e := newTestEngine(t)
	items := e.Search("ss term")
	if len(items) != 1 || items[0].Exec != "gnome-terminal" {
		t.Fatalf("expected one item with exec \"gnome-terminal\", got %+v", items)
	}
}

func TestS4MacroMode(t *testing.T) {
	e := newTestEngine(t)
	items := e.Search("m test")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if !strings.HasPrefix(items[0].Name, "Macro: test") {
		t.Errorf("name = %q, want prefix \"Macro: test\"", items[0].Name)
	}
	if items[0].Exec != "internal:macro:test" {
		t.Errorf("exec = %q, want \"internal:macro:test\"", items[0].Exec)
	}
}

func TestS5CalculatorMode(t *testing.T) {
	e := newTestEngine(t)
	items := e.Search("c 1+1")
	if len(items) != 1 || !strings.Contains(items[0].Name, "= 2") {
		t.Fatalf("expected one item containing \"= 2\", got %+v", items)
	}
}

func TestS6SystemMode(t *testing.T) {
	e := newTestEngine(t)
	items := e.Search("! reboot")
	if len(items) < 1 {
		t.Fatalf("expected at least one item, got 0")
	}
	if !strings.Contains(items[0].Name, "System: reboot") {
		t.Errorf("name = %q, want substring \"System: reboot\"", items[0].Name)
	}
	if items[0].Exec != "internal:system:reboot" {
		t.Errorf("exec = %q, want \"internal:system:reboot\"", items[0].Exec)
	}
}

func TestS7WindowsMode(t *testing.T) {
	e := newTestEngine(t)
	items := e.Search("w term")
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %+v", len(items), items)
	}
	if !strings.Contains(items[0].Name, "[WS 2]") {
		t.Errorf("name = %q, want substring \"[WS 2]\"", items[0].Name)
	}
	if !strings.Contains(items[0].Name, "Gnome-terminal - Terminal") {
		t.Errorf("name = %q, want substring \"Gnome-terminal - Terminal\"", items[0].Name)
	}
	if items[0].Exec != "internal:window:0x2" {
		t.Errorf("exec = %q, want \"internal:window:0x2\"", items[0].Exec)
	}
}

func TestEmptyModeReturnsCachedSnapshotInDefaultOrder(t *testing.T) {
	e := newTestEngine(t)
	items := e.Search("")
	if len(items) != 1 || items[0].Name != "Firefox" {
		t.Fatalf("expected cached app in empty-mode results, got %+v", items)
	}
}

func TestAppsModeFuzzyMatches(t *testing.T) {
	e := newTestEngine(t)
	items := e.Search("fire")
	if len(items) != 1 || items[0].Name != "Firefox" {
		t.Fatalf("expected fuzzy match on Firefox, got %+v", items)
	}
}

func TestLauncherModeFiltersFixedTriple(t *testing.T) {
	e := newTestEngine(t)
	items := e.Search("l quit")
	if len(items) != 1 || items[0].Exec != model.URIQuit {
		t.Fatalf("expected Quit item, got %+v", items)
	}
}

func TestFilesModeEndingSlashListsDirectoryContents(t *testing.T) {
	e := newTestEngine(t)
	e.FS = fakeFS{dirs: map[string][]ports.FileEntry{
		"/tmp/": {{Name: "a.txt"}, {Name: ".hidden"}, {Name: "sub", IsDir: true}},
	}}
	items := e.Search("f /tmp/")
	if len(items) != 2 {
		t.Fatalf("expected 2 visible entries (dot-file dropped), got %d: %+v", len(items), items)
	}
	if items[0].Name != "sub/" {
		t.Errorf("expected directory first with trailing slash, got %+v", items[0])
	}
}
