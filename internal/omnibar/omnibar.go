// Package omnibar implements the per-mode search strategies that turn a
// classified query into a uniform list of Items. It is the engine's
// largest component: one strategy per parser.Mode, consulting the
// Application Cache and the source-adapter ports, then the ranker.
package omnibar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/leechristophermurray/launch/internal/appcache"
	"github.com/leechristophermurray/launch/internal/logging"
	"github.com/leechristophermurray/launch/internal/model"
	"github.com/leechristophermurray/launch/internal/parser"
	"github.com/leechristophermurray/launch/internal/ports"
	"github.com/leechristophermurray/launch/internal/ranker"
)

// fixed action/launcher vocabularies, per spec §6 / §4.E.
var systemActions = []string{
	"suspend", "reboot", "poweroff", "lock", "hibernate",
	"mute", "mute_mic", "mute_all",
	"toggle_night_light", "toggle_dark_mode", "toggle_dnd",
}

var launcherItems = []model.Item{
	{Name: "About Launch", Exec: model.URIAbout, Icon: "help-about"},
	{Name: "Quit", Exec: model.URIQuit, Icon: "application-exit"},
	{Name: "Settings", Exec: model.URISettings, Icon: "preferences-system"},
}

// Engine dispatches a query to the strategy selected by parser.Parse.
type Engine struct {
	Cache      *appcache.Cache
	Windows    ports.WindowRepository
	FS         ports.FileSystem
	Shortcuts  ports.ShortcutRepository
	Macros     ports.MacroRepository
	Calculator ports.Calculator
	Dictionary ports.Dictionary
}

// NewQueryGeneration mints an opaque, unique id a caller can attach to an
// in-flight search so that a later, faster response can be told apart
// from a stale one: search is non-cancelable (spec §5), so discarding
// stale results by generation id is the caller's responsibility, not the
// engine's.
func NewQueryGeneration() string {
	return uuid.NewString()
}

// Search classifies query and runs the corresponding strategy.
func (e *Engine) Search(query string) []model.Item {
	result := parser.Parse(query)
	log := logging.Get(logging.CategoryOmnibar)
	log.Debugw("search", "mode", result.Mode.String(), "remainder", result.Remainder)

	switch result.Mode {
	case parser.ModeEmpty:
		return e.searchEmpty()
	case parser.ModeApps:
		return e.searchApps(result.Remainder)
	case parser.ModeWindows:
		return e.searchWindows(result.Remainder)
	case parser.ModeTerminal:
		return e.searchTerminal(result.Remainder)
	case parser.ModeFiles:
		return e.searchFiles(result.Remainder)
	case parser.ModeShortcut:
		return e.searchShortcut(result.Remainder)
	case parser.ModeCalculator:
		return e.searchCalculator(result.Remainder)
	case parser.ModeDictionary:
		return e.searchDictionary(result.Remainder)
	case parser.ModeMacro:
		return e.searchMacro(result.Remainder)
	case parser.ModeSystem:
		return e.searchSystem(result.Remainder)
	case parser.ModeLauncher:
		return e.searchLauncher(result.Remainder)
	default:
		return nil
	}
}

func (e *Engine) searchEmpty() []model.Item {
	apps := ranker.RankEmptyDefault(e.Cache.Snapshot())
	return itemsFromApps(apps)
}

func (e *Engine) searchApps(query string) []model.Item {
	apps := ranker.RankApps(query, e.Cache.Snapshot())
	return itemsFromApps(apps)
}

func itemsFromApps(apps []model.Application) []model.Item {
	out := make([]model.Item, 0, len(apps))
	for _, a := range apps {
		out = append(out, model.Item{Name: a.Name, Exec: a.Exec, Icon: a.Icon, Running: a.Running})
	}
	return out
}

func (e *Engine) searchWindows(keyword string) []model.Item {
	wins, err := e.Windows.Open()
	if err != nil {
		logging.Get(logging.CategoryOmnibar).Warnw("window enumeration failed", "error", err)
		return nil
	}

	keyword = strings.ToLower(keyword)
	out := make([]model.Item, 0, len(wins))
	for _, w := range wins {
		if keyword != "" &&
			!strings.Contains(strings.ToLower(w.Title), keyword) &&
			!strings.Contains(strings.ToLower(w.AppName), keyword) {
			continue
		}
		out = append(out, model.Item{
			Name:    formatWindow(w),
			Exec:    model.WindowURI(w.ID),
			Icon:    "preferences-system-windows",
			Running: true,
		})
	}
	return out
}

func formatWindow(w model.Window) string {
	ws := "?"
	if w.Workspace >= 0 {
		ws = fmt.Sprintf("%d", w.Workspace+1)
	}
	scr := "?"
	if w.Screen >= 0 {
		scr = fmt.Sprintf("%d", w.Screen+1)
	}
	return fmt.Sprintf("[WS %s] [SCR %s] %s - %s", ws, scr, w.AppName, w.Title)
}

func (e *Engine) searchTerminal(cmd string) []model.Item {
	if cmd == "" {
		return nil
	}
	exec := fmt.Sprintf(
		"if command -v gnome-terminal >/dev/null 2>&1; then gnome-terminal -- %s; "+
			"elif command -v ptyxis >/dev/null 2>&1; then ptyxis --standalone -- %s; "+
			"else x-terminal-emulator -e %s; fi",
		cmd, cmd, cmd,
	)
	return []model.Item{{
		Name: "Execute: " + cmd,
		Exec: exec,
		Icon: "utilities-terminal",
	}}
}

func (e *Engine) searchFiles(raw string) []model.Item {
	path := expandHome(raw)
	if path == "" {
		path, _ = os.UserHomeDir()
	}

	var dir, prefix string
	if strings.HasSuffix(path, "/") || e.FS.IsDir(path) {
		dir, prefix = path, ""
	} else {
		dir, prefix = filepath.Dir(path), filepath.Base(path)
	}

	entries, err := e.FS.ListDir(dir)
	if err != nil {
		logging.Get(logging.CategoryOmnibar).Warnw("files listing failed", "dir", dir, "error", err)
		return nil
	}

	lowerPrefix := strings.ToLower(prefix)
	filtered := make([]ranker.FileEntry, 0, len(entries))
	fullPaths := make(map[string]string, len(entries))
	for _, en := range entries {
		if strings.HasPrefix(en.Name, ".") {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(en.Name), lowerPrefix) {
			continue
		}
		filtered = append(filtered, ranker.FileEntry{Name: en.Name, IsDir: en.IsDir})
		fullPaths[en.Name] = filepath.Join(dir, en.Name)
	}

	ranked := ranker.RankFiles(filtered)
	out := make([]model.Item, 0, len(ranked))
	for _, en := range ranked {
		full := fullPaths[en.Name]
		name := en.Name
		var execCmd, icon string
		if en.IsDir {
			name += "/"
			execCmd = fmt.Sprintf("nautilus %q", full)
			icon = "folder"
		} else {
			execCmd = fmt.Sprintf("xdg-open %q", full)
			icon = "text-x-generic"
		}
		out = append(out, model.Item{Name: name, Exec: execCmd, Icon: icon})
	}
	return out
}

func expandHome(path string) string {
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func (e *Engine) searchShortcut(query string) []model.Item {
	if sc, ok, _ := e.Shortcuts.Get(query); ok {
		return []model.Item{{Name: "Shortcut: " + sc.Key, Exec: sc.Command, Icon: "input-keyboard"}}
	}

	all, err := e.Shortcuts.All()
	if err != nil {
		return nil
	}
	lowerQuery := strings.ToLower(query)
	out := make([]model.Item, 0, len(all))
	for _, sc := range all {
		if strings.Contains(strings.ToLower(sc.Key), lowerQuery) {
			out = append(out, model.Item{Name: "Shortcut: " + sc.Key, Exec: sc.Command, Icon: "input-keyboard"})
		}
	}
	return out
}

func (e *Engine) searchCalculator(expr string) []model.Item {
	if expr == "" {
		return nil
	}
	result, ok := e.Calculator.Evaluate(expr)
	if !ok {
		return nil
	}
	return []model.Item{{
		Name: "= " + result,
		Exec: fmt.Sprintf("sh -c %q", fmt.Sprintf("printf %%s %s | xclip -selection clipboard", shellQuote(result))),
		Icon: "accessories-calculator",
	}}
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func (e *Engine) searchDictionary(term string) []model.Item {
	if term == "" {
		return nil
	}
	def, found := e.Dictionary.Lookup(term)
	name := fmt.Sprintf("No local definition for %q — search online", term)
	if found {
		name = def
	}
	url := fmt.Sprintf("xdg-open https://www.google.com/search?q=define+%s", term)
	return []model.Item{{Name: name, Exec: url, Icon: "accessories-dictionary"}}
}

func (e *Engine) searchMacro(query string) []model.Item {
	if m, ok, _ := e.Macros.Get(query); ok {
		return []model.Item{{Name: "Macro: " + m.Name, Exec: model.MacroURI(m.Name), Icon: "system-run"}}
	}

	all, err := e.Macros.All()
	if err != nil {
		return nil
	}
	lowerQuery := strings.ToLower(query)
	out := make([]model.Item, 0, len(all))
	for _, m := range all {
		if strings.Contains(strings.ToLower(m.Name), lowerQuery) {
			out = append(out, model.Item{Name: "Macro: " + m.Name, Exec: model.MacroURI(m.Name), Icon: "system-run"})
		}
	}
	return out
}

func (e *Engine) searchSystem(prefix string) []model.Item {
	lowerPrefix := strings.ToLower(prefix)
	out := make([]model.Item, 0, len(systemActions))
	for _, action := range systemActions {
		if !strings.HasPrefix(strings.ToLower(action), lowerPrefix) {
			continue
		}
		out = append(out, model.Item{Name: "System: " + action, Exec: model.SystemURI(action), Icon: "system-shutdown"})
	}
	return out
}

func (e *Engine) searchLauncher(query string) []model.Item {
	lowerQuery := strings.ToLower(query)
	out := make([]model.Item, 0, len(launcherItems))
	for _, it := range launcherItems {
		if strings.Contains(strings.ToLower(it.Name), lowerQuery) {
			out = append(out, it)
		}
	}
	return out
}
