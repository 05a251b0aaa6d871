// Package desktopapps implements AppRepository by walking freedesktop
// .desktop files under a set of scan roots, grounded on the original
// desktop_entry_adapter's recursive-walk-and-parse strategy.
package desktopapps

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leechristophermurray/launch/internal/logging"
	"github.com/leechristophermurray/launch/internal/model"
)

// Repository scans a fixed set of root directories for .desktop files.
type Repository struct {
	roots []string
}

// New builds a Repository over the given scan roots.
func New(roots []string) *Repository {
	return &Repository{roots: roots}
}

// ScanRoots returns the directories this repository searches.
func (r *Repository) ScanRoots() []string {
	return append([]string(nil), r.roots...)
}

// FindApps walks each scan root recursively for *.desktop files, parses
// them, skips NoDisplay=true entries, and deduplicates by Name (stable,
// name-ascending).
func (r *Repository) FindApps() ([]model.Application, error) {
	log := logging.Get(logging.CategoryCache)
	byName := make(map[string]model.Application)

	for _, root := range r.roots {
		_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return nil // unreadable directories yield empty, not an error
			}
			if d.IsDir() || !strings.HasSuffix(path, ".desktop") {
				return nil
			}
			app, ok := parseDesktopFile(path)
			if !ok {
				return nil
			}
			byName[app.Name] = app
			return nil
		})
	}

	apps := make([]model.Application, 0, len(byName))
	for _, app := range byName {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].Name < apps[j].Name })

	log.Debugw("scanned desktop applications", "count", len(apps), "roots", r.roots)
	return apps, nil
}

// parseDesktopFile extracts Name, the first Exec= token, and Icon from a
// .desktop file, honoring NoDisplay=true as an exclusion.
func parseDesktopFile(path string) (model.Application, bool) {
	f, err := os.Open(path)
	if err != nil {
		return model.Application{}, false
	}
	defer f.Close()

	var name, execRaw, icon string
	noDisplay := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "Name=") && name == "":
			name = strings.TrimSpace(strings.TrimPrefix(line, "Name="))
		case strings.HasPrefix(line, "Exec=") && execRaw == "":
			execRaw = strings.TrimSpace(strings.TrimPrefix(line, "Exec="))
		case strings.HasPrefix(line, "Icon=") && icon == "":
			icon = strings.TrimSpace(strings.TrimPrefix(line, "Icon="))
		case line == "NoDisplay=true":
			noDisplay = true
		}
	}

	if noDisplay || name == "" || execRaw == "" {
		return model.Application{}, false
	}

	return model.Application{
		Name: name,
		Exec: firstToken(stripFieldCodes(execRaw)),
		Icon: icon,
	}, true
}

// stripFieldCodes removes freedesktop field codes (%u, %F, %i, ...) from
// an Exec= value.
func stripFieldCodes(exec string) string {
	fields := strings.Fields(exec)
	out := fields[:0]
	for _, f := range fields {
		if len(f) == 2 && f[0] == '%' {
			continue
		}
		out = append(out, f)
	}
	return strings.Join(out, " ")
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
