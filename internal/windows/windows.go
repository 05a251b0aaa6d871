// Package windows implements WindowRepository by preferring a desktop-bus
// introspection call and falling back to a wmctrl-style window-list
// command, grounded on the original window_adapter's two-tier strategy.
package windows

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/leechristophermurray/launch/internal/logging"
	"github.com/leechristophermurray/launch/internal/model"
)

// Repository enumerates and focuses open windows.
type Repository struct {
	// IntrospectTimeout bounds how long the primary desktop-bus path may
	// run; the wmctrl-style source runs alongside it and is used when the
	// desktop-bus path fails, times out, or returns no windows.
	IntrospectTimeout time.Duration
}

// New builds a window Repository with the default introspection timeout.
func New() *Repository {
	return &Repository{IntrospectTimeout: 300 * time.Millisecond}
}

// Open runs the desktop-bus introspection source and the wmctrl-style
// fallback source concurrently (bounding the introspection side to
// IntrospectTimeout), and prefers the introspection result when it
// succeeds and is non-empty.
func (r *Repository) Open() ([]model.Window, error) {
	log := logging.Get(logging.CategoryOmnibar)

	ctx, cancel := context.WithTimeout(context.Background(), r.IntrospectTimeout)
	defer cancel()

	var introspected []model.Window
	var introspectOK bool
	var fallback []model.Window
	var fallbackErr error

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		introspected, introspectOK = r.introspect(ctx)
		return nil
	})
	g.Go(func() error {
		fallback, fallbackErr = r.wmctrlList()
		return nil
	})
	_ = g.Wait()

	if introspectOK && len(introspected) > 0 {
		return introspected, nil
	}
	if fallbackErr != nil {
		log.Debugw("wmctrl fallback failed", "error", fallbackErr)
		return nil, nil
	}
	return fallback, nil
}

// Focus raises and activates the window with the given id.
func (r *Repository) Focus(id string) error {
	cmd := exec.Command("wmctrl", "-i", "-a", id)
	return cmd.Run()
}

// introspect calls the desktop-bus Introspect.GetWindows method and parses
// its naive key-value-per-object output, ok=false on any failure.
func (r *Repository) introspect(ctx context.Context) ([]model.Window, bool) {
	cmd := exec.CommandContext(ctx, "gdbus", "call", "--session",
		"--dest", "org.gnome.Shell",
		"--object-path", "/org/gnome/Shell/Introspect",
		"--method", "org.gnome.Shell.Introspect.GetWindows")

	out, err := cmd.Output()
	if err != nil {
		return nil, false
	}
	return parseIntrospectOutput(string(out))
}

func parseIntrospectOutput(raw string) ([]model.Window, bool) {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "([") || !strings.HasSuffix(s, "])") {
		return nil, false
	}
	inner := s[2 : len(s)-2]
	inner = strings.ReplaceAll(inner, "'", "\"")

	var windows []model.Window
	for _, obj := range strings.Split(inner, "}, {") {
		obj = strings.Trim(obj, "{}")
		w := model.Window{Workspace: -1, Screen: -1}
		for _, pair := range strings.Split(obj, ",") {
			kv := strings.SplitN(pair, ":", 2)
			if len(kv) != 2 {
				continue
			}
			key := strings.Trim(strings.TrimSpace(kv[0]), "\"")
			val := strings.Trim(strings.TrimSpace(kv[1]), "\"")
			switch key {
			case "id":
				w.ID = val
			case "title":
				w.Title = val
			case "app_name":
				w.AppName = val
			case "workspace":
				if n, err := strconv.Atoi(val); err == nil {
					w.Workspace = n
				}
			case "screen":
				if n, err := strconv.Atoi(val); err == nil {
					w.Screen = n
				}
			}
		}
		if w.ID != "" {
			windows = append(windows, w)
		}
	}
	return windows, true
}

// wmctrlList parses `wmctrl -l -x` output: "<id> <desktop> <class> <machine> <title...>".
func (r *Repository) wmctrlList() ([]model.Window, error) {
	out, err := exec.Command("wmctrl", "-l", "-x").Output()
	if err != nil {
		return nil, err
	}
	return parseWmctrlLines(string(out)), nil
}

// parseWmctrlLines parses the line-oriented output of `wmctrl -l -x`.
func parseWmctrlLines(raw string) []model.Window {
	var windows []model.Window
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 5 {
			continue
		}
		desktop, err := strconv.Atoi(parts[1])
		if err != nil {
			desktop = -1
		}
		class := parts[2]
		appName := class
		if idx := strings.Index(class, "."); idx >= 0 {
			appName = class[idx+1:]
		}
		title := strings.Join(parts[4:], " ")

		windows = append(windows, model.Window{
			ID:        parts[0],
			Title:     title,
			AppName:   appName,
			Workspace: desktop,
			Screen:    -1,
		})
	}
	return windows
}
