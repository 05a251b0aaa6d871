// Package procmon implements ProcessMonitor by reading /proc/<pid>/comm
// and /proc/<pid>/cmdline, grounded on the original procfs_adapter's
// running-binaries-set strategy, extended per spec.md with the
// cmdline-basename observation and the google-chrome heuristic fallback.
package procmon

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/leechristophermurray/launch/internal/logging"
	"github.com/leechristophermurray/launch/internal/model"
)

// Monitor reads the live process table under procRoot (normally /proc).
type Monitor struct {
	procRoot string

	unreadable int // count of PID dirs that could not be read this cycle
}

// New builds a Monitor reading from procRoot.
func New(procRoot string) *Monitor {
	if procRoot == "" {
		procRoot = "/proc"
	}
	return &Monitor{procRoot: procRoot}
}

// Stats describes the outcome of the most recent Annotate call.
type Stats struct {
	UnreadablePIDs int
}

// Stats returns the unreadable-PID count observed by the last Annotate.
func (m *Monitor) Stats() Stats {
	return Stats{UnreadablePIDs: m.unreadable}
}

// Annotate marks each application's Running flag based on whether its
// executable basename appears among observed comm/cmdline basenames.
func (m *Monitor) Annotate(apps []model.Application) error {
	observed := m.observedNames()

	for i := range apps {
		base := strings.ToLower(filepath.Base(apps[i].Exec))
		running := observed[base]
		if !running && strings.Contains(base, "google-chrome") {
			for name := range observed {
				if strings.HasPrefix(name, "chrome") {
					running = true
					break
				}
			}
		}
		apps[i].Running = running
	}

	return nil
}

// observedNames collects the lowercased comm short-name and both the full
// path and basename of the first NUL-separated cmdline token, for every
// numeric directory under procRoot.
func (m *Monitor) observedNames() map[string]bool {
	log := logging.Get(logging.CategoryCache)
	observed := make(map[string]bool)
	m.unreadable = 0

	entries, err := os.ReadDir(m.procRoot)
	if err != nil {
		log.Warnw("cannot read proc root", "root", m.procRoot, "error", err)
		return observed
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := strconv.Atoi(entry.Name()); err != nil {
			continue
		}
		pidDir := filepath.Join(m.procRoot, entry.Name())

		if comm, err := os.ReadFile(filepath.Join(pidDir, "comm")); err == nil {
			observed[strings.ToLower(strings.TrimSpace(string(comm)))] = true
		} else {
			m.unreadable++
		}

		if cmdline, err := os.ReadFile(filepath.Join(pidDir, "cmdline")); err == nil {
			if tok := firstNULToken(cmdline); tok != "" {
				observed[strings.ToLower(tok)] = true
				observed[strings.ToLower(filepath.Base(tok))] = true
			}
		}
	}

	return observed
}

func firstNULToken(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}
