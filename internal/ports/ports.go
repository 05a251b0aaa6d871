// Package ports declares the adapter interfaces the omnibar
// engine consumes. Each port has exactly one production implementation in
// a sibling package, and is satisfiable by a test fake for unit tests.
package ports

import "github.com/leechristophermurray/launch/internal/model"

// AppRepository reads the set of installed applications.
type AppRepository interface {
	FindApps() ([]model.Application, error)
}

// ProcessMonitor annotates applications with their running state by
// consulting the process table. It mutates the slice in place.
type ProcessMonitor interface {
	Annotate(apps []model.Application) error
}

// FileSystem is a read-only view of the filesystem for the Files mode.
type FileSystem interface {
	ListDir(path string) ([]FileEntry, error)
	IsDir(path string) bool
	Exists(path string) bool
}

// FileEntry is one entry returned by FileSystem.ListDir.
type FileEntry struct {
	Name  string
	IsDir bool
}

// WindowRepository enumerates and focuses open windows.
type WindowRepository interface {
	Open() ([]model.Window, error)
	Focus(id string) error
}

// ShortcutRepository is CRUD over the shortcut store.
type ShortcutRepository interface {
	All() ([]model.Shortcut, error)
	Get(key string) (model.Shortcut, bool, error)
	Put(s model.Shortcut) error
	Delete(key string) error
}

// MacroRepository is CRUD over the macro store.
type MacroRepository interface {
	All() ([]model.Macro, error)
	Get(name string) (model.Macro, bool, error)
	Put(m model.Macro) error
	Delete(name string) error
}

// SystemPower dispatches a system action (suspend, lock, mute, ...) to the
// OS. Failures are reported, never raised.
type SystemPower interface {
	Execute(action string) error
}

// Calculator evaluates an arithmetic expression (with optional LaTeX
// dialect) and returns its result, or ok=false if unparseable.
type Calculator interface {
	Evaluate(expr string) (result string, ok bool)
}

// Dictionary looks up an offline definition for a term.
type Dictionary interface {
	Lookup(term string) (definition string, found bool)
}
