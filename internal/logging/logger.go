// Package logging provides categorized, config-gated logging for the
// omnibar engine. Each subsystem logs through its own Category so that
// verbosity can be tuned per-concern without touching call sites.
package logging

import (
	"sync"

	"go.uber.org/zap"
)

// Category identifies the subsystem a log line belongs to.
type Category string

const (
	CategoryCache    Category = "cache"
	CategoryParser   Category = "parser"
	CategoryOmnibar  Category = "omnibar"
	CategoryExecutor Category = "executor"
	CategoryMacro    Category = "macro"
	CategorySystem   Category = "system"
)

var (
	mu      sync.RWMutex
	base    *zap.Logger = zap.NewNop()
	debug   bool
	started bool
)

// Configure installs the process-wide base logger. When verbose is false,
// info, warning and error lines are emitted; debug-level lines are dropped.
func Configure(verbose bool) error {
	mu.Lock()
	defer mu.Unlock()

	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	base = l
	debug = verbose
	started = true
	return nil
}

// Sync flushes any buffered log entries. Call before process exit.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = base.Sync()
}

// Get returns a logger scoped to the given category.
func Get(category Category) *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With(zap.String("category", string(category))).Sugar()
}

// DebugEnabled reports whether verbose logging was requested.
func DebugEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return debug
}
