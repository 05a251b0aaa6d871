// Command omnibar is a debug CLI for the dispatch and ranking engine: it
// wires the same adapters the desktop front-end would, and exposes
// search/execute/cache-status as subcommands for scripting and manual
// testing.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leechristophermurray/launch/internal/appcache"
	"github.com/leechristophermurray/launch/internal/calc"
	"github.com/leechristophermurray/launch/internal/config"
	"github.com/leechristophermurray/launch/internal/desktopapps"
	"github.com/leechristophermurray/launch/internal/dictionary"
	"github.com/leechristophermurray/launch/internal/executor"
	"github.com/leechristophermurray/launch/internal/fsys"
	"github.com/leechristophermurray/launch/internal/logging"
	"github.com/leechristophermurray/launch/internal/macro"
	"github.com/leechristophermurray/launch/internal/omnibar"
	"github.com/leechristophermurray/launch/internal/procmon"
	"github.com/leechristophermurray/launch/internal/store"
	"github.com/leechristophermurray/launch/internal/sysaction"
	"github.com/leechristophermurray/launch/internal/windows"
)

var cfgPath string

func main() {
	root := &cobra.Command{
		Use:   "omnibar",
		Short: "Debug CLI for the omnibar dispatch and ranking engine",
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")

	root.AddCommand(newSearchCmd(), newExecuteCmd(), newCacheCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// engine bundles everything wired from Config, shared by all subcommands.
type engine struct {
	cfg   *config.Config
	cache *appcache.Cache
	eng   *omnibar.Engine
	exec  *executor.Executor
}

func buildEngine() (*engine, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := logging.Configure(cfg.Verbose); err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}

	apps := desktopapps.New(cfg.Scan.Roots)
	procs := procmon.New("/proc")
	cache, err := appcache.New(apps, procs, cfg.Cache.RefreshInterval)
	if err != nil {
		return nil, fmt.Errorf("build app cache: %w", err)
	}
	cache.Start()

	shortcuts, err := store.NewShortcutStore(cfg.Store.ShortcutPath)
	if err != nil {
		return nil, fmt.Errorf("load shortcut store: %w", err)
	}
	macros, err := store.NewMacroStore(cfg.Store.MacroPath)
	if err != nil {
		return nil, fmt.Errorf("load macro store: %w", err)
	}

	ob := &omnibar.Engine{
		Cache:      cache,
		Windows:    windows.New(),
		FS:         fsys.New(),
		Shortcuts:  shortcuts,
		Macros:     macros,
		Calculator: calc.New(),
		Dictionary: dictionary.New(),
	}

	ex := &executor.Executor{
		System:  sysaction.New(),
		Windows: windows.New(),
		Shell:   cfg.Executor.Shell,
	}
	interp := macro.NewInterpreter(macros, sysaction.New(), ob, func(execStr string) error {
		_, err := ex.Execute(execStr)
		return err
	})
	ex.Macros = interp

	return &engine{cfg: cfg, cache: cache, eng: ob, exec: ex}, nil
}
