// Package macro implements the Macro Interpreter: it looks up a macro by
// name and plays its actions in order, re-entering the Command Executor
// for actions that resolve to an executable exec string, with a shallow
// guard against a macro whose resolved action points back at itself.
package macro

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/leechristophermurray/launch/internal/logging"
	"github.com/leechristophermurray/launch/internal/model"
	"github.com/leechristophermurray/launch/internal/ports"
)

// ExecuteFunc re-enters the Command Executor for a resolved exec string.
// Declared as a function type (rather than importing internal/executor's
// Executor) because the executor package in turn depends on a MacroRunner
// contract satisfied by Interpreter; callers wire this field to
// executor.Executor.Execute, discarding the returned Signal.
type ExecuteFunc func(execStr string) error

// AppSearcher performs an App-mode search, used to resolve a LaunchApp
// action's bare application name into a concrete exec string.
type AppSearcher interface {
	Search(query string) []model.Item
}

// Interpreter plays macros. Construct with NewInterpreter.
type Interpreter struct {
	Macros  ports.MacroRepository
	System  ports.SystemPower
	Apps    AppSearcher
	Execute ExecuteFunc
	Sleep   func(time.Duration)
}

// NewInterpreter builds an Interpreter with the production Sleep
// implementation (time.Sleep).
func NewInterpreter(macros ports.MacroRepository, system ports.SystemPower, apps AppSearcher, execute ExecuteFunc) *Interpreter {
	return &Interpreter{
		Macros:  macros,
		System:  system,
		Apps:    apps,
		Execute: execute,
		Sleep:   time.Sleep,
	}
}

// Run looks up name and plays its actions; a missing macro is a silent
// no-op per the spec's lookup-or-no-op contract.
func (in *Interpreter) Run(name string) error {
	m, ok, err := in.Macros.Get(name)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	log := logging.Get(logging.CategoryMacro)
	selfURI := model.MacroURI(name)

	for i, action := range m.Actions {
		if err := in.perform(name, selfURI, action); err != nil {
			log.Warnw("macro action failed", "macro", name, "index", i, "kind", action.Kind, "error", err)
		}
	}
	return nil
}

func (in *Interpreter) perform(macroName, selfURI string, action model.MacroAction) error {
	switch action.Kind {
	case model.MacroActionLaunchApp:
		return in.performLaunchApp(selfURI, action.AppName)

	case model.MacroActionCommand:
		// Forwarded directly to external-command execution: it does NOT
		// route through internal-URI decoding, so macro data can never
		// trivially invoke internal:* (see design note on Command scope).
		return runDetached(action.Raw)

	case model.MacroActionOpenURL:
		return runDetached(fmt.Sprintf("xdg-open %q", action.URL))

	case model.MacroActionTypeText:
		return runDetached(fmt.Sprintf("xdotool type %q", action.Text))

	case model.MacroActionSleep:
		in.Sleep(time.Duration(action.Millis) * time.Millisecond)
		return nil

	case model.MacroActionSystem:
		return in.System.Execute(action.SysAction)

	default:
		return fmt.Errorf("macro %s: unknown action kind %q", macroName, action.Kind)
	}
}

// performLaunchApp resolves appName through an App-mode search and
// re-enters the Executor with the top result's exec, unless that exec is
// the macro's own internal:macro: URI (the shallow cycle guard).
func (in *Interpreter) performLaunchApp(selfURI, appName string) error {
	results := in.Apps.Search(appName)
	if len(results) == 0 {
		return fmt.Errorf("launch_app: no application matched %q", appName)
	}
	resolved := results[0].Exec
	if resolved == selfURI {
		return nil
	}
	return in.Execute(resolved)
}

// runDetached spawns raw as a fire-and-forget shell command, matching the
// Command Executor's shell dispatch policy.
func runDetached(raw string) error {
	return exec.Command("sh", "-c", raw).Start()
}
