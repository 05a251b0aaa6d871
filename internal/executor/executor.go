// Package executor implements the Command Executor: it interprets
// internal:<scheme>:<payload> action URIs and otherwise spawns external
// commands, fire-and-forget, grounded on the teacher's shell-execution
// tool but adapted to never wait, capture output, or propagate exit
// status, per the dispatch contract.
package executor

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/leechristophermurray/launch/internal/errs"
	"github.com/leechristophermurray/launch/internal/logging"
	"github.com/leechristophermurray/launch/internal/model"
	"github.com/leechristophermurray/launch/internal/ports"
)

// Signal is a typed result surfaced to the UI for the internal actions
// that have no engine-side effect.
type Signal int

const (
	SignalNone Signal = iota
	SignalQuit
	SignalAbout
	SignalSettings
)

// MacroRunner runs a macro by name. Satisfied by internal/macro.Interpreter;
// declared here (rather than imported) so executor and macro can each
// depend on the other's contract without an import cycle.
type MacroRunner interface {
	Run(name string) error
}

// Executor routes Item.Exec strings to their effect.
type Executor struct {
	Macros  MacroRunner
	System  ports.SystemPower
	Windows ports.WindowRepository

	// Shell selects the non-internal dispatch policy: true passes the
	// whole exec string to `sh -c` (the reference policy, required
	// because Terminal-mode results embed shell conditionals); false
	// exec's the first whitespace token directly with the remainder as
	// argv.
	Shell bool
}

// Execute routes exec by scheme. Failures from system/window/spawn
// dispatch are reported, never raised: the return error is purely
// informational for logging, matching the "core never aborts on
// recoverable errors" propagation policy.
func (e *Executor) Execute(execStr string) (Signal, error) {
	log := logging.Get(logging.CategoryExecutor)

	switch {
	case strings.HasPrefix(execStr, model.SchemeMacro):
		name := strings.TrimPrefix(execStr, model.SchemeMacro)
		if err := e.Macros.Run(name); err != nil {
			log.Warnw("macro run failed", "name", name, "error", err)
			return SignalNone, err
		}
		return SignalNone, nil

	case strings.HasPrefix(execStr, model.SchemeSystem):
		action := strings.TrimPrefix(execStr, model.SchemeSystem)
		if err := e.System.Execute(action); err != nil {
			log.Warnw("system action failed", "action", action, "error", err)
			return SignalNone, err
		}
		return SignalNone, nil

	case strings.HasPrefix(execStr, model.SchemeWindow):
		id := strings.TrimPrefix(execStr, model.SchemeWindow)
		if err := e.Windows.Focus(id); err != nil {
			log.Warnw("window focus failed", "id", id, "error", err)
			return SignalNone, err
		}
		return SignalNone, nil

	case execStr == model.URIQuit:
		return SignalQuit, nil
	case execStr == model.URIAbout:
		return SignalAbout, nil
	case execStr == model.URISettings:
		return SignalSettings, nil

	default:
		return SignalNone, e.spawn(execStr)
	}
}

// spawn launches execStr as a detached child process: it does not wait,
// capture output, or propagate the child's exit status.
func (e *Executor) spawn(execStr string) error {
	if strings.TrimSpace(execStr) == "" {
		return fmt.Errorf("%w: empty exec string", errs.ErrSpawnFailed)
	}

	var cmd *exec.Cmd
	if e.Shell || containsShellConstructs(execStr) {
		if runtime.GOOS == "windows" {
			cmd = exec.Command("cmd", "/C", execStr)
		} else {
			cmd = exec.Command("sh", "-c", execStr)
		}
	} else {
		fields := strings.Fields(execStr)
		cmd = exec.Command(fields[0], fields[1:]...)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrSpawnFailed, err)
	}
	return nil
}

// containsShellConstructs reports whether execStr embeds shell syntax
// (pipes, conditionals, quoting) that argv-split dispatch cannot express,
// per the argv-split-MUST-detect-and-fall-back-to-shell design note.
func containsShellConstructs(execStr string) bool {
	return strings.ContainsAny(execStr, "|&;<>$`\"'") || strings.Contains(execStr, "&&") || strings.Contains(execStr, "||")
}
