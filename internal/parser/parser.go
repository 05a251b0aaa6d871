// Package parser classifies a raw omnibar query string into a dispatch
// mode and the remainder to hand to that mode's search strategy.
package parser

import "strings"

// Mode is the dispatch variant selected by Parse.
type Mode int

const (
	ModeEmpty Mode = iota
	ModeWindows
	ModeTerminal
	ModeFiles
	ModeShortcut
	ModeCalculator
	ModeDictionary
	ModeMacro
	ModeSystem
	ModeLauncher
	ModeApps
)

// String names a Mode for logging and debug output.
func (m Mode) String() string {
	switch m {
	case ModeEmpty:
		return "Empty"
	case ModeWindows:
		return "Windows"
	case ModeTerminal:
		return "Terminal"
	case ModeFiles:
		return "Files"
	case ModeShortcut:
		return "Shortcut"
	case ModeCalculator:
		return "Calculator"
	case ModeDictionary:
		return "Dictionary"
	case ModeMacro:
		return "Macro"
	case ModeSystem:
		return "System"
	case ModeLauncher:
		return "Launcher"
	default:
		return "Apps"
	}
}

// prefixRule is one row of the dispatch table: a literal "prefix + space"
// trigger mapped to the mode it selects.
type prefixRule struct {
	prefix string
	mode   Mode
}

// rules is ordered longest-prefix-first so no shorter trigger can shadow a
// longer one sharing the same leading character (e.g. "ss " before "s ",
// though no such collision currently exists in this table; order is kept
// deterministic regardless).
var rules = []prefixRule{
	{"ss ", ModeShortcut},
	{"w ", ModeWindows},
	{"x ", ModeTerminal},
	{"f ", ModeFiles},
	{"c ", ModeCalculator},
	{"d ", ModeDictionary},
	{"m ", ModeMacro},
	{"! ", ModeSystem},
	{"l ", ModeLauncher},
}

// Result is the outcome of Parse: the selected mode and the remainder of
// the query with the triggering prefix stripped.
type Result struct {
	Mode      Mode
	Remainder string
}

// Parse classifies query into a dispatch mode. Prefix matching is literal
// "prefix + space": "c" alone does not enter Calculator mode, "c 1+1"
// does. A query matching no prefix and not empty falls through to Apps
// mode, fuzzy-matched against the application cache.
func Parse(query string) Result {
	if query == "" {
		return Result{Mode: ModeEmpty}
	}
	for _, r := range rules {
		if strings.HasPrefix(query, r.prefix) {
			return Result{Mode: r.mode, Remainder: query[len(r.prefix):]}
		}
	}
	return Result{Mode: ModeApps, Remainder: query}
}
