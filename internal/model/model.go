// Package model holds the data types shared across the omnibar engine:
// the uniform Item result, the Application/Window/Shortcut/Macro source
// records, and the internal action URI scheme.
package model

import "fmt"

// Item is the uniform result presented to the UI and consumed by the
// Command Executor.
type Item struct {
	Name    string
	Exec    string
	Icon    string
	Running bool
}

// Application is an installed, user-launchable program discovered from a
// .desktop file. Identity is Name.
type Application struct {
	Name    string
	Exec    string // first whitespace-delimited token of the .desktop Exec= line
	Icon    string
	Running bool
}

// Window is an open window as reported by the desktop-bus or wmctrl
// source. Workspace/Screen are -1 when unknown.
type Window struct {
	ID        string
	Title     string
	AppName   string
	Workspace int
	Screen    int
}

// Shortcut maps a unique key to a shell command.
type Shortcut struct {
	Key     string
	Command string
}

// MacroActionKind tags the variant held by a MacroAction.
type MacroActionKind string

const (
	MacroActionLaunchApp MacroActionKind = "launch_app"
	MacroActionCommand   MacroActionKind = "command"
	MacroActionOpenURL   MacroActionKind = "open_url"
	MacroActionTypeText  MacroActionKind = "type_text"
	MacroActionSleep     MacroActionKind = "sleep"
	MacroActionSystem    MacroActionKind = "system"
)

// MacroAction is a tagged-variant step of a Macro. Exactly one of the
// payload fields is meaningful, selected by Kind.
type MacroAction struct {
	Kind MacroActionKind `json:"type"`

	AppName  string `json:"app_name,omitempty"`  // LaunchApp
	Raw      string `json:"raw,omitempty"`        // Command
	URL      string `json:"url,omitempty"`        // OpenUrl
	Text     string `json:"text,omitempty"`       // TypeText
	Millis   int64  `json:"millis,omitempty"`     // Sleep
	SysAction string `json:"sys_action,omitempty"` // System
}

// Macro is a named, ordered sequence of actions. Identity is Name.
type Macro struct {
	Name    string        `json:"name"`
	Actions []MacroAction `json:"actions"`
}

// Internal action URI schemes, per the wire contract between Omnibar
// results and the Command Executor.
const (
	SchemeMacro    = "internal:macro:"
	SchemeSystem   = "internal:system:"
	SchemeWindow   = "internal:window:"
	URIQuit        = "internal:quit"
	URIAbout       = "internal:about"
	URISettings    = "internal:settings"
)

// MacroURI builds the internal:macro:<name> URI for a macro name.
func MacroURI(name string) string {
	return SchemeMacro + name
}

// SystemURI builds the internal:system:<action> URI for a system action.
func SystemURI(action string) string {
	return SchemeSystem + action
}

// WindowURI builds the internal:window:<id> URI for a window id.
func WindowURI(id string) string {
	return fmt.Sprintf("%s%s", SchemeWindow, id)
}
