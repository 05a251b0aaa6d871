// Package sysaction implements SystemPower by shelling out to the
// concrete OS commands named in the original system_adapter/power_adapter:
// systemctl, loginctl, wpctl, and gsettings-scripted toggles.
package sysaction

import (
	"fmt"
	"os/exec"

	"github.com/leechristophermurray/launch/internal/errs"
)

// Dispatcher executes system power/session actions.
type Dispatcher struct{}

// New builds a system action dispatcher.
func New() *Dispatcher { return &Dispatcher{} }

const nightLightScript = `
schema='org.gnome.settings-daemon.plugins.color'
key='night-light-enabled'
current=$(gsettings get $schema $key)
if [ "$current" = "true" ]; then
    gsettings set $schema $key false
else
    gsettings set $schema $key true
fi
`

const darkModeScript = `
schema='org.gnome.desktop.interface'
key='color-scheme'
current=$(gsettings get $schema $key)
if [ "$current" = "'prefer-dark'" ]; then
    gsettings set $schema $key 'default'
else
    gsettings set $schema $key 'prefer-dark'
fi
`

// show-banners=false means DND is on (notifications hidden).
const dndScript = `
schema='org.gnome.desktop.notifications'
key='show-banners'
current=$(gsettings get $schema $key)
if [ "$current" = "true" ]; then
    gsettings set $schema $key false
else
    gsettings set $schema $key true
fi
`

// Execute dispatches one of the fixed system actions to the matching OS
// command, aliasing poweroff/shutdown and mute/mute_audio. It returns
// errs.ErrUnsupportedAction for anything outside the fixed vocabulary.
func (Dispatcher) Execute(action string) error {
	switch action {
	case "suspend":
		return run("systemctl", "suspend")
	case "reboot":
		return run("systemctl", "reboot")
	case "poweroff", "shutdown":
		return run("systemctl", "poweroff")
	case "hibernate":
		return run("systemctl", "hibernate")
	case "lock":
		return run("loginctl", "lock-session")
	case "mute", "mute_audio":
		return run("wpctl", "set-mute", "@DEFAULT_AUDIO_SINK@", "toggle")
	case "mute_mic":
		return run("wpctl", "set-mute", "@DEFAULT_AUDIO_SOURCE@", "toggle")
	case "mute_all":
		if err := run("wpctl", "set-mute", "@DEFAULT_AUDIO_SINK@", "toggle"); err != nil {
			return err
		}
		return run("wpctl", "set-mute", "@DEFAULT_AUDIO_SOURCE@", "toggle")
	case "toggle_night_light":
		return run("sh", "-c", nightLightScript)
	case "toggle_dark_mode":
		return run("sh", "-c", darkModeScript)
	case "toggle_dnd":
		return run("sh", "-c", dndScript)
	default:
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedAction, action)
	}
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %v", errs.ErrSpawnFailed, name, err)
	}
	return nil
}
