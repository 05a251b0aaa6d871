package windows

import "testing"

func TestParseIntrospectOutput(t *testing.T) {
	t.Parallel()

	raw := `([{'id': '0x2', 'title': 'Terminal', 'app_name': 'Gnome-terminal', 'workspace': '1', 'screen': '0'}])`
	windows, ok := parseIntrospectOutput(raw)
	if !ok {
		t.Fatal("expected ok=true for well-formed introspect output")
	}
	if len(windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(windows))
	}
	w := windows[0]
	if w.ID != "0x2" || w.Title != "Terminal" || w.AppName != "Gnome-terminal" || w.Workspace != 1 || w.Screen != 0 {
		t.Errorf("unexpected window: %+v", w)
	}
}

func TestParseIntrospectOutputMalformed(t *testing.T) {
	t.Parallel()

	_, ok := parseIntrospectOutput("not a dbus reply")
	if ok {
		t.Fatal("expected ok=false for malformed output")
	}
}

func TestWmctrlLineParsing(t *testing.T) {
	t.Parallel()

	line := "0x04e00003  1 gnome-terminal-server.Gnome-terminal  host Terminal - bash"
	windows := parseWmctrlLines(line)
	if len(windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(windows))
	}
	w := windows[0]
	if w.ID != "0x04e00003" || w.Workspace != 1 || w.AppName != "Gnome-terminal" || w.Title != "Terminal - bash" {
		t.Errorf("unexpected window: %+v", w)
	}
}
