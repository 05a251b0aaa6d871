package parser

import "testing"

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	got := Parse("")
	if got.Mode != ModeEmpty {
		t.Fatalf("Parse(\"\") mode = %v, want Empty", got.Mode)
	}
}

func TestParsePrefixModes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query    string
		wantMode Mode
		wantRem  string
	}{
		{"w term", ModeWindows, "term"},
		{"x echo hello", ModeTerminal, "echo hello"},
		{"f /etc", ModeFiles, "/etc"},
		{"ss term", ModeShortcut, "term"},
		{"c 1+1", ModeCalculator, "1+1"},
		{"d rust", ModeDictionary, "rust"},
		{"m test", ModeMacro, "test"},
		{"! reboot", ModeSystem, "reboot"},
		{"l quit", ModeLauncher, "quit"},
	}
	for _, tt := range tests {
		got := Parse(tt.query)
		if got.Mode != tt.wantMode || got.Remainder != tt.wantRem {
			t.Errorf("Parse(%q) = (%v, %q), want (%v, %q)", tt.query, got.Mode, got.Remainder, tt.wantMode, tt.wantRem)
		}
	}
}

func TestParseBarePrefixLetterFallsThroughToApps(t *testing.T) {
	t.Parallel()

	got := Parse("c")
	if got.Mode != ModeApps || got.Remainder != "c" {
		t.Fatalf("Parse(\"c\") = (%v, %q), want (Apps, \"c\")", got.Mode, got.Remainder)
	}
}

func TestParseAnythingElseIsApps(t *testing.T) {
	t.Parallel()

	got := Parse("firefox")
	if got.Mode != ModeApps || got.Remainder != "firefox" {
		t.Fatalf("Parse(\"firefox\") = (%v, %q), want (Apps, \"firefox\")", got.Mode, got.Remainder)
	}
}
