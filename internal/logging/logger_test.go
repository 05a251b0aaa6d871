package logging

import "testing"

func TestConfigureAndGet(t *testing.T) {
	if err := Configure(false); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if DebugEnabled() {
		t.Fatal("expected DebugEnabled to be false")
	}

	l := Get(CategoryCache)
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	l.Infow("cache refreshed", "count", 3)
}

func TestConfigureVerbose(t *testing.T) {
	if err := Configure(true); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if !DebugEnabled() {
		t.Fatal("expected DebugEnabled to be true")
	}
}
