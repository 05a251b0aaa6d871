package dictionary

import "testing"

func TestLookupFound(t *testing.T) {
	t.Parallel()

	d := New()
	def, ok := d.Lookup("rust")
	if !ok {
		t.Fatal("expected rust to be found")
	}
	if def == "" {
		t.Fatal("expected non-empty definition")
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	t.Parallel()

	d := New()
	_, ok := d.Lookup("RUST")
	if !ok {
		t.Fatal("expected case-insensitive lookup to find rust")
	}
}

func TestLookupNotFound(t *testing.T) {
	t.Parallel()

	d := New()
	_, ok := d.Lookup("zzznotaword")
	if ok {
		t.Fatal("expected not-found term to return ok=false")
	}
}
