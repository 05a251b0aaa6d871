// Package dictionary implements the Dictionary port with a small built-in
// offline word list, standing in for the original webster-crate-backed
// lookup in original_source/dictionary_adapter.rs.
package dictionary

import "strings"

// Dictionary looks up a term in a built-in offline word list.
type Dictionary struct {
	entries map[string]string
}

// New builds a Dictionary over the built-in entries.
func New() *Dictionary {
	return &Dictionary{entries: builtinEntries}
}

// Lookup returns the definition for term (case-insensitive), found=false
// if the term is not in the built-in list.
func (d *Dictionary) Lookup(term string) (string, bool) {
	def, ok := d.entries[strings.ToLower(strings.TrimSpace(term))]
	return def, ok
}

var builtinEntries = map[string]string{
	"rust":      "A multi-paradigm, memory-safe systems programming language.",
	"go":        "A statically typed, compiled language designed at Google for simplicity and concurrency.",
	"omnibar":   "A single input surface that dispatches to many search strategies.",
	"fuzzy":     "Allowing for approximate, rather than exact, matching.",
	"macro":     "A named, ordered sequence of recorded actions replayed on demand.",
	"launcher":  "An application that finds and starts other programs.",
	"daemon":    "A background process that performs tasks without direct user interaction.",
	"desktop":   "The primary user interface of a graphical operating system.",
	"shortcut":  "A key combination bound to a command.",
	"process":   "An instance of a running program.",
}
