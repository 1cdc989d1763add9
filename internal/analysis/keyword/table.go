package keyword

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultKey names the fallback entry every table must carry.
const DefaultKey = "default"

var (
	ErrMissingDefault = errors.New("keyword table has no default reply")
	ErrDuplicateKey   = errors.New("keyword table has a duplicate key")
)

// Entry pairs a normalized phrase with its canned reply.
type Entry struct {
	Key   string `toml:"key"`
	Reply string `toml:"reply"`
}

// Table is an ordered, read-only keyword-to-reply lookup.
//
// Match scans entries in declaration order and the first key contained in the
// message wins. Overlapping keys are therefore resolved by position: placing
// "مرحبا" before "ما هي الأسهم" means "مرحبا، ما هي الأسهم؟" gets the greeting.
// Keep that in mind when adding entries.
//
// Matching is not word-aware: a short key also matches inside longer words, so a
// bare "هلا" key would answer "سهلاً". Prefer keys that cannot occur inside other
// words.
type Table struct {
	entries []Entry
	def     string
}

// New builds a Table. Keys are normalized; blank keys or replies and duplicate keys
// are rejected, as is a missing default reply.
func New(entries []Entry, defaultReply string) (*Table, error) {
	def := strings.TrimSpace(defaultReply)
	if def == "" {
		return nil, ErrMissingDefault
	}

	seen := make(map[string]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for i, e := range entries {
		key := Normalize(e.Key)
		reply := strings.TrimSpace(e.Reply)
		if key == "" || reply == "" {
			return nil, fmt.Errorf("keyword entry %d: key and reply are required", i)
		}
		if key == DefaultKey {
			return nil, fmt.Errorf("keyword entry %d: %q is reserved", i, DefaultKey)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		seen[key] = struct{}{}
		out = append(out, Entry{Key: key, Reply: reply})
	}

	return &Table{entries: out, def: def}, nil
}

// Normalize lowercases and trims a message the same way keys are stored.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Match returns the reply of the first entry whose key occurs in message.
func (t *Table) Match(message string) (Entry, bool) {
	normalized := Normalize(message)
	if normalized == "" {
		return Entry{}, false
	}
	for _, e := range t.entries {
		if strings.Contains(normalized, e.Key) {
			return e, true
		}
	}
	return Entry{}, false
}

// Reply returns the matching reply or the default one. It never returns "".
func (t *Table) Reply(message string) string {
	if e, ok := t.Match(message); ok {
		return e.Reply
	}
	return t.def
}

// Default returns the fallback reply.
func (t *Table) Default() string {
	return t.def
}

// Entries returns a copy of the entries in declaration order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len reports the number of keyword entries, excluding the default.
func (t *Table) Len() int {
	return len(t.entries)
}
