// Package config implements the three-tier layered configuration system:
// system / pak-default / user, merged with later layers winning unless a
// lower layer locks a key with a leading '-'. Grounded in the teacher's
// standalone/storage/config.go exists-check -> defaults -> parse -> merge
// pipeline, with JSON traded for a line-based `key = value` format -- no
// ini/toml/yaml library appears anywhere in the retrieved corpus for this
// exact shape (flat key/value plus a lock-prefix convention), so the
// parser stays on the standard library's bufio.Scanner rather than
// adopting an unrelated format library.
package config

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/user-none/minarch/internal/logging"
)

// Entry is one parsed `key = value` line, plus whether a lower layer
// locked it (leading '-' on the key).
type Entry struct {
	Value  string
	Locked bool
}

// Set is one configuration layer: an ordered bag of key/value entries.
// Both plain options (`volume = 80`) and button bindings
// (`bind A = SOUTH`, `bind A = MENU+SOUTH`) live in the same
// namespace -- a binding is simply a key beginning with "bind ".
type Set struct {
	keys   []string
	values map[string]Entry
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{values: make(map[string]Entry)}
}

// Get returns a key's value and whether it was present.
func (s *Set) Get(key string) (string, bool) {
	e, ok := s.values[key]
	return e.Value, ok
}

// IsLocked reports whether key was locked by a lower layer.
func (s *Set) IsLocked(key string) bool {
	return s.values[key].Locked
}

// Set assigns a key's value, unlocked. Used by the menu/options UI when
// the user changes a value at the user layer.
func (s *Set) Set(key, value string) {
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = Entry{Value: value}
}

// Keys returns every key in declaration order.
func (s *Set) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Bindings returns every `bind <display_name>` entry with the "bind "
// prefix stripped from the display name.
func (s *Set) Bindings() map[string]string {
	out := make(map[string]string)
	for _, k := range s.keys {
		name, ok := strings.CutPrefix(k, "bind ")
		if !ok {
			continue
		}
		out[name] = s.values[k].Value
	}
	return out
}

// SetBinding records `bind <displayName> = label` (a keyboard binding),
// e.g. label "SOUTH" or "MENU+SOUTH".
func (s *Set) SetBinding(displayName, label string) {
	s.Set("bind "+displayName, label)
}

// GamepadBindings returns every `pad <display_name>` entry, the
// controller counterpart to Bindings -- a desktop target needs keyboard
// and controller bindings to coexist under distinct labels since the two
// namespaces (key names vs. gamepad button names) don't overlap.
func (s *Set) GamepadBindings() map[string]string {
	out := make(map[string]string)
	for _, k := range s.keys {
		name, ok := strings.CutPrefix(k, "pad ")
		if !ok {
			continue
		}
		out[name] = s.values[k].Value
	}
	return out
}

// SetGamepadBinding records `pad <displayName> = label`.
func (s *Set) SetGamepadBinding(displayName, label string) {
	s.Set("pad "+displayName, label)
}

// Parse reads the line-based `key = value` format. Blank lines and lines
// starting with '#' are ignored. A key with a leading '-' is recorded
// locked with the '-' stripped. A malformed line (missing '=' or an empty
// key) is skipped rather than aborting the whole file: a hand-edited
// config line the user got wrong shouldn't keep the frontend from
// starting with everything else it has, so the line is logged and
// dropped and parsing continues.
func Parse(r io.Reader) (*Set, error) {
	s := NewSet()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			logging.Warnf("config: line %d: missing '=', skipping", lineNo)
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		locked := false
		if after, ok := strings.CutPrefix(key, "-"); ok {
			locked = true
			key = after
		}
		if key == "" {
			logging.Warnf("config: line %d: empty key, skipping", lineNo)
			continue
		}
		if _, exists := s.values[key]; !exists {
			s.keys = append(s.keys, key)
		}
		s.values[key] = Entry{Value: value, Locked: locked}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

// Write serializes s back into the `key = value` format, sorted by key
// for deterministic output (user-edited layers don't need to preserve
// original ordering across a save-changes round trip).
func (s *Set) Write(w io.Writer) error {
	keys := append([]string(nil), s.keys...)
	sort.Strings(keys)
	bw := bufio.NewWriter(w)
	for _, k := range keys {
		e := s.values[k]
		prefix := ""
		if e.Locked {
			prefix = "-"
		}
		if _, err := fmt.Fprintf(bw, "%s%s = %s\n", prefix, k, e.Value); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Merge layers higher on top of s, in place, honoring lock semantics: a
// key locked in s (a lower layer) is not overwritten by higher. Returns
// s for chaining across the three layers.
func (s *Set) Merge(higher *Set) *Set {
	for _, k := range higher.keys {
		if existing, ok := s.values[k]; ok && existing.Locked {
			continue
		}
		if _, exists := s.values[k]; !exists {
			s.keys = append(s.keys, k)
		}
		s.values[k] = higher.values[k]
	}
	return s
}
