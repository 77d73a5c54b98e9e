package core

import "strings"

// Option is one normalized, user-facing core setting: its key, display
// strings, the list of selectable values/labels, and which index is
// currently selected vs. the core's declared default.
type Option struct {
	Key, DisplayName      string
	ShortDesc, LongDesc   string
	Values, Labels        []string
	CurrentIndex          int
	DefaultIndex          int
	Hidden                bool
}

// LegacyVariable is the flat "variables" schema: `key: "desc; opt1|opt2|opt3"`.
type LegacyVariable struct {
	Key   string
	Value string // "desc; opt1|opt2|opt3"
}

// OptionDefinition is the modern "option definitions" schema: explicit
// key/desc/info/values with a default.
type OptionDefinition struct {
	Key, Desc, Info string
	Values          []OptionValue
	Default         string
}

// OptionValue is one value+label pair in a modern OptionDefinition.
type OptionValue struct {
	Value, Label string
}

// OptionList holds every normalized Option plus the `changed` flag the
// emulator polls via GET_VARIABLE_UPDATE.
type OptionList struct {
	options []*Option
	byKey   map[string]*Option
	Changed bool
}

// NewOptionList returns an empty list ready for LoadLegacy/LoadDefinitions.
func NewOptionList() *OptionList {
	return &OptionList{byKey: make(map[string]*Option)}
}

// Get returns the option for key, or nil.
func (l *OptionList) Get(key string) *Option {
	return l.byKey[key]
}

// All returns every option in declaration order, for menu rendering.
func (l *OptionList) All() []*Option {
	return l.options
}

func (l *OptionList) add(o *Option) {
	if existing, ok := l.byKey[o.Key]; ok {
		*existing = *o
		return
	}
	l.options = append(l.options, o)
	l.byKey[o.Key] = o
}

// LoadLegacy normalizes the flat `key: "desc; opt1|opt2|opt3"` schema into
// Options whose Labels equal their Values.
func (l *OptionList) LoadLegacy(vars []LegacyVariable) {
	for _, v := range vars {
		desc, choices, ok := strings.Cut(v.Value, ";")
		if !ok {
			desc, choices = v.Value, ""
		}
		var values []string
		for _, c := range strings.Split(choices, "|") {
			c = strings.TrimSpace(c)
			if c != "" {
				values = append(values, c)
			}
		}
		l.add(&Option{
			Key:          v.Key,
			DisplayName:  strings.TrimSpace(desc),
			ShortDesc:    strings.TrimSpace(desc),
			Values:       values,
			Labels:       append([]string(nil), values...),
			CurrentIndex: 0,
			DefaultIndex: 0,
		})
	}
}

// LoadDefinitions normalizes the modern option-definition schema, matching
// the default value string to its index.
func (l *OptionList) LoadDefinitions(defs []OptionDefinition) {
	for _, d := range defs {
		var values, labels []string
		defaultIndex := 0
		for i, v := range d.Values {
			values = append(values, v.Value)
			labels = append(labels, v.Label)
			if v.Value == d.Default {
				defaultIndex = i
			}
		}
		l.add(&Option{
			Key:          d.Key,
			DisplayName:  d.Desc,
			ShortDesc:    d.Desc,
			LongDesc:     d.Info,
			Values:       values,
			Labels:       labels,
			CurrentIndex: defaultIndex,
			DefaultIndex: defaultIndex,
		})
	}
}

// Set changes an option's current value by string; CurrentIndex only ever
// takes the index of a matching value, so it stays within
// [0, len(values)). Returns false, leaving the option unchanged, if the
// key or value is unknown.
func (l *OptionList) Set(key, value string) bool {
	opt := l.byKey[key]
	if opt == nil {
		return false
	}
	for i, v := range opt.Values {
		if v == value {
			opt.CurrentIndex = i
			return true
		}
	}
	return false
}

// CycleValue moves an option's current index by delta, wrapping at the
// ends -- used by MENU_VAR's left/right value cycling.
func (l *OptionList) CycleValue(key string, delta int) {
	opt := l.byKey[key]
	if opt == nil || len(opt.Values) == 0 {
		return
	}
	n := len(opt.Values)
	opt.CurrentIndex = ((opt.CurrentIndex+delta)%n + n) % n
	l.Changed = true
}
