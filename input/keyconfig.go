package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Command is a front-end action outside the simulation
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit
	CommandToggleDebug
)

// Binding is what one key does: press simulation buttons and/or run a command
type Binding struct {
	Buttons Buttons
	Command Command
}

// actionRegistry maps configuration action names to bindings
var actionRegistry = map[string]Binding{
	"left":         {Buttons: ButtonLeft},
	"right":        {Buttons: ButtonRight},
	"jump":         {Buttons: ButtonJump},
	"swing":        {Buttons: ButtonSwing},
	"start":        {Buttons: ButtonStart},
	"quit":         {Command: CommandQuit},
	"toggle_debug": {Command: CommandToggleDebug},
}

// Rune aliases for keys that can't be written as a single character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeys maps configuration key names to tcell keys
var specialKeys = map[string]tcell.Key{
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"ctrl-c": tcell.KeyCtrlC,
	"f1":     tcell.KeyF1,
	"f2":     tcell.KeyF2,
}

// KeyMap resolves terminal key events to bindings
type KeyMap struct {
	keys  map[tcell.Key]Binding
	runes map[rune]Binding
}

// DefaultBindings is the built-in action → key names table
func DefaultBindings() map[string][]string {
	return map[string][]string{
		"left":         {"Left", "h", "a"},
		"right":        {"Right", "l", "d"},
		"jump":         {"Up", "k", "w"},
		"swing":        {"b", "space", "j"},
		"start":        {"Enter"},
		"quit":         {"Esc", "q", "Ctrl-C"},
		"toggle_debug": {"F2"},
	}
}

// DefaultKeyMap builds the key map from DefaultBindings
func DefaultKeyMap() *KeyMap {
	km, err := ParseKeyMap(DefaultBindings())
	if err != nil {
		panic(fmt.Sprintf("fault: default key bindings invalid: %v", err))
	}
	return km
}

// ParseKeyMap builds a key map from action → key names
// Returns error on unknown action names or key names
func ParseKeyMap(bindings map[string][]string) (*KeyMap, error) {
	km := &KeyMap{
		keys:  make(map[tcell.Key]Binding),
		runes: make(map[rune]Binding),
	}

	for actionName, keyNames := range bindings {
		b, err := resolveAction(actionName)
		if err != nil {
			return nil, err
		}
		for _, keyStr := range keyNames {
			if k, ok := specialKeys[strings.ToLower(keyStr)]; ok {
				km.keys[k] = merge(km.keys[k], b)
				continue
			}
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[%s] key %q: %w", actionName, keyStr, err)
			}
			km.runes[r] = merge(km.runes[r], b)
		}
	}

	return km, nil
}

// Lookup resolves a key and rune pair; r is only consulted for tcell.KeyRune
func (km *KeyMap) Lookup(key tcell.Key, r rune) (Binding, bool) {
	if key == tcell.KeyRune {
		b, ok := km.runes[r]
		return b, ok
	}
	b, ok := km.keys[key]
	return b, ok
}

// Resolve maps a tcell key event to its binding
func (km *KeyMap) Resolve(ev *tcell.EventKey) (Binding, bool) {
	return km.Lookup(ev.Key(), ev.Rune())
}

func merge(a, b Binding) Binding {
	a.Buttons |= b.Buttons
	if b.Command != CommandNone {
		a.Command = b.Command
	}
	return a
}

// resolveRune converts a key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character, alias or key name)", s)
}

// resolveAction converts an action name to a binding
func resolveAction(name string) (Binding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	b, ok := actionRegistry[name]
	if !ok {
		return Binding{}, fmt.Errorf("unknown action: %q", name)
	}
	return b, nil
}
