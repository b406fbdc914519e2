package ui

import (
	"github.com/gdamore/tcell/v2"
)

// KeyAction represents an action that can be triggered by keybindings
type KeyAction struct {
	name    string
	handler func()
}

// KeyBindingManager maps keys and two-rune sequences to actions and
// dispatches tcell events.
type KeyBindingManager struct {
	bindings  map[tcell.Key]KeyAction // special key -> action
	runeMap   map[rune]KeyAction      // single rune -> action
	sequences map[string]KeyAction    // two-rune sequence like "gg" -> action
	pending   rune                    // first rune of a possible sequence, 0 when idle
}

// NewKeyBindingManager creates an empty key binding manager
func NewKeyBindingManager() *KeyBindingManager {
	return &KeyBindingManager{
		bindings:  make(map[tcell.Key]KeyAction),
		runeMap:   make(map[rune]KeyAction),
		sequences: make(map[string]KeyAction),
	}
}

// RegisterKeyBinding binds an action to any number of special keys and runes
func (km *KeyBindingManager) RegisterKeyBinding(action KeyAction, keys []tcell.Key, runes []rune) {
	for _, key := range keys {
		km.bindings[key] = action
	}
	for _, r := range runes {
		km.runeMap[r] = action
	}
}

// RegisterSequence binds an action to a two-rune sequence. The first rune of
// a registered sequence is consumed while the manager waits for the second.
func (km *KeyBindingManager) RegisterSequence(sequence string, action KeyAction) {
	km.sequences[sequence] = action
}

// HandleKey handles a keyboard event and returns true if it was consumed
func (km *KeyBindingManager) HandleKey(event *tcell.EventKey) bool {
	if event.Key() != tcell.KeyRune {
		km.pending = 0
		if action, ok := km.bindings[event.Key()]; ok {
			action.handler()
			return true
		}
		return false
	}

	r := event.Rune()

	if km.pending != 0 {
		seq := string([]rune{km.pending, r})
		km.pending = 0
		if action, ok := km.sequences[seq]; ok {
			action.handler()
			return true
		}
		// fall through: the second rune may be a standalone binding
	}

	if km.startsSequence(r) {
		km.pending = r
		return true
	}

	if action, ok := km.runeMap[r]; ok {
		action.handler()
		return true
	}
	return false
}

func (km *KeyBindingManager) startsSequence(r rune) bool {
	for seq := range km.sequences {
		if []rune(seq)[0] == r {
			return true
		}
	}
	return false
}
