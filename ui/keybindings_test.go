package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyBindingManagerRunes(t *testing.T) {
	km := NewKeyBindingManager()

	handledSpace := false
	km.RegisterKeyBinding(
		KeyAction{name: "toggle", handler: func() { handledSpace = true }},
		[]tcell.Key{},
		[]rune{' '},
	)

	event := tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	if !km.HandleKey(event) {
		t.Errorf("expected space key to be handled")
	}
	if !handledSpace {
		t.Errorf("expected handler to be called")
	}

	unbound := tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)
	if km.HandleKey(unbound) {
		t.Errorf("unbound rune must not be consumed")
	}
}

func TestKeyBindingManagerSpecialKeys(t *testing.T) {
	km := NewKeyBindingManager()
	escaped := false
	km.RegisterKeyBinding(
		KeyAction{name: "back", handler: func() { escaped = true }},
		[]tcell.Key{tcell.KeyEscape},
		nil,
	)
	if !km.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) || !escaped {
		t.Errorf("escape binding not dispatched")
	}
}

func TestKeyBindingManagerSequences(t *testing.T) {
	km := NewKeyBindingManager()

	goStartCalled := false
	km.RegisterSequence("gg", KeyAction{name: "goStart", handler: func() { goStartCalled = true }})

	first := tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone)
	if !km.HandleKey(first) {
		t.Errorf("expected first 'g' to be consumed while pending")
	}
	if goStartCalled {
		t.Errorf("handler must not fire before the sequence completes")
	}

	second := tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone)
	if !km.HandleKey(second) {
		t.Errorf("expected 'gg' sequence to be handled")
	}
	if !goStartCalled {
		t.Errorf("expected handler to be called for 'gg'")
	}
}

func TestSequenceFallsBackToStandaloneRune(t *testing.T) {
	km := NewKeyBindingManager()
	km.RegisterSequence("gg", KeyAction{name: "goStart", handler: func() {}})

	nextCalled := false
	km.RegisterKeyBinding(
		KeyAction{name: "next", handler: func() { nextCalled = true }},
		nil,
		[]rune{'n'},
	)

	km.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone))
	if !km.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)) {
		t.Errorf("broken sequence must fall back to standalone binding")
	}
	if !nextCalled {
		t.Errorf("standalone handler not called after broken sequence")
	}
}

func TestSpecialKeyResetsPendingSequence(t *testing.T) {
	km := NewKeyBindingManager()
	called := false
	km.RegisterSequence("gg", KeyAction{name: "goStart", handler: func() { called = true }})

	km.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone))
	km.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	km.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone))
	if called {
		t.Errorf("sequence must reset after a special key interrupts it")
	}
}
