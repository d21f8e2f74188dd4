package state

import (
	"github.com/dreamtides/dreamtides-server-go/internal/battle/abilities"
	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
)

// TriggerListeners maps each trigger name to the cards currently listening
// for it. Registration order is preserved per trigger: listeners added when
// a card enters its zone fire before listeners added later, and listener
// lists are rebuilt on every zone transition.
type TriggerListeners struct {
	ByName map[abilities.TriggerName][]CardID
}

// NewTriggerListeners returns an empty registry.
func NewTriggerListeners() *TriggerListeners {
	return &TriggerListeners{ByName: make(map[abilities.TriggerName][]CardID)}
}

// Add appends the card to the listener list for each trigger name.
func (t *TriggerListeners) Add(card CardID, names []abilities.TriggerName) {
	for _, name := range names {
		t.ByName[name] = append(t.ByName[name], card)
	}
}

// Remove deletes the card from the listener list for each trigger name,
// keeping the order of remaining listeners.
func (t *TriggerListeners) Remove(card CardID, names []abilities.TriggerName) {
	for _, name := range names {
		listeners := t.ByName[name]
		for i, id := range listeners {
			if id == card {
				t.ByName[name] = append(listeners[:i:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Listening returns the cards listening for the trigger, in registration
// order. The returned slice is shared; callers must copy before mutating
// state that could re-register listeners.
func (t *TriggerListeners) Listening(name abilities.TriggerName) []CardID {
	return t.ByName[name]
}

// Clone returns a deep copy.
func (t *TriggerListeners) Clone() *TriggerListeners {
	cp := NewTriggerListeners()
	for name, listeners := range t.ByName {
		cp.ByName[name] = append([]CardID(nil), listeners...)
	}
	return cp
}

// PendingTrigger is one fired trigger awaiting resolution. Triggers queue in
// listener registration order and resolve FIFO.
type PendingTrigger struct {
	Name abilities.TriggerName
	// Listener is the card whose ability fired.
	Listener CardID
	// ListenerObject is the listener's ObjectID at fire time; resolution is
	// skipped if the listener has since changed zone.
	ListenerObject core.ObjectID
	// That is the card that caused the event, if any.
	That *CardID
	// Controller is the listener's controller at fire time.
	Controller core.PlayerName
}

// TriggerState holds the listener registry and the queue of fired triggers.
type TriggerState struct {
	Listeners *TriggerListeners
	Pending   []PendingTrigger
}

// NewTriggerState returns an empty trigger state.
func NewTriggerState() *TriggerState {
	return &TriggerState{Listeners: NewTriggerListeners()}
}

// Clone returns a deep copy.
func (t *TriggerState) Clone() *TriggerState {
	cp := &TriggerState{Listeners: t.Listeners.Clone()}
	if t.Pending != nil {
		cp.Pending = make([]PendingTrigger, len(t.Pending))
		for i, p := range t.Pending {
			cp.Pending[i] = p
			if p.That != nil {
				that := *p.That
				cp.Pending[i].That = &that
			}
		}
	}
	return cp
}
