package status

import (
	"fmt"
	"slices"
	"sync"

	"github.com/matheus3301/wave/internal/bus"
)

// State represents the login state of a profile daemon.
type State string

const (
	Booting         State = "BOOTING"
	Unauthenticated State = "UNAUTHENTICATED"
	Authenticated   State = "AUTHENTICATED"
)

// validTransitions defines allowed state transitions. Authenticated is terminal
// for the lifetime of the process.
var validTransitions = map[State][]State{
	Booting:         {Unauthenticated, Authenticated},
	Unauthenticated: {Authenticated},
}

// Machine tracks and enforces login state transitions.
type Machine struct {
	mu      sync.RWMutex
	current State
	bus     *bus.Bus
}

// NewMachine creates a new state machine starting in Booting state.
func NewMachine(b *bus.Bus) *Machine {
	return &Machine{
		current: Booting,
		bus:     b,
	}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Transition attempts to move to a new state. Returns error if transition is invalid.
func (m *Machine) Transition(to State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !slices.Contains(validTransitions[m.current], to) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, to)
	}
	from := m.current
	m.current = to
	m.bus.Publish(bus.NewEvent(bus.KindStatusChanged, StatusChange{From: from, To: to}))
	return nil
}

// StatusChange is the payload for status change events.
type StatusChange struct {
	From State
	To   State
}
