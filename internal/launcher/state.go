package launcher

import "fmt"

// State is a step in the lifecycle of one launcher invocation.
type State string

const (
	StateIdle          State = "idle"
	StateReadyToLaunch State = "ready_to_launch"
	StateForeground    State = "foreground"
	StateBackgrounded  State = "backgrounded"
	StateTerminal      State = "terminal"
)

var transitions = map[State][]State{
	StateIdle:          {StateReadyToLaunch, StateTerminal},
	StateReadyToLaunch: {StateForeground, StateBackgrounded, StateTerminal},
	StateForeground:    {StateTerminal},
	StateBackgrounded:  {StateTerminal},
}

// Machine enforces the legal order of launch states. The zero value starts in
// StateIdle.
type Machine struct {
	// Observer, when set, sees every accepted transition.
	Observer func(from, to State)

	current State
}

// State returns the current state.
func (m *Machine) State() State {
	if m.current == "" {
		return StateIdle
	}
	return m.current
}

// Transition moves to next or reports why it cannot.
func (m *Machine) Transition(next State) error {
	from := m.State()
	for _, allowed := range transitions[from] {
		if allowed == next {
			m.current = next
			if m.Observer != nil {
				m.Observer(from, next)
			}
			return nil
		}
	}
	return fmt.Errorf("invalid launch state transition %s -> %s", from, next)
}
