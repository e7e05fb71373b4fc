package launcher

import "testing"

func TestMachineTransitions(t *testing.T) {
	var seen []State
	m := &Machine{Observer: func(_, to State) { seen = append(seen, to) }}

	if m.State() != StateIdle {
		t.Fatalf("expected idle start, got %s", m.State())
	}
	if err := m.Transition(StateForeground); err == nil {
		t.Fatal("expected idle -> foreground to be rejected")
	}
	for _, next := range []State{StateReadyToLaunch, StateBackgrounded, StateTerminal} {
		if err := m.Transition(next); err != nil {
			t.Fatalf("transition to %s: %v", next, err)
		}
	}
	if err := m.Transition(StateReadyToLaunch); err == nil {
		t.Fatal("expected terminal to be final")
	}
	if len(seen) != 3 || seen[2] != StateTerminal {
		t.Fatalf("unexpected observed transitions %v", seen)
	}
}
