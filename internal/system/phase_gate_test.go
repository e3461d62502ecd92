package system

import "testing"

func TestPhaseGate_RejectsEarly(t *testing.T) {
	g := &PhaseGate{MinBuildDuration: 10}
	if g.CanStartDefense(9.99) {
		t.Fatal("gate opened before the minimum duration")
	}
}

func TestPhaseGate_OpensAtMinimum(t *testing.T) {
	g := &PhaseGate{MinBuildDuration: 10}
	if !g.CanStartDefense(10) {
		t.Fatal("gate closed at exactly the minimum duration")
	}
	if !g.CanStartDefense(25) {
		t.Fatal("gate closed after the minimum duration")
	}
}
