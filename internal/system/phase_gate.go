// internal/system/phase_gate.go
package system

// PhaseGate enforces the minimum building-phase duration. Rejection is a
// player-facing signal, never an error: the request simply retries on a
// later tick.
type PhaseGate struct {
	MinBuildDuration float64
}

// CanStartDefense reports whether enough building time has elapsed.
func (g *PhaseGate) CanStartDefense(elapsed float64) bool {
	return elapsed >= g.MinBuildDuration
}
