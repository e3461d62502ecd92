// component/game_state.go
package component

// Phase is one of the two player-facing modes of a running game.
type Phase int

const (
	BuildPhase Phase = iota
	DefensePhase
)

func (p Phase) String() string {
	if p == DefensePhase {
		return "Defense"
	}
	return "Building"
}

// RunState is the coarse game lifecycle around the phase loop.
type RunState int

const (
	NotStarted RunState = iota
	Playing
	GameOver
)
