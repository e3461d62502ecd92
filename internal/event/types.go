// internal/event/types.go
package event

import "go-bastion-defense/internal/types"

const (
	PhaseChanged           EventType = "PhaseChanged"           // Data: PhaseChangedData
	RoundStarted           EventType = "RoundStarted"           // Data: int (round number)
	RoundCompleted         EventType = "RoundCompleted"         // Data: int (round number)
	DefenseRequestRejected EventType = "DefenseRequestRejected" // Data: string (reason)
	UnitResolved           EventType = "UnitResolved"           // Data: UnitResolvedData
	StructureDestroyed     EventType = "StructureDestroyed"     // Data: types.EntityID
	AllStructuresDestroyed EventType = "AllStructuresDestroyed"
	GameEnded              EventType = "GameEnded"
	TowerPlaced            EventType = "TowerPlaced" // Data: types.EntityID
	TowerRemoved           EventType = "TowerRemoved"
)

// Resolution says how a unit left the field.
type Resolution int

const (
	ResolutionArrived Resolution = iota
	ResolutionKilled
)

// UnitResolvedData is the payload of a UnitResolved event.
type UnitResolvedData struct {
	Handle     types.EntityID
	DefID      string
	Resolution Resolution
	Reward     int // kill reward; zero when the unit arrived
}

// PhaseChangedData is the payload of a PhaseChanged event.
type PhaseChangedData struct {
	Phase int // component.Phase; kept as int to avoid an import cycle
}
