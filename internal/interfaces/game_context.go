// internal/interfaces/game_context.go
package interfaces

import (
	"go-bastion-defense/internal/types"
	"go-bastion-defense/pkg/geom"
)

// UnitSpawner instantiates hostile units in the world. Implemented by the
// combat side of the game; the round lifecycle only sees this boundary.
type UnitSpawner interface {
	SpawnUnit(defID string, pos, target geom.Vec2) (types.EntityID, error)
}

// Economy receives round-completion rewards.
type Economy interface {
	GrantRoundCompletionReward(round int)
}

// StructureLocator picks movement targets for freshly spawned units.
type StructureLocator interface {
	NearestStructure(pos geom.Vec2) (types.EntityID, geom.Vec2, bool)
}
