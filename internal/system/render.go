// internal/system/render.go
package system

import (
	"go-bastion-defense/internal/config"
	"go-bastion-defense/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem draws entities and the staged spawn point ring.
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, spawnPoints []*SpawnPoint) {
	// Spawn markers first, so entities draw over them.
	for _, p := range spawnPoints {
		vector.StrokeCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.ScatterRadius), 2.0, config.SpawnMarkerColor, true)
	}

	// Tower range rings.
	for id, combat := range s.ecs.Combats {
		if pos, ok := s.ecs.Positions[id]; ok {
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(combat.Range), 1.0, config.RangeRingColor, true)
		}
	}

	for id, render := range s.ecs.Renderables {
		if pos, hasPos := s.ecs.Positions[id]; hasPos {
			if render.HasStroke {
				strokeRadius := render.Radius + 2
				vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), strokeRadius, config.TowerStrokeColor, true)
			}
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius, render.Color, true)
		}
	}
}
