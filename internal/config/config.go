// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	// Threat budget curve: budget = initial + factor*round²/2.
	InitialThreatBudget   = 50
	ThreatIncrementFactor = 20

	// Population cap: max(floor, round(base*round/20)).
	PopulationCapBase  = 40
	PopulationCapFloor = 8

	// Boss waves: every BossRoundInterval-th round once the boss is unlocked.
	BossRoundInterval = 5
	BossUnlockRound   = 7

	// One extra spawn point every SpawnPointRoundStep rounds.
	SpawnPointRoundStep  = 5
	SpawnCircleRadius    = 330.0
	DefaultScatterRadius = 22.0

	// The building phase cannot be ended before this many seconds.
	MinBuildPhaseDuration = 10.0
	// Delay between the last unit resolving and the next building phase.
	RoundRestDelay = 4.0

	RoundRewardBase     = 25
	RoundRewardPerRound = 5
	StartingCredits     = 120

	StructureHealth   = 200
	UnitContactDamage = 10

	ClickCooldown    = 300
	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	StartButtonWidth  = 150
	StartButtonHeight = 36
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	BuildStateColor  = color.RGBA{70, 130, 180, 220}
	WaveStateColor   = color.RGBA{220, 60, 60, 220}
	GameOverColor    = color.RGBA{160, 40, 40, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	StructureColor   = color.RGBA{50, 205, 50, 255}
	SpawnMarkerColor = color.RGBA{194, 178, 128, 200}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	RangeRingColor   = color.RGBA{255, 255, 255, 40}
)
