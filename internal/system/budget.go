// internal/system/budget.go
package system

import (
	"math"

	"go-bastion-defense/internal/config"
)

// BudgetConfig holds the tuning constants of the threat economy. The values
// normally come from internal/config but are injectable for tests.
type BudgetConfig struct {
	InitialBudget   int
	IncrementFactor int
	CapBase         int
	CapFloor        int
	BossInterval    int
	BossUnlockRound int
}

// DefaultBudgetConfig returns the production tuning.
func DefaultBudgetConfig() BudgetConfig {
	return BudgetConfig{
		InitialBudget:   config.InitialThreatBudget,
		IncrementFactor: config.ThreatIncrementFactor,
		CapBase:         config.PopulationCapBase,
		CapFloor:        config.PopulationCapFloor,
		BossInterval:    config.BossRoundInterval,
		BossUnlockRound: config.BossUnlockRound,
	}
}

// Budget returns the threat budget for a round. Quadratic growth keeps the
// difficulty curve accelerating without per-round tuning tables.
func (c BudgetConfig) Budget(round int) int {
	return c.InitialBudget + c.IncrementFactor*round*round/2
}

// PopulationCap returns the maximum number of hostile units the round may
// field regardless of remaining budget. The floor keeps early rounds from
// degenerating into one or two units.
func (c BudgetConfig) PopulationCap(round int) int {
	scaled := int(math.Round(float64(c.CapBase) * float64(round) / 20.0))
	if scaled < c.CapFloor {
		return c.CapFloor
	}
	return scaled
}

// BossQuota returns the mandatory boss count for a round: round/interval on
// every interval-th round, but only once the boss type itself is unlocked.
// Round 5 with a boss unlocking at round 7 yields 0.
func (c BudgetConfig) BossQuota(round int) int {
	if round%c.BossInterval != 0 {
		return 0
	}
	if round < c.BossUnlockRound {
		return 0
	}
	return round / c.BossInterval
}
