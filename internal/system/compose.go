// internal/system/compose.go
package system

import (
	"sort"

	"go-bastion-defense/internal/defs"
	"go-bastion-defense/internal/utils"
)

// WaveComposer converts a round's threat budget into a concrete ordered
// multiset of unit type IDs. All random draws come from the injected PRNG,
// so a seeded run composes identical waves.
type WaveComposer struct {
	rng *utils.PRNGService
}

func NewWaveComposer(rng *utils.PRNGService) *WaveComposer {
	return &WaveComposer{rng: rng}
}

// Compose builds the wave allocation for a round.
//
// Bosses are appended first: the quota ignores the budget but counts against
// the population cap. The rest of the cap is filled greedily, one uniform
// draw at a time from whatever is still affordable. Running out of
// affordable types is an accepted underspend, not an error. If the cap was
// hit with budget left over, an exchange pass upgrades the cheapest entries
// in place until no affordable upgrade remains.
func (wc *WaveComposer) Compose(round, budget, cap, bossQuota int) []string {
	allocation := make([]string, 0, cap)
	for i := 0; i < bossQuota; i++ {
		allocation = append(allocation, defs.BossUnitID)
	}

	unlocked := defs.UnlockedUnits(round)
	remaining := budget

	for remaining > 0 && len(allocation) < cap {
		affordable := affordableUnits(unlocked, remaining)
		if len(affordable) == 0 {
			break
		}
		// Uniform draw, not cost-weighted: cheap types stay affordable
		// longest, which skews late picks toward them. Observed tuning,
		// kept as is.
		pick := affordable[wc.rng.Intn(len(affordable))]
		allocation = append(allocation, pick.ID)
		remaining -= pick.ThreatCost
	}

	if len(allocation) == cap && remaining > 0 {
		remaining = wc.upgrade(allocation, unlocked, remaining)
	}

	return allocation
}

// upgrade swaps the weakest non-boss entries for stronger affordable types
// until no improving swap exists. A greedy exchange, not a knapsack solve.
func (wc *WaveComposer) upgrade(allocation []string, unlocked []defs.UnitDefinition, remaining int) int {
	byCostDesc := make([]defs.UnitDefinition, len(unlocked))
	copy(byCostDesc, unlocked)
	sort.SliceStable(byCostDesc, func(i, j int) bool {
		return byCostDesc[i].ThreatCost > byCostDesc[j].ThreatCost
	})

	for {
		weakest := -1
		weakestCost := 0
		for i, id := range allocation {
			if id == defs.BossUnitID {
				continue
			}
			cost := defs.UnitLibrary[id].ThreatCost
			if weakest == -1 || cost < weakestCost {
				weakest = i
				weakestCost = cost
			}
		}
		if weakest == -1 {
			return remaining
		}

		swapped := false
		for _, cand := range byCostDesc {
			delta := cand.ThreatCost - weakestCost
			if delta > 0 && delta <= remaining {
				allocation[weakest] = cand.ID
				remaining -= delta
				swapped = true
				break
			}
		}
		if !swapped {
			return remaining
		}
	}
}

func affordableUnits(unlocked []defs.UnitDefinition, budget int) []defs.UnitDefinition {
	var out []defs.UnitDefinition
	for _, def := range unlocked {
		if def.ThreatCost <= budget {
			out = append(out, def)
		}
	}
	return out
}
