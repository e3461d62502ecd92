package system

import "testing"

func testBudgetConfig() BudgetConfig {
	return BudgetConfig{
		InitialBudget:   50,
		IncrementFactor: 20,
		CapBase:         40,
		CapFloor:        8,
		BossInterval:    5,
		BossUnlockRound: 7,
	}
}

func TestBudget_Round1(t *testing.T) {
	c := testBudgetConfig()
	// 50 + 20*1*1/2 = 60
	if got := c.Budget(1); got != 60 {
		t.Fatalf("Budget(1) = %d, want 60", got)
	}
}

func TestBudget_QuadraticTruncation(t *testing.T) {
	c := testBudgetConfig()
	c.IncrementFactor = 5
	// 50 + 5*3*3/2 = 50 + 22 (integer division)
	if got := c.Budget(3); got != 72 {
		t.Fatalf("Budget(3) = %d, want 72", got)
	}
}

func TestBudget_Monotonic(t *testing.T) {
	c := testBudgetConfig()
	prev := c.Budget(1)
	for round := 2; round <= 60; round++ {
		cur := c.Budget(round)
		if cur < prev {
			t.Fatalf("Budget(%d) = %d dropped below Budget(%d) = %d", round, cur, round-1, prev)
		}
		prev = cur
	}
}

func TestPopulationCap_FloorAtLowRounds(t *testing.T) {
	c := testBudgetConfig()
	// 40*1/20 = 2, well under the floor of 8.
	if got := c.PopulationCap(1); got != 8 {
		t.Fatalf("PopulationCap(1) = %d, want floor 8", got)
	}
}

func TestPopulationCap_ScalesPastFloor(t *testing.T) {
	c := testBudgetConfig()
	if got := c.PopulationCap(10); got != 20 {
		t.Fatalf("PopulationCap(10) = %d, want 20", got)
	}
	if got := c.PopulationCap(20); got != 40 {
		t.Fatalf("PopulationCap(20) = %d, want 40", got)
	}
}

func TestPopulationCap_Rounds(t *testing.T) {
	c := testBudgetConfig()
	c.CapBase = 30
	c.CapFloor = 1
	// 30*5/20 = 7.5, rounds to 8.
	if got := c.PopulationCap(5); got != 8 {
		t.Fatalf("PopulationCap(5) = %d, want 8 (rounded)", got)
	}
}

func TestBossQuota_BeforeUnlock(t *testing.T) {
	c := testBudgetConfig()
	// Round 5 meets the modulus but the boss unlocks at 7.
	if got := c.BossQuota(5); got != 0 {
		t.Fatalf("BossQuota(5) = %d, want 0", got)
	}
}

func TestBossQuota_Round10(t *testing.T) {
	c := testBudgetConfig()
	if got := c.BossQuota(10); got != 2 {
		t.Fatalf("BossQuota(10) = %d, want 2", got)
	}
}

func TestBossQuota_OffInterval(t *testing.T) {
	c := testBudgetConfig()
	for _, round := range []int{7, 8, 9, 11, 13} {
		if got := c.BossQuota(round); got != 0 {
			t.Fatalf("BossQuota(%d) = %d, want 0", round, got)
		}
	}
}
