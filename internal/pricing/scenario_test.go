package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/scanquote/internal/pricing"
)

func baseInputs() pricing.Inputs {
	return pricing.Inputs{
		Pages:                   20000,
		LaborPerPage:            0.3,
		MonthlySalaryPerWorker:  15000,
		ScannerMonthly:          4500,
		PCMonthly:               3000,
		WorkingDaysPerMonth:     22,
		OfficePerJob:            10000,
		RiskRate:                0.03,
		GPRate:                  0.35,
		CapacityPerPersonPerDay: 1500,
		WorkersManual:           1,
		DeadlineDays:            30,
	}
}

func TestCompare_OverridesPagesAndDeadline(t *testing.T) {
	base := baseInputs()
	scenarios := []pricing.Scenario{
		{ID: "a", Label: "Small", Pages: 20000, DeadlineDays: 10},
		{ID: "b", Label: "Large", Pages: 200000, DeadlineDays: 30},
		{ID: "c", Label: "Empty", Pages: 0, DeadlineDays: 30},
	}

	cmp := pricing.Compare(base, pricing.DeadlineDriven, pricing.Salaried, scenarios)

	require.Len(t, cmp.Rows, 3)
	assert.Equal(t, "a", cmp.Rows[0].Scenario.ID)
	assert.Equal(t, 2, cmp.Rows[0].Result.Workers)
	assert.InDelta(t, 55000, cmp.Rows[0].Result.BaseCost, 1e-9)

	assert.Equal(t, 5, cmp.Rows[1].Result.Workers)
	assert.Contains(t, cmp.Rows[2].Result.Errors, pricing.MsgPagesRequired)
	assert.Nil(t, cmp.Rows[2].Result.Required)

	// Each row equals a standalone calculation on the overridden inputs.
	for i, s := range scenarios {
		want := pricing.Calculate(s.Apply(base), pricing.DeadlineDriven, pricing.Salaried)
		assert.Equal(t, want, cmp.Rows[i].Result, "row %d", i)
	}
}

func TestCompare_DoesNotMutateBase(t *testing.T) {
	base := baseInputs()
	before := base

	pricing.Compare(base, pricing.FixedHeadcount, pricing.PerPage, []pricing.Scenario{
		{Pages: 1, DeadlineDays: 1},
		{Pages: 99999, DeadlineDays: 2},
	})

	assert.Equal(t, before, base)
}

func TestCompare_OrderInsensitive(t *testing.T) {
	base := baseInputs()
	a := pricing.Scenario{ID: "a", Pages: 30000, DeadlineDays: 5}
	b := pricing.Scenario{ID: "b", Pages: 90000, DeadlineDays: 20}

	forward := pricing.Compare(base, pricing.DeadlineDriven, pricing.PerPage, []pricing.Scenario{a, b})
	reverse := pricing.Compare(base, pricing.DeadlineDriven, pricing.PerPage, []pricing.Scenario{b, a})

	assert.Equal(t, forward.Rows[0], reverse.Rows[1])
	assert.Equal(t, forward.Rows[1], reverse.Rows[0])
}

func TestCompare_CheapestAndFastest(t *testing.T) {
	base := baseInputs()
	scenarios := []pricing.Scenario{
		{ID: "tiny", Pages: 100, DeadlineDays: 30},
		{ID: "bulk", Pages: 100000, DeadlineDays: 30},
		{ID: "broken", Pages: -5, DeadlineDays: 30},
	}

	cmp := pricing.Compare(base, pricing.DeadlineDriven, pricing.PerPage, scenarios)

	// Fixed cost spread over more pages makes the bulk job cheaper per page.
	assert.Equal(t, 1, cmp.Cheapest)
	assert.Equal(t, 0, cmp.Fastest)
}

func TestCompare_NoQualifyingRows(t *testing.T) {
	cmp := pricing.Compare(baseInputs(), pricing.FixedHeadcount, pricing.PerPage, nil)

	assert.Empty(t, cmp.Rows)
	assert.Equal(t, -1, cmp.Cheapest)
	assert.Equal(t, -1, cmp.Fastest)
}
