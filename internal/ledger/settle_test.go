package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withShadow(pairs map[string]float64, order ...string) []*Participant {
	out := make([]*Participant, 0, len(order))
	for _, name := range order {
		out = append(out, &Participant{Name: name, ShadowBalance: pairs[name]})
	}
	return out
}

func TestPlanSinglePair(t *testing.T) {
	participants := withShadow(map[string]float64{"A": 50, "B": -50}, "A", "B")

	settlements := Plan(participants)

	require.Len(t, settlements, 1)
	assert.Equal(t, "B", settlements[0].From)
	assert.Equal(t, "A", settlements[0].To)
	assert.InDelta(t, 50, settlements[0].Amount, Epsilon)
}

func TestPlanMatchesLargestToLargest(t *testing.T) {
	// Debtors [-50, -30] against creditors [+50, +30] settle in exactly two
	// transfers with no cross-matching.
	participants := withShadow(
		map[string]float64{"D1": -50, "D2": -30, "C1": 50, "C2": 30},
		"D2", "C2", "D1", "C1",
	)

	settlements := Plan(participants)

	require.Len(t, settlements, 2)
	assert.Equal(t, SettlementTransaction{From: "D1", To: "C1", Amount: 50}, settlements[0])
	assert.Equal(t, SettlementTransaction{From: "D2", To: "C2", Amount: 30}, settlements[1])
}

func TestPlanSplitsDebtAcrossCreditors(t *testing.T) {
	participants := withShadow(
		map[string]float64{"D": -80, "C1": 50, "C2": 30},
		"D", "C1", "C2",
	)

	settlements := Plan(participants)

	require.Len(t, settlements, 2)
	assert.Equal(t, SettlementTransaction{From: "D", To: "C1", Amount: 50}, settlements[0])
	assert.Equal(t, SettlementTransaction{From: "D", To: "C2", Amount: 30}, settlements[1])
}

func TestPlanDrivesBalancesToZero(t *testing.T) {
	participants := withShadow(
		map[string]float64{"A": 123.45, "B": -61.7, "C": -41.75, "D": -20, "E": 0},
		"A", "B", "C", "D", "E",
	)

	settlements := Plan(participants)

	// Apply every suggested transfer and check everyone lands on zero.
	remaining := make(map[string]float64)
	for _, p := range participants {
		remaining[p.Name] = p.ShadowBalance
	}
	for _, s := range settlements {
		remaining[s.From] += s.Amount
		remaining[s.To] -= s.Amount
	}
	for name, balance := range remaining {
		assert.InDeltaf(t, 0, balance, Epsilon, "participant %s not settled", name)
	}
}

func TestPlanIgnoresNearZeroBalances(t *testing.T) {
	participants := withShadow(
		map[string]float64{"A": 0.004, "B": -0.004, "C": 0},
		"A", "B", "C",
	)

	assert.Empty(t, Plan(participants))
}

func TestPlanEmptyInput(t *testing.T) {
	assert.Empty(t, Plan(nil))
}

func TestPlanAdvancesBothPointersOnExactMatch(t *testing.T) {
	participants := withShadow(
		map[string]float64{"D1": -40, "D2": -10, "C1": 40, "C2": 10},
		"D1", "D2", "C1", "C2",
	)

	settlements := Plan(participants)

	require.Len(t, settlements, 2)
	assert.Equal(t, SettlementTransaction{From: "D1", To: "C1", Amount: 40}, settlements[0])
	assert.Equal(t, SettlementTransaction{From: "D2", To: "C2", Amount: 10}, settlements[1])
}

func TestPlanDoesNotMutateParticipants(t *testing.T) {
	participants := withShadow(map[string]float64{"A": 25, "B": -25}, "A", "B")

	Plan(participants)

	assert.InDelta(t, 25, participants[0].ShadowBalance, Epsilon)
	assert.InDelta(t, -25, participants[1].ShadowBalance, Epsilon)
}

func TestPlanStableOrderOnTies(t *testing.T) {
	participants := withShadow(
		map[string]float64{"D1": -20, "D2": -20, "C": 40},
		"D1", "D2", "C",
	)

	settlements := Plan(participants)

	// Equal debts keep their registry order run after run.
	require.Len(t, settlements, 2)
	assert.Equal(t, "D1", settlements[0].From)
	assert.Equal(t, "D2", settlements[1].From)
}
