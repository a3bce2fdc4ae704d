package ledger

import (
	"math"
	"sort"
)

// balanceEntry is a mutable working copy so planning never touches the
// participants themselves.
type balanceEntry struct {
	name    string
	balance float64
}

// Plan produces the suggested transfers that bring every shadow balance
// within Epsilon of zero. It matches the most-negative debtor against the
// largest creditor and walks both lists with two pointers, the standard
// debt-netting heuristic: deterministic and cheap, though not guaranteed to
// hit the theoretical minimum transaction count in every topology.
func Plan(participants []*Participant) []SettlementTransaction {
	var debtors, creditors []balanceEntry
	for _, p := range participants {
		switch {
		case p.ShadowBalance < -Epsilon:
			debtors = append(debtors, balanceEntry{p.Name, p.ShadowBalance})
		case p.ShadowBalance > Epsilon:
			creditors = append(creditors, balanceEntry{p.Name, p.ShadowBalance})
		}
	}

	// Stable sorts keep ties in registry order across passes.
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].balance < debtors[j].balance
	})
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].balance > creditors[j].balance
	})

	var settlements []SettlementTransaction
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := math.Min(-debtors[i].balance, creditors[j].balance)

		if amount > 0.009 {
			settlements = append(settlements, SettlementTransaction{
				From:   debtors[i].name,
				To:     creditors[j].name,
				Amount: amount,
			})
		}

		debtors[i].balance += amount
		creditors[j].balance -= amount

		// Equal magnitudes advance both pointers in the same step.
		if -debtors[i].balance < Epsilon {
			i++
		}
		if creditors[j].balance < Epsilon {
			j++
		}
	}

	return settlements
}
