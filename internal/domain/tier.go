package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

type TierKey string

const (
	TierIron     TierKey = "iron"
	TierBronze   TierKey = "bronze"
	TierSilver   TierKey = "silver"
	TierGold     TierKey = "gold"
	TierPlatinum TierKey = "platinum"
	TierDiamond  TierKey = "diamond"
)

// Tier pairs a loyalty tier key with the total completed-deposit amount
// that unlocks it.
type Tier struct {
	Key        TierKey
	MinDeposit decimal.Decimal
}

// TierTable is the ordered loyalty tier list, ascending by threshold.
// It is static configuration data; never mutated at runtime.
type TierTable []Tier

func NewTierTable(tiers []Tier) TierTable {
	table := make(TierTable, len(tiers))
	copy(table, tiers)
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].MinDeposit.LessThan(table[j].MinDeposit)
	})
	return table
}

func DefaultTierTable() TierTable {
	return NewTierTable([]Tier{
		{Key: TierIron, MinDeposit: decimal.Zero},
		{Key: TierBronze, MinDeposit: decimal.NewFromInt(500)},
		{Key: TierSilver, MinDeposit: decimal.NewFromInt(2500)},
		{Key: TierGold, MinDeposit: decimal.NewFromInt(10000)},
		{Key: TierPlatinum, MinDeposit: decimal.NewFromInt(50000)},
		{Key: TierDiamond, MinDeposit: decimal.NewFromInt(250000)},
	})
}

// ResolveTier returns the highest tier whose threshold is <= the given
// total of completed deposits. The lowest tier is the floor, so a zero or
// negative total still resolves. Ties go to the higher tier.
func (t TierTable) ResolveTier(totalCompletedDeposits decimal.Decimal) TierKey {
	if len(t) == 0 {
		return ""
	}
	tier := t[0].Key
	for _, entry := range t {
		if totalCompletedDeposits.GreaterThanOrEqual(entry.MinDeposit) {
			tier = entry.Key
		}
	}
	return tier
}

// NextTierInfo returns the tier immediately above the given one together
// with its threshold. The highest tier returns itself with a zero amount:
// a terminal, idempotent state rather than an error.
func (t TierTable) NextTierInfo(current TierKey) (TierKey, decimal.Decimal, error) {
	for i, entry := range t {
		if entry.Key != current {
			continue
		}
		if i == len(t)-1 {
			return current, decimal.Zero, nil
		}
		return t[i+1].Key, t[i+1].MinDeposit, nil
	}
	return "", decimal.Zero, ErrUnknownTier
}
