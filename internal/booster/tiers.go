package booster

import (
	"github.com/osse101/scrapworld/internal/domain"
	"github.com/osse101/scrapworld/internal/utils"
)

// Rand returns a uniformly distributed integer in [min, max]
type Rand func(min, max int) int

type intRange struct {
	Min int
	Max int
}

func (r intRange) draw(rng Rand) int {
	return rng(r.Min, r.Max)
}

// slotGroup draws Picks items, with replacement, from the catalog items accepted by Filter
type slotGroup struct {
	Picks  intRange
	Filter func(domain.Item) bool
}

// TierPolicy describes what one booster tier yields
type TierPolicy struct {
	Slots []slotGroup
	XP    intRange
	Scrap intRange
}

func rareOnly(it domain.Item) bool { return it.IsRare() }
func nonRare(it domain.Item) bool  { return !it.IsRare() }
func anyItem(domain.Item) bool     { return true }

var tierPolicies = map[string]TierPolicy{
	domain.BoosterTierCommon: {
		Slots: []slotGroup{{Picks: intRange{1, 3}, Filter: nonRare}},
		XP:    intRange{10, 59},
		Scrap: intRange{5, 24},
	},
	domain.BoosterTierRare: {
		Slots: []slotGroup{{Picks: intRange{1, 2}, Filter: rareOnly}},
		XP:    intRange{50, 149},
		Scrap: intRange{20, 69},
	},
	domain.BoosterTierLegendary: {
		Slots: []slotGroup{
			{Picks: intRange{1, 1}, Filter: rareOnly},
			{Picks: intRange{2, 5}, Filter: nonRare},
		},
		XP:    intRange{100, 299},
		Scrap: intRange{50, 149},
	},
}

var basicPolicy = TierPolicy{
	Slots: []slotGroup{{Picks: intRange{1, 1}, Filter: anyItem}},
	XP:    intRange{5, 34},
	Scrap: intRange{2, 11},
}

// PolicyFor returns the policy of a tier. Unknown tiers get the basic policy.
func PolicyFor(tier string) TierPolicy {
	if p, ok := tierPolicies[tier]; ok {
		return p
	}
	return basicPolicy
}

// IsKnownTier reports whether the tier has a dedicated policy
func IsKnownTier(tier string) bool {
	_, ok := tierPolicies[tier]
	return ok
}

// Generate rolls a reward bundle from the catalog
func (p TierPolicy) Generate(catalog []domain.Item, rng Rand) domain.RewardBundle {
	if rng == nil {
		rng = utils.RandomInt
	}

	bundle := domain.RewardBundle{
		XP:    int64(p.XP.draw(rng)),
		Scrap: float64(p.Scrap.draw(rng)),
		Items: []domain.RewardItem{},
	}
	for _, slot := range p.Slots {
		candidates := filterItems(catalog, slot.Filter)
		bundle.Items = append(bundle.Items, pick(candidates, slot.Picks.draw(rng), rng)...)
	}
	return bundle
}

// pick draws n reward lines of quantity 1 uniformly from candidates.
// Duplicates are allowed. An empty pool yields nothing.
func pick(candidates []domain.Item, n int, rng Rand) []domain.RewardItem {
	if len(candidates) == 0 || n <= 0 {
		return nil
	}
	lines := make([]domain.RewardItem, 0, n)
	for i := 0; i < n; i++ {
		it := candidates[rng(0, len(candidates)-1)]
		lines = append(lines, domain.RewardItem{ID: it.ID, Quantity: 1})
	}
	return lines
}

func filterItems(items []domain.Item, keep func(domain.Item) bool) []domain.Item {
	var out []domain.Item
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
