package lighting

import "github.com/alexanderramin/greenspot/internal/domain"

// Recommendation is a plant suggested for a light level.
type Recommendation struct {
	Name      string
	Tolerance string
}

// recommendations is ordered best fit first within each level.
var recommendations = map[domain.LightLevel][]Recommendation{
	domain.LightBrightDirect: {
		{"Succulents", "Bright Direct"},
		{"Cacti", "Bright Direct"},
		{"Jade Plant", "Bright Direct"},
		{"Aloe Vera", "Bright Direct"},
		{"Croton", "Bright Direct"},
	},
	domain.LightBrightIndirect: {
		{"Monstera", "Bright Indirect"},
		{"Fiddle Leaf Fig", "Bright Indirect"},
		{"Rubber Plant", "Bright Indirect"},
		{"Bird of Paradise", "Bright Indirect"},
		{"Philodendron", "Bright Indirect"},
	},
	domain.LightMediumIndirect: {
		{"Pothos", "Low to Medium"},
		{"Snake Plant", "Low to Bright"},
		{"Spider Plant", "Medium Indirect"},
		{"Peace Lily", "Medium Indirect"},
		{"ZZ Plant", "Low Light"},
	},
	domain.LightLow: {
		{"Snake Plant", "Low to Bright"},
		{"ZZ Plant", "Low Light"},
		{"Cast Iron Plant", "Low Light"},
		{"Pothos", "Low to Medium"},
		{"Chinese Evergreen", "Low Light"},
	},
}

// SummaryLimit is the number of suggestions shown after creating a spot.
const SummaryLimit = 3

// Recommend returns plants suited to level. limit <= 0 returns all of them.
// The returned slice is a copy.
func Recommend(level domain.LightLevel, limit int) []Recommendation {
	all := recommendations[level]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	out := make([]Recommendation, len(all))
	copy(out, all)
	return out
}
