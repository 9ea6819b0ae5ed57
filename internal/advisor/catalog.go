// Package advisor holds the plant catalog and the identification and chat
// capabilities. The implementations here are deterministic lookups; callers
// depend on the interfaces so a real model can be swapped in.
package advisor

import (
	"strings"

	"github.com/alexanderramin/greenspot/internal/domain"
)

// Species is a catalog entry offered when adding a plant.
type Species struct {
	ID               string
	Name             string
	ScientificName   string
	Image            string
	LightRequirement domain.LightLevel
}

var catalog = []Species{
	{"pothos", "Golden Pothos", "Epipremnum aureum", "https://images.unsplash.com/photo-1614594975525-e45190c55d0b?w=400", domain.LightMediumIndirect},
	{"snake-plant", "Snake Plant", "Sansevieria trifasciata", "https://images.unsplash.com/photo-1593482892290-f54927ae1bb4?w=400", domain.LightLow},
	{"zz-plant", "ZZ Plant", "Zamioculcas zamiifolia", "https://images.unsplash.com/photo-1632207691143-643e2a9a9361?w=400", domain.LightLow},
	{"monstera", "Monstera", "Monstera deliciosa", "https://images.unsplash.com/photo-1614594895304-fe7116ac3b8b?w=400", domain.LightBrightIndirect},
	{"peace-lily", "Peace Lily", "Spathiphyllum", "https://images.unsplash.com/photo-1593691509543-c55fb32d8de5?w=400", domain.LightMediumIndirect},
	{"spider-plant", "Spider Plant", "Chlorophytum comosum", "https://images.unsplash.com/photo-1572688484438-313a6e50c333?w=400", domain.LightMediumIndirect},
	{"fiddle-leaf-fig", "Fiddle Leaf Fig", "Ficus lyrata", "https://images.unsplash.com/photo-1614594975525-e45190c55d0b?w=800", domain.LightBrightIndirect},
}

// Catalog returns every species in display order.
func Catalog() []Species {
	out := make([]Species, len(catalog))
	copy(out, catalog)
	return out
}

// Search matches query case-insensitively against common and scientific
// names. A blank query returns the whole catalog.
func Search(query string) []Species {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Catalog()
	}
	var out []Species
	for _, s := range catalog {
		if strings.Contains(strings.ToLower(s.Name), q) || strings.Contains(strings.ToLower(s.ScientificName), q) {
			out = append(out, s)
		}
	}
	return out
}

// Lookup finds a species by catalog id or exact (case-insensitive) name.
func Lookup(key string) (Species, bool) {
	k := strings.TrimSpace(key)
	for _, s := range catalog {
		if s.ID == k || strings.EqualFold(s.Name, k) {
			return s, true
		}
	}
	return Species{}, false
}
