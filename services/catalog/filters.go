package catalog

import (
	"strings"

	game_constants "questbook/constants/game"
	"questbook/models"
)

// Filter is the conjunction of catalog predicates. Zero values (and the
// literal "all") disable the corresponding predicate; price bounds are
// inclusive and only applied when the pointer is set.
type Filter struct {
	Search     string
	Category   string
	Difficulty string
	Status     string
	PriceMin   *float64
	PriceMax   *float64
}

func isAll(v string) bool {
	return v == "" || v == game_constants.FilterAll
}

// FilterGames returns the subset of list matching every predicate, in the
// original order. The input is never mutated.
func FilterGames(list []models.Game, f Filter) []models.Game {
	out := make([]models.Game, 0, len(list))
	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, g := range list {
		if search != "" {
			title := strings.ToLower(g.Title)
			desc := strings.ToLower(g.Description)
			if !strings.Contains(title, search) && !strings.Contains(desc, search) {
				continue
			}
		}
		if !isAll(f.Category) && g.Category != f.Category {
			continue
		}
		if !isAll(f.Difficulty) && g.Difficulty != f.Difficulty {
			continue
		}
		if !isAll(f.Status) && g.Status != f.Status {
			continue
		}
		if f.PriceMin != nil && g.Price < *f.PriceMin {
			continue
		}
		if f.PriceMax != nil && g.Price > *f.PriceMax {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Counts holds the per-category game counts shown next to the category
// filter. All is always the full list length; a game with a category outside
// the fixed set contributes to All only.
type Counts struct {
	All        int            `json:"all"`
	ByCategory map[string]int `json:"by_category"`
}

func CategoryCounts(list []models.Game) Counts {
	counts := Counts{
		All:        len(list),
		ByCategory: make(map[string]int, len(game_constants.Categories)),
	}
	for _, c := range game_constants.Categories {
		counts.ByCategory[c] = 0
	}
	for _, g := range list {
		if _, ok := counts.ByCategory[g.Category]; ok {
			counts.ByCategory[g.Category]++
		}
	}
	return counts
}

// Featured returns the featured subset for the home page.
func Featured(list []models.Game) []models.Game {
	out := make([]models.Game, 0, len(list))
	for _, g := range list {
		if g.IsFeatured {
			out = append(out, g)
		}
	}
	return out
}
