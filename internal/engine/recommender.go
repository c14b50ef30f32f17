package engine

import (
	"fmt"
	"sort"

	"nutrigenie/internal/catalog"
)

// Suggestion is one gap-filling food with the gap it addresses.
type Suggestion struct {
	Food          catalog.FoodItem `json:"food"`
	Nutrient      string           `json:"nutrient"`
	Justification string           `json:"justification"`
}

// RecommenderConfig bounds the suggestion output.
type RecommenderConfig struct {
	PerGap  int
	Overall int
}

// DefaultRecommenderConfig caps suggestions at 5 per gap and 15 overall.
func DefaultRecommenderConfig() RecommenderConfig {
	return RecommenderConfig{PerGap: 5, Overall: 15}
}

// nutrientValue extracts a tracked nutrient's per-serving amount by name.
// Unknown names yield zero, so unmatched gaps simply produce no suggestions.
func nutrientValue(n catalog.Nutrients, nutrient string) float64 {
	switch nutrient {
	case "calories":
		return n.Calories
	case "protein_g":
		return n.ProteinG
	case "carbs_g":
		return n.CarbsG
	case "fat_g":
		return n.FatG
	case "fiber_g":
		return n.FiberG
	default:
		return 0
	}
}

// SuggestForGaps walks deficit gaps in the given priority order and suggests
// catalog foods richest in each gap's nutrient. Excluded tags filter hard, a
// food suggested for a higher-priority gap is never repeated, and the output
// respects the per-gap and overall caps. Ordering mirrors gap priority.
func SuggestForGaps(gaps []GapResult, cat *catalog.Catalog, excluded []catalog.Tag, cfg RecommenderConfig) []Suggestion {
	var out []Suggestion
	suggested := make(map[string]bool)

	for _, gap := range gaps {
		if gap.Status != StatusDeficit {
			continue
		}
		if len(out) >= cfg.Overall {
			break
		}

		candidates := rankByNutrient(cat, gap.Nutrient, excluded)

		taken := 0
		for _, food := range candidates {
			if taken >= cfg.PerGap || len(out) >= cfg.Overall {
				break
			}
			if suggested[food.ID] {
				continue
			}

			out = append(out, Suggestion{
				Food:     food,
				Nutrient: gap.Nutrient,
				Justification: fmt.Sprintf("high in %s (%s per serving); current shortfall %s",
					displayName(gap.Nutrient),
					formatAmount(nutrientValue(food.PerServing, gap.Nutrient), gap.Nutrient),
					formatAmount(-gap.Delta, gap.Nutrient)),
			})
			suggested[food.ID] = true
			taken++
		}
	}

	return out
}

// rankByNutrient lists catalog foods providing the nutrient, richest first,
// with excluded tags filtered out. Ties break alphabetically by name then id
// so the ranking is stable.
func rankByNutrient(cat *catalog.Catalog, nutrient string, excluded []catalog.Tag) []catalog.FoodItem {
	var out []catalog.FoodItem
	for _, item := range cat.Items() {
		if item.HasAnyTag(excluded) {
			continue
		}
		if nutrientValue(item.PerServing, nutrient) <= 0 {
			continue
		}
		out = append(out, item)
	}

	sort.Slice(out, func(i, j int) bool {
		vi := nutrientValue(out[i].PerServing, nutrient)
		vj := nutrientValue(out[j].PerServing, nutrient)
		if vi != vj {
			return vi > vj
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// CategoryListing returns the top foods per recommended category, ordered by
// descending category weight. Used for the direct suggestion listing shown
// next to a generated plan.
func CategoryListing(rec Recommendation, cat *catalog.Catalog, perCategory int) map[catalog.Category][]catalog.FoodItem {
	out := make(map[catalog.Category][]catalog.FoodItem)

	for _, category := range catalog.Categories {
		if rec.CategoryWeights[category] <= 0 {
			continue
		}

		var foods []catalog.FoodItem
		for _, item := range cat.ByCategory(category) {
			if item.HasAnyTag(rec.ExcludedTags) {
				continue
			}
			foods = append(foods, item)
			if len(foods) >= perCategory {
				break
			}
		}
		if len(foods) > 0 {
			out[category] = foods
		}
	}

	return out
}

func displayName(nutrient string) string {
	switch nutrient {
	case "protein_g":
		return "protein"
	case "carbs_g":
		return "carbs"
	case "fat_g":
		return "fat"
	case "fiber_g":
		return "fiber"
	default:
		return nutrient
	}
}

func formatAmount(v float64, nutrient string) string {
	if nutrient == "calories" {
		return fmt.Sprintf("%.0f kcal", v)
	}
	return fmt.Sprintf("%.1fg", v)
}
