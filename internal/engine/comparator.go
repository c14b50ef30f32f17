package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"nutrigenie/internal/catalog"
)

// Direction states which way a nutrient's value is favorable.
type Direction string

const (
	LowerBetter  Direction = "lower_better"
	HigherBetter Direction = "higher_better"
	// NoDirection marks nutrients reported for context only; they cast no
	// winner vote.
	NoDirection Direction = ""
)

// comparedNutrient binds one tracked nutrient to its direction rule and
// accessor. Order here is the report order.
var comparedNutrients = []struct {
	name      string
	direction Direction
	value     func(catalog.Nutrients) float64
}{
	{"calories", LowerBetter, func(n catalog.Nutrients) float64 { return n.Calories }},
	{"protein_g", HigherBetter, func(n catalog.Nutrients) float64 { return n.ProteinG }},
	{"carbs_g", NoDirection, func(n catalog.Nutrients) float64 { return n.CarbsG }},
	{"fat_g", NoDirection, func(n catalog.Nutrients) float64 { return n.FatG }},
	{"fiber_g", HigherBetter, func(n catalog.Nutrients) float64 { return n.FiberG }},
	{"sugar_g", LowerBetter, func(n catalog.Nutrients) float64 { return n.SugarG }},
	{"sodium_mg", LowerBetter, func(n catalog.Nutrients) float64 { return n.SodiumMg }},
}

// NutrientComparison is one nutrient's row in the comparison: every food's
// value, the winner (if any), and whether the best value was tied.
type NutrientComparison struct {
	Nutrient  string             `json:"nutrient"`
	Direction Direction          `json:"direction,omitempty"`
	Values    map[string]float64 `json:"values"`
	WinnerID  string             `json:"winner_id,omitempty"`
	Tie       bool               `json:"tie,omitempty"`
}

// ComparisonResult compares 2+ foods nutrient by nutrient. Scores counts the
// nutrients each food won.
type ComparisonResult struct {
	FoodIDs   []string             `json:"food_ids"`
	Nutrients []NutrientComparison `json:"nutrients"`
	Scores    map[string]int       `json:"scores"`
}

// CompareFoods compares the given foods per tracked nutrient. The winner for
// each directed nutrient is the food with the most favorable value; a tie for
// best is recorded, never arbitrarily broken. Unknown ids are dropped; fewer
// than two valid ids fails with ErrInsufficientInput.
func CompareFoods(ids []string, cat *catalog.Catalog) (ComparisonResult, error) {
	var foods []catalog.FoodItem
	var unknown []string

	// Duplicate ids are legal: comparing a food against itself is a valid
	// request and yields all ties.
	for _, id := range ids {
		item, ok := cat.Get(id)
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		foods = append(foods, item)
	}

	if len(foods) < 2 {
		return ComparisonResult{}, fmt.Errorf(
			"%w: need at least 2 valid food ids, got %d (unknown: %s)",
			ErrInsufficientInput, len(foods), strings.Join(unknown, ", "))
	}

	result := ComparisonResult{Scores: make(map[string]int, len(foods))}
	for _, f := range foods {
		result.FoodIDs = append(result.FoodIDs, f.ID)
		result.Scores[f.ID] = 0
	}

	for _, nutrient := range comparedNutrients {
		row := NutrientComparison{
			Nutrient:  nutrient.name,
			Direction: nutrient.direction,
			Values:    make(map[string]float64, len(foods)),
		}
		for _, f := range foods {
			row.Values[f.ID] = nutrient.value(f.PerServing)
		}

		if nutrient.direction != NoDirection {
			winner, tie := bestOf(foods, nutrient.value, nutrient.direction)
			if tie {
				row.Tie = true
			} else {
				row.WinnerID = winner
				result.Scores[winner]++
			}
		}

		result.Nutrients = append(result.Nutrients, row)
	}

	return result, nil
}

// Calorie window for SimilarFoods: relative band with a small absolute floor
// so very light foods still find neighbors.
const (
	similarCalorieBand  = 0.30
	similarCalorieFloor = 25.0
)

// SimilarFoods lists foods sharing the given food's category with comparable
// per-serving calories, nearest first. Ties on calorie distance break by id.
// An unknown id fails with ErrUnknownFood; limit <= 0 means no limit.
func SimilarFoods(id string, cat *catalog.Catalog, limit int) ([]catalog.FoodItem, error) {
	base, ok := cat.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFood, id)
	}

	window := base.PerServing.Calories * similarCalorieBand
	if window < similarCalorieFloor {
		window = similarCalorieFloor
	}

	var out []catalog.FoodItem
	for _, item := range cat.ByCategory(base.Category) {
		if item.ID == base.ID {
			continue
		}
		if math.Abs(item.PerServing.Calories-base.PerServing.Calories) > window {
			continue
		}
		out = append(out, item)
	}

	sort.Slice(out, func(i, j int) bool {
		di := math.Abs(out[i].PerServing.Calories - base.PerServing.Calories)
		dj := math.Abs(out[j].PerServing.Calories - base.PerServing.Calories)
		if di != dj {
			return di < dj
		}
		return out[i].ID < out[j].ID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// bestOf finds the food with the most favorable value. A shared best value is
// a tie and produces no winner.
func bestOf(foods []catalog.FoodItem, value func(catalog.Nutrients) float64, dir Direction) (string, bool) {
	winner := foods[0].ID
	best := value(foods[0].PerServing)
	tie := false

	for _, f := range foods[1:] {
		v := value(f.PerServing)
		switch {
		case v == best:
			tie = true
		case dir == LowerBetter && v < best, dir == HigherBetter && v > best:
			winner, best, tie = f.ID, v, false
		}
	}

	return winner, tie
}
