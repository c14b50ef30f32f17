package engine

import (
	"fmt"
	"sort"
	"strings"

	"nutrigenie/internal/catalog"
)

// MealSlot identifies where in the day a plan entry belongs.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnack     MealSlot = "snack"
)

// MealPlanEntry is one food at one meal slot.
type MealPlanEntry struct {
	FoodID   string   `json:"food_id"`
	FoodName string   `json:"food_name"`
	Slot     MealSlot `json:"meal_slot"`
	Servings float64  `json:"servings"`
}

// SlotSummary reports how one slot went. Infeasible slots are flagged, never
// silently dropped.
type SlotSummary struct {
	Slot           MealSlot `json:"slot"`
	TargetCalories float64  `json:"target_calories"`
	Calories       float64  `json:"calories"`
	Infeasible     bool     `json:"infeasible,omitempty"`
}

// MealPlan is the optimizer's output: per-slot entries, slot summaries, and
// the aggregated nutrient totals. Partial is set when any slot was
// infeasible.
type MealPlan struct {
	Entries []MealPlanEntry   `json:"entries"`
	Slots   []SlotSummary     `json:"slots"`
	Totals  catalog.Nutrients `json:"totals"`
	Partial bool              `json:"partial,omitempty"`
}

// SlotShare assigns one slot its fraction of the daily targets.
type SlotShare struct {
	Slot  MealSlot
	Share float64
}

// PlannerConfig bounds the optimizer's search space. Every knob is
// configuration rather than hard-coded truth; DefaultPlannerConfig reflects
// common practice, not clinical guidance.
type PlannerConfig struct {
	SlotShares       []SlotShare
	ServingMin       float64
	ServingMax       float64
	ServingStep      float64
	CalorieTolerance float64
	MaxFoodsPerSlot  int

	// AllowedCategories restricts which food categories a slot may draw
	// from. A slot with no entry draws from every category.
	AllowedCategories map[MealSlot][]catalog.Category
}

// DefaultPlannerConfig returns the standard 3-meals-plus-snack layout with
// realistic serving bounds and a 10% calorie tolerance band.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		SlotShares: []SlotShare{
			{Slot: SlotBreakfast, Share: 0.25},
			{Slot: SlotLunch, Share: 0.35},
			{Slot: SlotDinner, Share: 0.30},
			{Slot: SlotSnack, Share: 0.10},
		},
		ServingMin:       0.5,
		ServingMax:       3.0,
		ServingStep:      0.5,
		CalorieTolerance: 0.10,
		MaxFoodsPerSlot:  4,
		AllowedCategories: map[MealSlot][]catalog.Category{
			// Snacks stay light: no full meal components.
			SlotSnack: {
				catalog.CategoryFruit,
				catalog.CategoryFat,
				catalog.CategorySuperfood,
				catalog.CategoryOther,
			},
		},
	}
}

// candidate pairs a food with its rule weight for tie-breaking.
type candidate struct {
	food   catalog.FoodItem
	weight float64
}

// BuildMealPlan fills each meal slot greedily against the slot's share of the
// daily targets. Each iteration adds the (food, servings) pair that most
// reduces the largest remaining normalized deficit across calories, protein,
// carbs, and fat per added serving; ties go to the higher category weight,
// then the lexicographically smaller food id.
//
// A slot with zero eligible foods after tag exclusions and its category
// allowlist is flagged infeasible and the remaining slots are still filled;
// in that case the returned error wraps ErrPlanInfeasible and the plan stays
// usable.
func BuildMealPlan(targets NutrientTargets, rec Recommendation, cat *catalog.Catalog, cfg PlannerConfig) (MealPlan, error) {
	if targets.Calories <= 0 {
		return MealPlan{}, fmt.Errorf("%w: calorie target must be positive, got %.1f", ErrInvalidInput, targets.Calories)
	}

	eligible := eligibleCandidates(rec, cat)

	plan := MealPlan{}
	var infeasibleSlots []string

	for _, share := range cfg.SlotShares {
		slotTargets := NutrientTargets{
			Calories: targets.Calories * share.Share,
			ProteinG: targets.ProteinG * share.Share,
			CarbsG:   targets.CarbsG * share.Share,
			FatG:     targets.FatG * share.Share,
		}

		summary := SlotSummary{Slot: share.Slot, TargetCalories: round1(slotTargets.Calories)}

		slotEligible := filterBySlot(eligible, cfg.AllowedCategories[share.Slot])

		if len(slotEligible) == 0 {
			summary.Infeasible = true
			plan.Partial = true
			infeasibleSlots = append(infeasibleSlots, string(share.Slot))
			plan.Slots = append(plan.Slots, summary)
			continue
		}

		entries, slotTotals := fillSlot(share.Slot, slotTargets, slotEligible, cfg)
		plan.Entries = append(plan.Entries, entries...)
		plan.Totals = plan.Totals.Add(slotTotals, 1)
		summary.Calories = round1(slotTotals.Calories)
		plan.Slots = append(plan.Slots, summary)
	}

	if len(infeasibleSlots) > 0 {
		return plan, fmt.Errorf("%w: no eligible foods for slots: %s",
			ErrPlanInfeasible, strings.Join(infeasibleSlots, ", "))
	}
	return plan, nil
}

// eligibleCandidates filters the catalog down to foods in positively weighted
// categories that carry none of the excluded tags. The result is sorted by id
// so the greedy loop is deterministic.
func eligibleCandidates(rec Recommendation, cat *catalog.Catalog) []candidate {
	var out []candidate
	for _, item := range cat.Items() {
		weight := rec.CategoryWeights[item.Category]
		if weight <= 0 {
			continue
		}
		if item.HasAnyTag(rec.ExcludedTags) {
			continue
		}
		out = append(out, candidate{food: item, weight: weight})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].food.ID < out[j].food.ID })
	return out
}

// filterBySlot keeps only candidates in the slot's allowed categories. A nil
// allowlist means the slot accepts every category.
func filterBySlot(eligible []candidate, allowed []catalog.Category) []candidate {
	if allowed == nil {
		return eligible
	}
	var out []candidate
	for _, cand := range eligible {
		for _, c := range allowed {
			if cand.food.Category == c {
				out = append(out, cand)
				break
			}
		}
	}
	return out
}

// fillSlot greedily adds foods to one slot until its calories land inside the
// tolerance band, the food budget is exhausted, or no addition improves the
// deficit vector. A second pass then raises servings of the picked foods
// toward the slot's calorie target, so the per-serving scoring cannot strand
// the slot below its floor on small portions.
func fillSlot(slot MealSlot, slotTargets NutrientTargets, eligible []candidate, cfg PlannerConfig) ([]MealPlanEntry, catalog.Nutrients) {
	var entries []MealPlanEntry
	var totals catalog.Nutrients
	used := make(map[string]bool)

	calorieCap := slotTargets.Calories * (1 + cfg.CalorieTolerance)
	calorieFloor := slotTargets.Calories * (1 - cfg.CalorieTolerance)

	for len(entries) < cfg.MaxFoodsPerSlot {
		if totals.Calories >= calorieFloor {
			break
		}

		best, found := pickBest(slotTargets, totals, eligible, used, calorieCap, cfg)
		if !found {
			break
		}

		entries = append(entries, MealPlanEntry{
			FoodID:   best.food.ID,
			FoodName: best.food.Name,
			Slot:     slot,
			Servings: best.servings,
		})
		used[best.food.ID] = true
		totals = totals.Add(best.food.PerServing, best.servings)
	}

	return topUp(entries, totals, slotTargets, eligible, calorieCap, cfg)
}

// topUp grows servings of already-picked foods stepwise toward the slot's
// calorie target, never past the cap or the serving maximum. The greedy pass
// scores deficit reduction per serving, which favors many small portions;
// without this pass a slot can exhaust its food budget below the calorie
// floor. Each step takes the entry that most reduces the worst remaining
// deficit, ties going to the one adding more calories.
func topUp(entries []MealPlanEntry, totals catalog.Nutrients, slotTargets NutrientTargets, eligible []candidate, calorieCap float64, cfg PlannerConfig) ([]MealPlanEntry, catalog.Nutrients) {
	byID := make(map[string]catalog.FoodItem, len(eligible))
	for _, cand := range eligible {
		byID[cand.food.ID] = cand.food
	}

	for totals.Calories < slotTargets.Calories {
		best := -1
		var bestReduction, bestCalories float64

		for i, entry := range entries {
			food := byID[entry.FoodID]
			if entry.Servings+cfg.ServingStep > cfg.ServingMax+1e-9 {
				continue
			}
			add := food.PerServing.Calories * cfg.ServingStep
			if add <= 0 || totals.Calories+add > calorieCap {
				continue
			}

			added := totals.Add(food.PerServing, cfg.ServingStep)
			reduction := maxDeficit(slotTargets, totals) - maxDeficit(slotTargets, added)
			if best < 0 || reduction > bestReduction ||
				(reduction == bestReduction && add > bestCalories) {
				best, bestReduction, bestCalories = i, reduction, add
			}
		}

		if best < 0 {
			break
		}
		entries[best].Servings += cfg.ServingStep
		totals = totals.Add(byID[entries[best].FoodID].PerServing, cfg.ServingStep)
	}

	return entries, totals
}

type pick struct {
	food     catalog.FoodItem
	weight   float64
	servings float64
	score    float64
}

// pickBest scans every unused candidate at every allowed serving count and
// returns the one with the highest per-serving reduction of the largest
// remaining deficit. Ties break by category weight, then food id, then the
// larger serving count so the slot closes its calorie floor in fewer picks.
func pickBest(slotTargets NutrientTargets, totals catalog.Nutrients, eligible []candidate, used map[string]bool, calorieCap float64, cfg PlannerConfig) (pick, bool) {
	var best pick
	found := false

	for _, cand := range eligible {
		if used[cand.food.ID] {
			continue
		}
		for servings := cfg.ServingMin; servings <= cfg.ServingMax+1e-9; servings += cfg.ServingStep {
			added := totals.Add(cand.food.PerServing, servings)
			if added.Calories > calorieCap {
				break
			}

			reduction := (maxDeficit(slotTargets, totals) - maxDeficit(slotTargets, added)) / servings
			if reduction <= 0 {
				continue
			}

			p := pick{food: cand.food, weight: cand.weight, servings: servings, score: reduction}
			if !found || better(p, best) {
				best = p
				found = true
			}
		}
	}

	return best, found
}

func better(a, b pick) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	if a.weight != b.weight {
		return a.weight > b.weight
	}
	if a.food.ID != b.food.ID {
		return a.food.ID < b.food.ID
	}
	return a.servings > b.servings
}

// maxDeficit returns the largest remaining deficit across calories and the
// three macros, each normalized by its slot target so the dimensions are
// comparable. Surpluses count as zero.
func maxDeficit(slotTargets NutrientTargets, totals catalog.Nutrients) float64 {
	worst := 0.0
	for _, dim := range []struct{ target, actual float64 }{
		{slotTargets.Calories, totals.Calories},
		{slotTargets.ProteinG, totals.ProteinG},
		{slotTargets.CarbsG, totals.CarbsG},
		{slotTargets.FatG, totals.FatG},
	} {
		if dim.target <= 0 {
			continue
		}
		deficit := (dim.target - dim.actual) / dim.target
		if deficit > worst {
			worst = deficit
		}
	}
	return worst
}
