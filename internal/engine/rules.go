package engine

import (
	"fmt"
	"math"

	"nutrigenie/internal/catalog"
)

// Recommendation is the rule table's output for one profile: soft category
// weights for the optimizer and suggestion listing, hard tag exclusions,
// meal-timing windows, a hydration target, and textual guidance.
type Recommendation struct {
	CategoryWeights map[catalog.Category]float64 `json:"category_weights"`
	ExcludedTags    []catalog.Tag                `json:"excluded_tags,omitempty"`

	Meals        int     `json:"meals"`
	Snacks       int     `json:"snacks"`
	SpacingHours float64 `json:"spacing_hours"`

	HydrationMl   float64 `json:"hydration_ml"`
	HydrationCups int     `json:"hydration_cups"`

	Tips []string `json:"tips"`
}

// Recommend resolves the rule table for a profile. Every input combination
// resolves deterministically: the function starts from the default
// maintenance row and applies adjustments, so it never fails. An invalid
// profile simply gets the default row.
func Recommend(p Profile, bmiClass BMIClass) Recommendation {
	rec := defaultRow()

	applyBMIRules(&rec, bmiClass)
	applyActivityRules(&rec, p.ActivityLevel)
	applyGoalRules(&rec, p.Goal)
	applyConditionRules(&rec, p)
	applyTraitRules(&rec, p)
	applyAgeRules(&rec, p.Age)

	rec.HydrationMl = hydrationTarget(p)
	rec.HydrationCups = int(math.Round(rec.HydrationMl / 240))
	rec.Tips = append(rec.Tips,
		"Aim for 5-7 servings of fruits and vegetables daily",
		fmt.Sprintf("Drink about %.1fL of water per day", rec.HydrationMl/1000),
		"Keep meal timing consistent to support your circadian rhythm",
	)

	return rec
}

// defaultRow is the "none/maintenance" fallback every profile starts from.
func defaultRow() Recommendation {
	return Recommendation{
		CategoryWeights: map[catalog.Category]float64{
			catalog.CategoryProtein:   1.0,
			catalog.CategoryCarb:      1.0,
			catalog.CategoryVegetable: 1.0,
			catalog.CategoryFruit:     1.0,
			catalog.CategoryFat:       1.0,
			catalog.CategorySuperfood: 0.5,
			catalog.CategoryOther:     0.25,
		},
		Meals:        3,
		Snacks:       1,
		SpacingHours: 4,
	}
}

func applyBMIRules(rec *Recommendation, class BMIClass) {
	switch class {
	case BMIUnderweight:
		rec.CategoryWeights[catalog.CategoryFat] += 0.5
		rec.CategoryWeights[catalog.CategoryCarb] += 0.5
		rec.Snacks = 2
		rec.SpacingHours = 3
		rec.Tips = append(rec.Tips,
			"Focus on healthy weight gain with nutrient-dense foods",
			"Eat frequent, smaller meals throughout the day",
		)
	case BMIOverweight, BMIObese:
		rec.CategoryWeights[catalog.CategoryVegetable] += 0.75
		rec.CategoryWeights[catalog.CategoryProtein] += 0.25
		rec.CategoryWeights[catalog.CategoryOther] = 0
		rec.ExcludedTags = appendTag(rec.ExcludedTags, catalog.TagProcessed)
		rec.Tips = append(rec.Tips,
			"Aim for a moderate, sustainable caloric deficit",
			"Practice portion control and drink water before meals",
		)
	default:
		rec.Tips = append(rec.Tips, "Maintain your healthy weight with balanced nutrition")
	}
}

func applyActivityRules(rec *Recommendation, level ActivityLevel) {
	switch level {
	case ActivityActive, ActivityVeryActive:
		rec.CategoryWeights[catalog.CategoryProtein] += 0.5
		rec.CategoryWeights[catalog.CategorySuperfood] += 0.25
		rec.Tips = append(rec.Tips,
			"Consume carbs 1-2 hours before intense exercise",
			"Eat protein and carbs within 30 minutes after training",
		)
	case ActivitySedentary:
		rec.CategoryWeights[catalog.CategoryVegetable] += 0.25
		rec.Tips = append(rec.Tips,
			"Light daily activity helps boost metabolism",
			"Favor fiber-rich foods to maintain satiety",
		)
	}
}

func applyGoalRules(rec *Recommendation, goal Goal) {
	switch goal {
	case GoalMuscleBuilding:
		rec.CategoryWeights[catalog.CategoryProtein] += 0.75
		rec.Snacks = 2
	case GoalWeightLoss:
		rec.CategoryWeights[catalog.CategoryVegetable] += 0.5
	case GoalWeightGain:
		rec.CategoryWeights[catalog.CategoryCarb] += 0.5
		rec.CategoryWeights[catalog.CategoryFat] += 0.25
		rec.Snacks = 2
	}
}

func applyConditionRules(rec *Recommendation, p Profile) {
	if p.HasCondition(ConditionDiabetes) {
		rec.ExcludedTags = appendTag(rec.ExcludedTags, catalog.TagHighSugar)
		rec.CategoryWeights[catalog.CategoryFruit] -= 0.5
		rec.SpacingHours = 3.5
		rec.Tips = append(rec.Tips,
			"Pair carbohydrates with protein and keep meal times consistent",
			"Choose low glycemic index carbohydrate sources",
		)
	}
	if p.HasCondition(ConditionHypertension) {
		rec.ExcludedTags = appendTag(rec.ExcludedTags, catalog.TagHighSodium)
		rec.CategoryWeights[catalog.CategoryVegetable] += 0.25
		rec.Tips = append(rec.Tips,
			"Keep sodium under 1500mg per day and favor potassium-rich foods",
		)
	}
	if p.HasCondition(ConditionLactoseIntolerance) {
		rec.ExcludedTags = appendTag(rec.ExcludedTags, catalog.TagContainsLactose)
		rec.Tips = append(rec.Tips,
			"Choose lactose-free dairy or plant-based alternatives",
		)
	}
}

func applyTraitRules(rec *Recommendation, p Profile) {
	if p.HasTrait(TraitGlutenSensitivity) {
		rec.ExcludedTags = appendTag(rec.ExcludedTags, catalog.TagContainsGluten)
		rec.Tips = append(rec.Tips, "Choose certified gluten-free grains")
	}
	if p.HasTrait(TraitObesityRisk) {
		rec.ExcludedTags = appendTag(rec.ExcludedTags, catalog.TagProcessed)
		rec.CategoryWeights[catalog.CategorySuperfood] += 0.25
		rec.Tips = append(rec.Tips,
			"Watch portion sizes and calorie density closely",
		)
	}
	if p.HasTrait(TraitHighMetabolism) {
		rec.CategoryWeights[catalog.CategoryCarb] += 0.25
		rec.CategoryWeights[catalog.CategoryFat] += 0.25
		rec.Snacks = 2
		rec.Tips = append(rec.Tips,
			"Eat more frequent, calorie-dense meals for sustained energy",
		)
	}
}

func applyAgeRules(rec *Recommendation, age int) {
	switch {
	case age > 50:
		rec.Tips = append(rec.Tips,
			"Ensure adequate calcium and vitamin D for bone health",
			"Include omega-3 fatty acids for brain health",
		)
	case age > 0 && age < 25:
		rec.Tips = append(rec.Tips,
			"Ensure adequate protein for growth and development",
		)
	}
}

// hydrationTarget computes the daily water target in ml: 35 ml/kg adjusted
// upward for activity and for older adults.
func hydrationTarget(p Profile) float64 {
	base := p.WeightKg * 35

	switch p.ActivityLevel {
	case ActivityActive, ActivityVeryActive:
		base *= 1.2
	case ActivityModerate:
		base *= 1.1
	}

	if p.Age > 65 {
		base *= 1.1
	}

	return math.Round(base)
}

func appendTag(tags []catalog.Tag, t catalog.Tag) []catalog.Tag {
	for _, existing := range tags {
		if existing == t {
			return tags
		}
	}
	return append(tags, t)
}
