package engine

import (
	"fmt"
	"math"
)

// BMIClass buckets a BMI value into the standard weight-status categories.
type BMIClass string

const (
	BMIUnderweight BMIClass = "underweight"
	BMINormal      BMIClass = "normal"
	BMIOverweight  BMIClass = "overweight"
	BMIObese       BMIClass = "obese"
)

// activityMultipliers maps activity level to its TDEE multiplier. This is the
// single source of truth for valid activity levels; Profile.Validate checks
// against it.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// goalAdjustments scale TDEE into the goal-adjusted calorie target: a 15%
// deficit for weight loss, a 10-15% surplus for gain and muscle building.
var goalAdjustments = map[Goal]float64{
	GoalWeightLoss:     0.85,
	GoalWeightGain:     1.10,
	GoalMuscleBuilding: 1.15,
	GoalMaintenance:    1.0,
}

// macroRatio is a goal's protein/carbs/fat split. The three fractions sum to
// exactly 1.0 so the derived gram amounts always reproduce the calorie total.
type macroRatio struct {
	protein float64
	carbs   float64
	fat     float64
}

var macroSplits = map[Goal]macroRatio{
	GoalMaintenance:    {protein: 0.25, carbs: 0.50, fat: 0.25},
	GoalWeightLoss:     {protein: 0.30, carbs: 0.40, fat: 0.30},
	GoalWeightGain:     {protein: 0.20, carbs: 0.55, fat: 0.25},
	GoalMuscleBuilding: {protein: 0.35, carbs: 0.40, fat: 0.25},
}

// fiberGPer1000Kcal is the dietary-guideline fiber target density.
const fiberGPer1000Kcal = 14.0

// NutrientTargets is a day's calorie and macronutrient targets.
// Invariant: ProteinG*4 + CarbsG*4 + FatG*9 stays within 5% of Calories.
type NutrientTargets struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
}

// BMI computes body mass index from weight in kg and height in cm, rounded to
// one decimal.
func BMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 {
		return 0, fmt.Errorf("%w: weight must be positive, got %.1f", ErrInvalidInput, weightKg)
	}
	if heightCm <= 0 {
		return 0, fmt.Errorf("%w: height must be positive, got %.1f", ErrInvalidInput, heightCm)
	}
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10, nil
}

// ClassifyBMI buckets a BMI value using the standard WHO thresholds.
func ClassifyBMI(bmi float64) BMIClass {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// BMR computes the basal metabolic rate via Mifflin-St Jeor. The sex constant
// is +5 for male, -161 for female; "other" uses the midpoint.
func BMR(p Profile) float64 {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	switch p.Gender {
	case GenderMale:
		bmr += 5
	case GenderFemale:
		bmr -= 161
	default:
		bmr -= 78
	}
	return bmr
}

// CalorieNeeds computes the daily calorie target: BMR scaled by the activity
// multiplier, then adjusted for the goal.
func CalorieNeeds(p Profile) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	tdee := BMR(p) * activityMultipliers[p.ActivityLevel]
	return math.Round(tdee * goalAdjustments[p.Goal]), nil
}

// MacroSplit distributes a calorie target into gram targets using the goal's
// percentage split. Gram amounts are derived straight from the percentages,
// so the calorie identity holds by construction.
func MacroSplit(calories float64, goal Goal) (NutrientTargets, error) {
	if calories <= 0 {
		return NutrientTargets{}, fmt.Errorf("%w: calories must be positive, got %.1f", ErrInvalidInput, calories)
	}
	ratio, ok := macroSplits[goal]
	if !ok {
		return NutrientTargets{}, fmt.Errorf("%w: unknown goal %q", ErrInvalidInput, goal)
	}

	return NutrientTargets{
		Calories: calories,
		ProteinG: round1(calories * ratio.protein / 4),
		CarbsG:   round1(calories * ratio.carbs / 4),
		FatG:     round1(calories * ratio.fat / 9),
		FiberG:   round1(calories / 1000 * fiberGPer1000Kcal),
	}, nil
}

// Targets derives the full daily nutrient targets from a profile.
func Targets(p Profile) (NutrientTargets, error) {
	calories, err := CalorieNeeds(p)
	if err != nil {
		return NutrientTargets{}, err
	}
	return MacroSplit(calories, p.Goal)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
