/*
Package engine implements the nutrition recommendation core: metabolic
targets, recommendation rules, meal plan optimization, intake analysis, food
comparison, and gap-filling suggestions.

Every operation is a pure function over immutable inputs. The engine holds no
process-wide state; the catalog is read-only and the DailyLog belongs to the
caller's session.
*/
package engine

import "fmt"

// Gender is the biological sex used by the BMR formula.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel describes habitual physical activity.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Goal is the user's primary fitness goal.
type Goal string

const (
	GoalWeightLoss     Goal = "weight_loss"
	GoalWeightGain     Goal = "weight_gain"
	GoalMuscleBuilding Goal = "muscle_building"
	GoalMaintenance    Goal = "maintenance"
)

// HealthCondition is a diagnosed condition affecting food rules.
type HealthCondition string

const (
	ConditionNone               HealthCondition = "none"
	ConditionDiabetes           HealthCondition = "diabetes"
	ConditionHypertension       HealthCondition = "hypertension"
	ConditionLactoseIntolerance HealthCondition = "lactose_intolerance"
)

// GeneticTrait is a genetic predisposition affecting food rules.
type GeneticTrait string

const (
	TraitNone              GeneticTrait = "none"
	TraitGlutenSensitivity GeneticTrait = "gluten_sensitivity"
	TraitObesityRisk       GeneticTrait = "obesity_risk"
	TraitHighMetabolism    GeneticTrait = "high_metabolism"
)

// Profile is one user's biometric and health snapshot. Created once per
// session and treated as immutable for the duration of a computation.
type Profile struct {
	Age              int               `json:"age"`
	WeightKg         float64           `json:"weight_kg"`
	HeightCm         float64           `json:"height_cm"`
	Gender           Gender            `json:"gender"`
	ActivityLevel    ActivityLevel     `json:"activity_level"`
	HealthConditions []HealthCondition `json:"health_conditions,omitempty"`
	GeneticTraits    []GeneticTrait    `json:"genetic_traits,omitempty"`
	Goal             Goal              `json:"goal"`
}

var validGenders = map[Gender]bool{
	GenderMale:   true,
	GenderFemale: true,
	GenderOther:  true,
}

var validGoals = map[Goal]bool{
	GoalWeightLoss:     true,
	GoalWeightGain:     true,
	GoalMuscleBuilding: true,
	GoalMaintenance:    true,
}

// Validate rejects out-of-range or unknown profile values before any
// calculation runs.
func (p Profile) Validate() error {
	if p.Age <= 0 {
		return fmt.Errorf("%w: age must be positive, got %d", ErrInvalidInput, p.Age)
	}
	if p.WeightKg <= 0 {
		return fmt.Errorf("%w: weight must be positive, got %.1f", ErrInvalidInput, p.WeightKg)
	}
	if p.HeightCm <= 0 {
		return fmt.Errorf("%w: height must be positive, got %.1f", ErrInvalidInput, p.HeightCm)
	}
	if !validGenders[p.Gender] {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, p.Gender)
	}
	if _, ok := activityMultipliers[p.ActivityLevel]; !ok {
		return fmt.Errorf("%w: unknown activity level %q", ErrInvalidInput, p.ActivityLevel)
	}
	if !validGoals[p.Goal] {
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidInput, p.Goal)
	}
	return nil
}

// HasCondition reports whether the profile lists the given condition.
func (p Profile) HasCondition(c HealthCondition) bool {
	for _, hc := range p.HealthConditions {
		if hc == c {
			return true
		}
	}
	return false
}

// HasTrait reports whether the profile lists the given genetic trait.
func (p Profile) HasTrait(t GeneticTrait) bool {
	for _, gt := range p.GeneticTraits {
		if gt == t {
			return true
		}
	}
	return false
}
