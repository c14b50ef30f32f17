package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrigenie/internal/catalog"
)

func TestCompareFoods_TwoWay(t *testing.T) {
	cat := catalog.Default()

	// Chicken: 198 kcal, 37.2g protein, 89mg sodium.
	// Tuna:    116 kcal, 25.5g protein, 247mg sodium.
	result, err := CompareFoods([]string{"chicken-breast", "tuna-canned"}, cat)
	require.NoError(t, err)

	assert.Equal(t, []string{"chicken-breast", "tuna-canned"}, result.FoodIDs)
	require.Len(t, result.Nutrients, 7)

	winners := map[string]NutrientComparison{}
	for _, row := range result.Nutrients {
		winners[row.Nutrient] = row
	}

	assert.Equal(t, "tuna-canned", winners["calories"].WinnerID)
	assert.Equal(t, "chicken-breast", winners["protein_g"].WinnerID)
	assert.Equal(t, "chicken-breast", winners["sodium_mg"].WinnerID)

	// Both have zero fiber and zero sugar: ties, no winner.
	assert.True(t, winners["fiber_g"].Tie)
	assert.Empty(t, winners["fiber_g"].WinnerID)
	assert.True(t, winners["sugar_g"].Tie)

	// Undirected nutrients are reported for context only.
	assert.Empty(t, winners["carbs_g"].WinnerID)
	assert.False(t, winners["carbs_g"].Tie)
	assert.Empty(t, winners["fat_g"].WinnerID)

	assert.Equal(t, 2, result.Scores["chicken-breast"])
	assert.Equal(t, 1, result.Scores["tuna-canned"])
}

func TestCompareFoods_ValuesReported(t *testing.T) {
	result, err := CompareFoods([]string{"chicken-breast", "tuna-canned"}, catalog.Default())
	require.NoError(t, err)

	for _, row := range result.Nutrients {
		if row.Nutrient == "protein_g" {
			assert.Equal(t, 37.2, row.Values["chicken-breast"])
			assert.Equal(t, 25.5, row.Values["tuna-canned"])
		}
	}
}

func TestCompareFoods_SelfComparisonAllTies(t *testing.T) {
	result, err := CompareFoods([]string{"banana", "banana"}, catalog.Default())
	require.NoError(t, err)

	for _, row := range result.Nutrients {
		assert.Empty(t, row.WinnerID, "nutrient %s should have no winner", row.Nutrient)
		if row.Direction != NoDirection {
			assert.True(t, row.Tie, "nutrient %s should be a tie", row.Nutrient)
		}
	}
	assert.Equal(t, 0, result.Scores["banana"])
}

func TestCompareFoods_UnknownIDsDropped(t *testing.T) {
	result, err := CompareFoods([]string{"chicken-breast", "unicorn-steak", "tuna-canned"}, catalog.Default())
	require.NoError(t, err)

	assert.Equal(t, []string{"chicken-breast", "tuna-canned"}, result.FoodIDs)
}

func TestCompareFoods_InsufficientInput(t *testing.T) {
	cat := catalog.Default()

	_, err := CompareFoods([]string{"chicken-breast"}, cat)
	assert.ErrorIs(t, err, ErrInsufficientInput)

	_, err = CompareFoods([]string{"chicken-breast", "unicorn-steak"}, cat)
	require.ErrorIs(t, err, ErrInsufficientInput)
	assert.Contains(t, err.Error(), "unicorn-steak")

	_, err = CompareFoods(nil, cat)
	assert.ErrorIs(t, err, ErrInsufficientInput)
}

func TestSimilarFoods(t *testing.T) {
	// Chicken breast is 198 kcal; same-category foods within the 30% window
	// are lean beef (216), lentils (232), salmon (249), and eggs (143),
	// ordered by calorie distance.
	similar, err := SimilarFoods("chicken-breast", catalog.Default(), 0)
	require.NoError(t, err)

	ids := make([]string, len(similar))
	for i, item := range similar {
		ids[i] = item.ID
	}
	assert.Equal(t, []string{"lean-beef", "lentils-cooked", "salmon-fillet", "eggs"}, ids)

	for _, item := range similar {
		assert.Equal(t, catalog.CategoryProtein, item.Category)
	}
}

func TestSimilarFoods_Limit(t *testing.T) {
	similar, err := SimilarFoods("chicken-breast", catalog.Default(), 2)
	require.NoError(t, err)

	require.Len(t, similar, 2)
	assert.Equal(t, "lean-beef", similar[0].ID)
}

func TestSimilarFoods_LightFoodUsesAbsoluteWindow(t *testing.T) {
	// Spinach is only 20 kcal; a purely relative window would find nothing,
	// the absolute floor still surfaces other light vegetables.
	similar, err := SimilarFoods("spinach", catalog.Default(), 0)
	require.NoError(t, err)
	require.NotEmpty(t, similar)

	assert.Equal(t, "mixed-salad", similar[0].ID)
	for _, item := range similar {
		assert.Equal(t, catalog.CategoryVegetable, item.Category)
		assert.NotEqual(t, "spinach", item.ID)
	}
}

func TestSimilarFoods_UnknownID(t *testing.T) {
	_, err := SimilarFoods("unicorn-steak", catalog.Default(), 5)
	assert.ErrorIs(t, err, ErrUnknownFood)
}

func TestCompareFoods_ThreeWay(t *testing.T) {
	// Spinach has the fewest calories and most fiber of the trio.
	result, err := CompareFoods([]string{"chicken-breast", "tuna-canned", "spinach"}, catalog.Default())
	require.NoError(t, err)

	for _, row := range result.Nutrients {
		switch row.Nutrient {
		case "calories", "fiber_g":
			assert.Equal(t, "spinach", row.WinnerID)
		case "protein_g":
			assert.Equal(t, "chicken-breast", row.WinnerID)
		}
	}
}
