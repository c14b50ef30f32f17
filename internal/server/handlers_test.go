package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrigenie/internal/catalog"
	"nutrigenie/internal/engine"
)

/* =================================================================================
									HELPERS
=================================================================================*/

func newTestServer() (*Server, *echo.Echo) {
	s := &Server{
		port:    8080,
		catalog: catalog.Default(),
	}
	return s, echo.New()
}

func jsonRequest(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const validProfileJSON = `{
	"age": 30,
	"weight_kg": 70,
	"height_cm": 175,
	"gender": "male",
	"activity_level": "moderate",
	"goal": "maintenance"
}`

/* =================================================================================
									TESTS
=================================================================================*/

func TestGeneratePlanHandler(t *testing.T) {
	s, e := newTestServer()
	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/plan", `{"profile": `+validProfileJSON+`}`)

	require.NoError(t, s.GeneratePlanHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.SessionID)
	assert.False(t, resp.CreatedAt.IsZero())
	assert.Equal(t, 22.9, resp.BMI)
	assert.Equal(t, engine.BMINormal, resp.BMIClass)
	assert.Equal(t, 2556.0, resp.Targets.Calories)
	assert.NotEmpty(t, resp.MealPlan.Entries)
	assert.NotEmpty(t, resp.FoodsByCategory)
	assert.NotEmpty(t, resp.Recommendation.Tips)
}

func TestGeneratePlanHandler_InvalidProfile(t *testing.T) {
	s, e := newTestServer()
	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/plan",
		`{"profile": {"age": 0, "weight_kg": 70, "height_cm": 175, "gender": "male", "activity_level": "moderate", "goal": "maintenance"}}`)

	require.NoError(t, s.GeneratePlanHandler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGeneratePlanHandler_MalformedBody(t *testing.T) {
	s, e := newTestServer()
	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/plan", `{not json`)

	require.NoError(t, s.GeneratePlanHandler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGeneratePlanHandler_ExclusionsApplied(t *testing.T) {
	s, e := newTestServer()
	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/plan", `{"profile": {
		"age": 45, "weight_kg": 82, "height_cm": 170,
		"gender": "female", "activity_level": "light", "goal": "weight_loss",
		"health_conditions": ["diabetes", "hypertension"]
	}}`)

	require.NoError(t, s.GeneratePlanHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	for _, entry := range resp.MealPlan.Entries {
		item, ok := s.catalog.Get(entry.FoodID)
		require.True(t, ok)
		assert.False(t, item.HasAnyTag(resp.Recommendation.ExcludedTags),
			"planned food %s violates an exclusion", entry.FoodID)
	}
}

func TestSearchFoodsHandler(t *testing.T) {
	s, e := newTestServer()
	c, rec := jsonRequest(e, http.MethodGet, "/api/v1/foods/search?q=rice", "")

	require.NoError(t, s.SearchFoodsHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Query   string             `json:"query"`
		Results []catalog.FoodItem `json:"results"`
		Count   int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "rice", resp.Query)
	assert.Equal(t, len(resp.Results), resp.Count)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, "brown-rice", resp.Results[0].ID)
}

func TestSearchFoodsHandler_LimitApplied(t *testing.T) {
	s, e := newTestServer()
	c, rec := jsonRequest(e, http.MethodGet, "/api/v1/foods/search?q=a&limit=3", "")

	require.NoError(t, s.SearchFoodsHandler(c))

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.LessOrEqual(t, resp.Count, 3)
}

func TestSearchFoodsHandler_EmptyQuery(t *testing.T) {
	s, e := newTestServer()
	c, rec := jsonRequest(e, http.MethodGet, "/api/v1/foods/search", "")

	require.NoError(t, s.SearchFoodsHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
}

func TestListFoodsHandler(t *testing.T) {
	s, e := newTestServer()
	c, rec := jsonRequest(e, http.MethodGet, "/api/v1/foods", "")

	require.NoError(t, s.ListFoodsHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Foods []catalog.FoodItem `json:"foods"`
		Count int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, s.catalog.Len(), resp.Count)
}

func TestListFoodsHandler_CategoryFilter(t *testing.T) {
	s, e := newTestServer()
	c, rec := jsonRequest(e, http.MethodGet, "/api/v1/foods?category=fruit", "")

	require.NoError(t, s.ListFoodsHandler(c))

	var resp struct {
		Foods []catalog.FoodItem `json:"foods"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Foods)
	for _, item := range resp.Foods {
		assert.Equal(t, catalog.CategoryFruit, item.Category)
	}
}

func TestGetFoodHandler(t *testing.T) {
	s, e := newTestServer()

	c, rec := jsonRequest(e, http.MethodGet, "/api/v1/foods/banana", "")
	c.SetParamNames("food_id")
	c.SetParamValues("banana")

	require.NoError(t, s.GetFoodHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var item catalog.FoodItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, "Banana", item.Name)
}

func TestGetFoodHandler_NotFound(t *testing.T) {
	s, e := newTestServer()

	c, rec := jsonRequest(e, http.MethodGet, "/api/v1/foods/unicorn-steak", "")
	c.SetParamNames("food_id")
	c.SetParamValues("unicorn-steak")

	require.NoError(t, s.GetFoodHandler(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGeneratePlanHandler_ToleranceParam(t *testing.T) {
	s, e := newTestServer()
	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/plan?tolerance=0.25", `{"profile": `+validProfileJSON+`}`)

	require.NoError(t, s.GeneratePlanHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	for _, slot := range resp.MealPlan.Slots {
		assert.LessOrEqual(t, slot.Calories, slot.TargetCalories*1.25+0.1,
			"slot %s exceeds the widened calorie band", slot.Slot)
	}
}

func TestSimilarFoodsHandler(t *testing.T) {
	s, e := newTestServer()

	c, rec := jsonRequest(e, http.MethodGet, "/api/v1/foods/chicken-breast/similar?limit=3", "")
	c.SetParamNames("food_id")
	c.SetParamValues("chicken-breast")

	require.NoError(t, s.SimilarFoodsHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		FoodID  string             `json:"food_id"`
		Similar []catalog.FoodItem `json:"similar"`
		Count   int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "chicken-breast", resp.FoodID)
	require.Len(t, resp.Similar, 3)
	assert.Equal(t, resp.Count, len(resp.Similar))
	for _, item := range resp.Similar {
		assert.Equal(t, catalog.CategoryProtein, item.Category)
		assert.NotEqual(t, "chicken-breast", item.ID)
	}
}

func TestSimilarFoodsHandler_NotFound(t *testing.T) {
	s, e := newTestServer()

	c, rec := jsonRequest(e, http.MethodGet, "/api/v1/foods/unicorn-steak/similar", "")
	c.SetParamNames("food_id")
	c.SetParamValues("unicorn-steak")

	require.NoError(t, s.SimilarFoodsHandler(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCompareFoodsHandler(t *testing.T) {
	s, e := newTestServer()
	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/compare",
		`{"food_ids": ["chicken-breast", "tuna-canned"]}`)

	require.NoError(t, s.CompareFoodsHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var result engine.ComparisonResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Nutrients, 7)
	assert.Contains(t, result.Scores, "chicken-breast")
}

func TestCompareFoodsHandler_TooFewFoods(t *testing.T) {
	s, e := newTestServer()
	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/compare", `{"food_ids": ["banana"]}`)

	require.NoError(t, s.CompareFoodsHandler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeIntakeHandler(t *testing.T) {
	s, e := newTestServer()
	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/intake/analyze", `{
		"profile": `+validProfileJSON+`,
		"entries": [
			{"food_id": "oats-rolled", "servings": 1},
			{"food_id": "banana", "servings": 1}
		]
	}`)

	require.NoError(t, s.AnalyzeIntakeHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp IntakeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.InDelta(t, 408, resp.Totals.Calories, 0.5)
	assert.Equal(t, 2556.0, resp.Targets.Calories)
	assert.Len(t, resp.Gaps, 5)
	assert.Empty(t, resp.Warnings)
}

func TestAnalyzeIntakeHandler_UnknownFoodWarns(t *testing.T) {
	s, e := newTestServer()
	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/intake/analyze", `{
		"profile": `+validProfileJSON+`,
		"entries": [{"food_id": "moon-cheese", "servings": 2}]
	}`)

	require.NoError(t, s.AnalyzeIntakeHandler(c))
	require.Equal(t, http.StatusOK, rec.Code, "unknown foods degrade to warnings, not failures")

	var resp IntakeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Warnings)
	assert.Contains(t, resp.Warnings[0], "moon-cheese")
	assert.Len(t, resp.Gaps, 5)
}

func TestAnalyzeIntakeHandler_InvalidProfile(t *testing.T) {
	s, e := newTestServer()
	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/intake/analyze", `{
		"profile": {"age": -1},
		"entries": []
	}`)

	require.NoError(t, s.AnalyzeIntakeHandler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSmartRecommendationsHandler(t *testing.T) {
	s, e := newTestServer()

	// An empty log leaves every nutrient in deficit, so suggestions follow.
	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/recommendations", `{
		"profile": `+validProfileJSON+`,
		"entries": []
	}`)

	require.NoError(t, s.SmartRecommendationsHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RecommendationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.SessionID)
	assert.Len(t, resp.Gaps, 5)
	require.NotEmpty(t, resp.Suggestions)
	for _, suggestion := range resp.Suggestions {
		assert.NotEmpty(t, suggestion.Justification)
	}
}

func TestSmartRecommendationsHandler_RespectsConditions(t *testing.T) {
	s, e := newTestServer()
	c, rec := jsonRequest(e, http.MethodPost, "/api/v1/recommendations", `{
		"profile": {
			"age": 50, "weight_kg": 80, "height_cm": 178,
			"gender": "male", "activity_level": "light", "goal": "maintenance",
			"health_conditions": ["lactose_intolerance"]
		},
		"entries": []
	}`)

	require.NoError(t, s.SmartRecommendationsHandler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RecommendationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	for _, suggestion := range resp.Suggestions {
		assert.False(t, suggestion.Food.HasTag(catalog.TagContainsLactose),
			"suggested food %s contains lactose", suggestion.Food.ID)
	}
}
