package server

import (
	"errors"
	"net/http"
	"time"

	"nutrigenie/internal/catalog"
	"nutrigenie/internal/engine"
	"nutrigenie/internal/utility"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

/* =================================================================================
							DTOs (Data Transfer Objects)
=================================================================================*/

// PlanRequest carries the profile the plan is generated for.
type PlanRequest struct {
	Profile engine.Profile `json:"profile"`
}

// PlanResponse is the full nutrition plan sent back to the client.
type PlanResponse struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`

	BMI      float64         `json:"bmi"`
	BMIClass engine.BMIClass `json:"bmi_class"`

	Targets         engine.NutrientTargets                  `json:"targets"`
	Recommendation  engine.Recommendation                   `json:"recommendation"`
	MealPlan        engine.MealPlan                         `json:"meal_plan"`
	FoodsByCategory map[catalog.Category][]catalog.FoodItem `json:"foods_by_category"`

	Warnings []string `json:"warnings,omitempty"`
}

// CompareRequest lists the foods to compare.
type CompareRequest struct {
	FoodIDs []string `json:"food_ids"`
}

// IntakeRequest carries a day's logged foods plus the profile that defines
// the targets they are measured against.
type IntakeRequest struct {
	Profile engine.Profile       `json:"profile"`
	Entries []engine.LoggedEntry `json:"entries"`
}

// IntakeResponse reports the aggregated intake and the ranked gaps.
type IntakeResponse struct {
	Totals   catalog.Nutrients      `json:"totals"`
	Targets  engine.NutrientTargets `json:"targets"`
	Gaps     []engine.GapResult     `json:"gaps"`
	Warnings []string               `json:"warnings,omitempty"`
}

// RecommendationsResponse pairs the detected gaps with gap-filling foods.
type RecommendationsResponse struct {
	SessionID   string              `json:"session_id"`
	CreatedAt   time.Time           `json:"created_at"`
	Gaps        []engine.GapResult  `json:"gaps"`
	Suggestions []engine.Suggestion `json:"suggestions"`
	Warnings    []string            `json:"warnings,omitempty"`
}

/*=================================================================================
									HANDLERS
=================================================================================*/

// GeneratePlanHandler is the main entry point.
// It orchestrates: Validation -> Metabolic Targets -> Rules -> Meal Plan -> Response.
func (s *Server) GeneratePlanHandler(c echo.Context) error {
	var req PlanRequest
	if err := c.Bind(&req); err != nil {
		log.Error().Err(err).Msg("Failed to bind plan request")
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	// 1. Validate profile before any calculation
	if err := req.Profile.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	// 2. Metabolic metrics
	bmi, err := engine.BMI(req.Profile.WeightKg, req.Profile.HeightCm)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	bmiClass := engine.ClassifyBMI(bmi)

	targets, err := engine.Targets(req.Profile)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	// 3. Rule table (never fails; unknown combinations fall back to defaults)
	rec := engine.Recommend(req.Profile, bmiClass)

	// 4. Build meal plan and category listing in PARALLEL
	// An optional ?tolerance query param widens or narrows the per-slot
	// calorie band; out-of-range values keep the default.
	cfg := engine.DefaultPlannerConfig()
	if tol := utility.ParseFloatParam(c.QueryParam("tolerance"), cfg.CalorieTolerance); tol > 0 && tol <= 0.5 {
		cfg.CalorieTolerance = tol
	}

	var plan engine.MealPlan
	var listing map[catalog.Category][]catalog.FoodItem
	var warnings []string

	g, _ := errgroup.WithContext(c.Request().Context())

	g.Go(func() error {
		var planErr error
		plan, planErr = engine.BuildMealPlan(targets, rec, s.catalog, cfg)
		if planErr != nil {
			if errors.Is(planErr, engine.ErrPlanInfeasible) {
				// Partial plans are returned, not dropped.
				warnings = append(warnings, planErr.Error())
				return nil
			}
			return planErr
		}
		return nil
	})

	g.Go(func() error {
		listing = engine.CategoryListing(rec, s.catalog, 5)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Failed to generate meal plan")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate plan"})
	}

	// 5. Build and return response
	return c.JSON(http.StatusOK, PlanResponse{
		SessionID:       uuid.New().String(),
		CreatedAt:       time.Now(),
		BMI:             bmi,
		BMIClass:        bmiClass,
		Targets:         targets,
		Recommendation:  rec,
		MealPlan:        plan,
		FoodsByCategory: listing,
		Warnings:        warnings,
	})
}

// SearchFoodsHandler performs catalog search. Empty queries return an empty
// list, not an error.
func (s *Server) SearchFoodsHandler(c echo.Context) error {
	query := c.QueryParam("q")
	limit := utility.ParseIntParam(c.QueryParam("limit"), 20)

	results := s.catalog.Search(query)
	if len(results) > limit {
		results = results[:limit]
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"query":   query,
		"results": results,
		"count":   len(results),
	})
}

// ListFoodsHandler lists the catalog, optionally filtered by category.
func (s *Server) ListFoodsHandler(c echo.Context) error {
	if category := c.QueryParam("category"); category != "" {
		foods := s.catalog.ByCategory(catalog.Category(category))
		return c.JSON(http.StatusOK, map[string]interface{}{
			"category": category,
			"foods":    foods,
			"count":    len(foods),
		})
	}

	foods := s.catalog.Items()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"foods": foods,
		"count": len(foods),
	})
}

// GetFoodHandler returns one food by id.
func (s *Server) GetFoodHandler(c echo.Context) error {
	id := c.Param("food_id")
	item, ok := s.catalog.Get(id)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Food not found: " + id})
	}
	return c.JSON(http.StatusOK, item)
}

// SimilarFoodsHandler lists same-category foods with comparable calories.
func (s *Server) SimilarFoodsHandler(c echo.Context) error {
	id := c.Param("food_id")
	limit := utility.ParseIntParam(c.QueryParam("limit"), 5)

	similar, err := engine.SimilarFoods(id, s.catalog, limit)
	if err != nil {
		if errors.Is(err, engine.ErrUnknownFood) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Food not found: " + id})
		}
		log.Error().Err(err).Msg("Similar food lookup failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Lookup failed"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"food_id": id,
		"similar": similar,
		"count":   len(similar),
	})
}

// CompareFoodsHandler runs a multi-way nutrient comparison.
func (s *Server) CompareFoodsHandler(c echo.Context) error {
	var req CompareRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	result, err := engine.CompareFoods(req.FoodIDs, s.catalog)
	if err != nil {
		if errors.Is(err, engine.ErrInsufficientInput) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		log.Error().Err(err).Msg("Comparison failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Comparison failed"})
	}

	return c.JSON(http.StatusOK, result)
}

// AnalyzeIntakeHandler aggregates a logged day and reports ranked gaps.
// Unknown food ids degrade gracefully: the analysis completes and the
// offending ids are reported as warnings.
func (s *Server) AnalyzeIntakeHandler(c echo.Context) error {
	_, dailyLog, targets, errResp := s.bindIntake(c)
	if errResp != nil {
		return errResp(c)
	}

	totals, _ := engine.AggregateIntake(dailyLog, s.catalog)

	gaps, err := engine.AnalyzeIntake(dailyLog, targets, s.catalog)
	var warnings []string
	if err != nil {
		if !errors.Is(err, engine.ErrUnknownFood) {
			log.Error().Err(err).Msg("Intake analysis failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Analysis failed"})
		}
		warnings = append(warnings, err.Error())
	}

	return c.JSON(http.StatusOK, IntakeResponse{
		Totals:   totals,
		Targets:  targets,
		Gaps:     gaps,
		Warnings: warnings,
	})
}

// SmartRecommendationsHandler combines the intake gaps with catalog search to
// suggest specific gap-filling foods.
func (s *Server) SmartRecommendationsHandler(c echo.Context) error {
	req, dailyLog, targets, errResp := s.bindIntake(c)
	if errResp != nil {
		return errResp(c)
	}

	bmi, _ := engine.BMI(req.Profile.WeightKg, req.Profile.HeightCm)
	rec := engine.Recommend(req.Profile, engine.ClassifyBMI(bmi))

	gaps, err := engine.AnalyzeIntake(dailyLog, targets, s.catalog)
	var warnings []string
	if err != nil {
		if !errors.Is(err, engine.ErrUnknownFood) {
			log.Error().Err(err).Msg("Intake analysis failed")
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Analysis failed"})
		}
		warnings = append(warnings, err.Error())
	}

	suggestions := engine.SuggestForGaps(gaps, s.catalog, rec.ExcludedTags, engine.DefaultRecommenderConfig())

	return c.JSON(http.StatusOK, RecommendationsResponse{
		SessionID:   uuid.New().String(),
		CreatedAt:   time.Now(),
		Gaps:        gaps,
		Suggestions: suggestions,
		Warnings:    warnings,
	})
}

/* =================================================================================
							INTERNAL LOGIC & HELPERS
=================================================================================*/

// bindIntake parses and validates an IntakeRequest, building the session's
// DailyLog and the profile's targets. On failure it returns a responder that
// writes the appropriate error.
func (s *Server) bindIntake(c echo.Context) (IntakeRequest, *engine.DailyLog, engine.NutrientTargets, func(echo.Context) error) {
	var req IntakeRequest
	if err := c.Bind(&req); err != nil {
		return req, nil, engine.NutrientTargets{}, func(c echo.Context) error {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
		}
	}

	if err := req.Profile.Validate(); err != nil {
		msg := err.Error()
		return req, nil, engine.NutrientTargets{}, func(c echo.Context) error {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
		}
	}

	targets, err := engine.Targets(req.Profile)
	if err != nil {
		msg := err.Error()
		return req, nil, engine.NutrientTargets{}, func(c echo.Context) error {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
		}
	}

	dailyLog := engine.NewDailyLog()
	for _, entry := range req.Entries {
		dailyLog.Append(entry)
	}

	return req, dailyLog, targets, nil
}
