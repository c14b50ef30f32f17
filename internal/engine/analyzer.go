package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"nutrigenie/internal/catalog"
)

// LoggedEntry is one consumed food with its serving count.
type LoggedEntry struct {
	FoodID   string    `json:"food_id"`
	Servings float64   `json:"servings"`
	LoggedAt time.Time `json:"logged_at,omitempty"`
}

// DailyLog is one session's food log. It is the only mutable state in the
// engine and belongs to a single caller; it is never shared between sessions.
type DailyLog struct {
	entries []LoggedEntry
}

// NewDailyLog returns an empty log.
func NewDailyLog() *DailyLog {
	return &DailyLog{}
}

// Append adds an entry to the log.
func (d *DailyLog) Append(entry LoggedEntry) {
	d.entries = append(d.entries, entry)
}

// Remove deletes the first entry with the given food id and reports whether
// anything was removed.
func (d *DailyLog) Remove(foodID string) bool {
	for i, e := range d.entries {
		if e.FoodID == foodID {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns a copy of the logged entries.
func (d *DailyLog) Entries() []LoggedEntry {
	out := make([]LoggedEntry, len(d.entries))
	copy(out, d.entries)
	return out
}

// GapStatus classifies one nutrient's delta against its tolerance band.
type GapStatus string

const (
	StatusDeficit  GapStatus = "deficit"
	StatusSurplus  GapStatus = "surplus"
	StatusOnTarget GapStatus = "on_target"
)

// GapResult is one tracked nutrient's target-vs-actual comparison.
// Delta is actual minus target: negative means deficit.
type GapResult struct {
	Nutrient string    `json:"nutrient"`
	Target   float64   `json:"target"`
	Actual   float64   `json:"actual"`
	Delta    float64   `json:"delta"`
	Status   GapStatus `json:"status"`
}

// gapTolerance is the fraction of the target inside which a nutrient counts
// as on target.
const gapTolerance = 0.10

// AggregateIntake sums nutrients across the log, scaling each food by its
// servings. Entries referencing unknown food ids are skipped and their ids
// returned; the aggregation always completes.
func AggregateIntake(log *DailyLog, cat *catalog.Catalog) (catalog.Nutrients, []string) {
	var totals catalog.Nutrients
	var skipped []string

	for _, entry := range log.entries {
		item, ok := cat.Get(entry.FoodID)
		if !ok {
			skipped = append(skipped, entry.FoodID)
			continue
		}
		totals = totals.Add(item.PerServing, entry.Servings)
	}

	return totals, skipped
}

// AnalyzeIntake compares a day's logged intake against the targets and
// returns one GapResult per tracked nutrient, sorted by |delta| descending —
// consumers rely on this ordering for "top gaps" display.
//
// Unknown food ids do not abort the analysis: the gaps are computed from the
// remaining entries and the returned error wraps ErrUnknownFood naming the
// skipped ids.
func AnalyzeIntake(log *DailyLog, targets NutrientTargets, cat *catalog.Catalog) ([]GapResult, error) {
	totals, skipped := AggregateIntake(log, cat)

	gaps := []GapResult{
		gapFor("calories", targets.Calories, totals.Calories),
		gapFor("protein_g", targets.ProteinG, totals.ProteinG),
		gapFor("carbs_g", targets.CarbsG, totals.CarbsG),
		gapFor("fat_g", targets.FatG, totals.FatG),
		gapFor("fiber_g", targets.FiberG, totals.FiberG),
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		di, dj := math.Abs(gaps[i].Delta), math.Abs(gaps[j].Delta)
		if di != dj {
			return di > dj
		}
		return gaps[i].Nutrient < gaps[j].Nutrient
	})

	if len(skipped) > 0 {
		return gaps, fmt.Errorf("%w: skipped ids: %s", ErrUnknownFood, strings.Join(skipped, ", "))
	}
	return gaps, nil
}

func gapFor(nutrient string, target, actual float64) GapResult {
	gap := GapResult{
		Nutrient: nutrient,
		Target:   round1(target),
		Actual:   round1(actual),
		Delta:    round1(actual - target),
	}

	switch {
	case target == 0:
		if actual == 0 {
			gap.Status = StatusOnTarget
		} else {
			gap.Status = StatusSurplus
		}
	case math.Abs(gap.Delta) <= target*gapTolerance:
		gap.Status = StatusOnTarget
	case gap.Delta < 0:
		gap.Status = StatusDeficit
	default:
		gap.Status = StatusSurplus
	}

	return gap
}
