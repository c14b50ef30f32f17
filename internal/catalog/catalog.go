/*
Package catalog holds the structured food dataset the engine works against.
The catalog is built once, validated at load time, and read-only afterwards,
so it is safe to share across concurrent requests.
*/
package catalog

import (
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Category classifies a food for recommendation weighting.
type Category string

const (
	CategoryProtein   Category = "protein"
	CategoryCarb      Category = "carb"
	CategoryVegetable Category = "vegetable"
	CategoryFruit     Category = "fruit"
	CategoryFat       Category = "fat"
	CategorySuperfood Category = "superfood"
	CategoryOther     Category = "other"
)

// Categories lists every valid category in a stable order.
var Categories = []Category{
	CategoryProtein,
	CategoryCarb,
	CategoryVegetable,
	CategoryFruit,
	CategoryFat,
	CategorySuperfood,
	CategoryOther,
}

// Tag marks a property used by hard exclusion filters.
type Tag string

const (
	TagContainsGluten  Tag = "contains_gluten"
	TagContainsLactose Tag = "contains_lactose"
	TagHighSugar       Tag = "high_sugar"
	TagHighSodium      Tag = "high_sodium"
	TagProcessed       Tag = "processed"
)

// Nutrients holds per-serving nutrient amounts. The first block is tracked by
// the analyzer and comparator; the micronutrient block is optional data
// carried through for display.
type Nutrients struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
	SugarG   float64 `json:"sugar_g"`
	SodiumMg float64 `json:"sodium_mg"`

	VitaminCMg  float64 `json:"vitamin_c_mg,omitempty"`
	IronMg      float64 `json:"iron_mg,omitempty"`
	CalciumMg   float64 `json:"calcium_mg,omitempty"`
	PotassiumMg float64 `json:"potassium_mg,omitempty"`
}

// Add returns the element-wise sum of n and other scaled by servings.
func (n Nutrients) Add(other Nutrients, servings float64) Nutrients {
	n.Calories += other.Calories * servings
	n.ProteinG += other.ProteinG * servings
	n.CarbsG += other.CarbsG * servings
	n.FatG += other.FatG * servings
	n.FiberG += other.FiberG * servings
	n.SugarG += other.SugarG * servings
	n.SodiumMg += other.SodiumMg * servings
	n.VitaminCMg += other.VitaminCMg * servings
	n.IronMg += other.IronMg * servings
	n.CalciumMg += other.CalciumMg * servings
	n.PotassiumMg += other.PotassiumMg * servings
	return n
}

// FoodItem is one catalog entry. Immutable after load.
type FoodItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	ServingSize string    `json:"serving_size,omitempty"`
	PerServing  Nutrients `json:"per_serving"`
	Tags        []Tag     `json:"tags,omitempty"`
}

// HasTag reports whether the food carries the given tag.
func (f FoodItem) HasTag(t Tag) bool {
	for _, tag := range f.Tags {
		if tag == t {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the food carries any of the given tags.
func (f FoodItem) HasAnyTag(tags []Tag) bool {
	for _, t := range tags {
		if f.HasTag(t) {
			return true
		}
	}
	return false
}

// searchCacheSize bounds the memory held by cached query results.
const searchCacheSize = 256

// Catalog is the indexed, read-only food collection.
type Catalog struct {
	items      []FoodItem
	byID       map[string]int
	byName     map[string]string
	byCategory map[Category][]string

	// searchCache memoizes query -> ordered ids. The underlying data never
	// changes, so cached entries never go stale.
	searchCache *lru.Cache[string, []string]
}

// New builds a catalog from items, validating each entry against the schema.
// Items are kept in insertion order; indexes are built once here.
func New(items []FoodItem) (*Catalog, error) {
	cache, err := lru.New[string, []string](searchCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create search cache: %w", err)
	}

	c := &Catalog{
		items:       make([]FoodItem, 0, len(items)),
		byID:        make(map[string]int, len(items)),
		byName:      make(map[string]string, len(items)),
		byCategory:  make(map[Category][]string),
		searchCache: cache,
	}

	validCategories := make(map[Category]bool, len(Categories))
	for _, cat := range Categories {
		validCategories[cat] = true
	}

	for i, item := range items {
		if err := validateItem(item, validCategories); err != nil {
			return nil, fmt.Errorf("food entry %d: %w", i, err)
		}
		if _, exists := c.byID[item.ID]; exists {
			return nil, fmt.Errorf("food entry %d: duplicate id %q", i, item.ID)
		}

		c.byID[item.ID] = len(c.items)
		c.byName[strings.ToLower(item.Name)] = item.ID
		c.byCategory[item.Category] = append(c.byCategory[item.Category], item.ID)
		c.items = append(c.items, item)
	}

	// Category listings are returned to callers in a deterministic order.
	for cat := range c.byCategory {
		sort.Strings(c.byCategory[cat])
	}

	return c, nil
}

// validateItem rejects entries that violate the FoodItem schema. The catalog
// is validated once at load so the engine never re-checks food data.
func validateItem(item FoodItem, validCategories map[Category]bool) error {
	if item.ID == "" {
		return fmt.Errorf("missing id")
	}
	if item.Name == "" {
		return fmt.Errorf("food %q: missing name", item.ID)
	}
	if !validCategories[item.Category] {
		return fmt.Errorf("food %q: unknown category %q", item.ID, item.Category)
	}

	n := item.PerServing
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"calories", n.Calories},
		{"protein_g", n.ProteinG},
		{"carbs_g", n.CarbsG},
		{"fat_g", n.FatG},
		{"fiber_g", n.FiberG},
		{"sugar_g", n.SugarG},
		{"sodium_mg", n.SodiumMg},
	} {
		if v.value < 0 {
			return fmt.Errorf("food %q: negative %s", item.ID, v.name)
		}
	}
	return nil
}

// Get returns the food with the given id.
func (c *Catalog) Get(id string) (FoodItem, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return FoodItem{}, false
	}
	return c.items[idx], true
}

// GetByName returns the food with the given name, case-insensitively.
func (c *Catalog) GetByName(name string) (FoodItem, bool) {
	id, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return FoodItem{}, false
	}
	return c.Get(id)
}

// Len returns the number of foods in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns a copy of all foods in insertion order.
func (c *Catalog) Items() []FoodItem {
	out := make([]FoodItem, len(c.items))
	copy(out, c.items)
	return out
}

// ByCategory returns all foods in a category, ordered by id.
func (c *Catalog) ByCategory(cat Category) []FoodItem {
	ids := c.byCategory[cat]
	out := make([]FoodItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := c.Get(id); ok {
			out = append(out, item)
		}
	}
	return out
}
