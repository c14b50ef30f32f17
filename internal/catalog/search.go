package catalog

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
)

const (
	// minSubstringResults is the result count below which the fuzzy
	// fallback kicks in.
	minSubstringResults = 5

	// fuzzyThreshold is the minimum Jaro-Winkler similarity for a fuzzy
	// match to be included.
	fuzzyThreshold = 0.78
)

// Search returns foods matching the query, case-insensitively.
//
// Substring matches on the name come first, ordered by match position then
// alphabetically. When those yield fewer than minSubstringResults hits, a
// fuzzy pass over names and categories fills in near-misses so typos like
// "samon" still find salmon. An empty query returns an empty result.
func (c *Catalog) Search(query string) []FoodItem {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	if ids, ok := c.searchCache.Get(query); ok {
		return c.resolve(ids)
	}

	ids := c.substringMatch(query)
	if len(ids) < minSubstringResults {
		ids = c.fuzzyFill(query, ids)
	}

	c.searchCache.Add(query, ids)
	return c.resolve(ids)
}

// substringMatch collects ids whose name contains the query, ordered by match
// position then name.
func (c *Catalog) substringMatch(query string) []string {
	type hit struct {
		id       string
		name     string
		position int
	}

	var hits []hit
	for _, item := range c.items {
		name := strings.ToLower(item.Name)
		if pos := strings.Index(name, query); pos >= 0 {
			hits = append(hits, hit{id: item.ID, name: name, position: pos})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].position != hits[j].position {
			return hits[i].position < hits[j].position
		}
		return hits[i].name < hits[j].name
	})

	ids := make([]string, len(hits))
	for i, h := range hits {
		ids[i] = h.id
	}
	return ids
}

// fuzzyFill appends near-miss matches (by name or category similarity) to the
// substring results, best similarity first.
func (c *Catalog) fuzzyFill(query string, ids []string) []string {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}

	type scored struct {
		id    string
		name  string
		score float32
	}

	var candidates []scored
	for _, item := range c.items {
		if seen[item.ID] {
			continue
		}

		score := similarity(query, strings.ToLower(item.Name))
		if catScore := similarity(query, string(item.Category)); catScore > score {
			score = catScore
		}
		if score >= fuzzyThreshold {
			candidates = append(candidates, scored{
				id:    item.ID,
				name:  strings.ToLower(item.Name),
				score: score,
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].name < candidates[j].name
	})

	for _, cand := range candidates {
		ids = append(ids, cand.id)
		if len(ids) >= minSubstringResults {
			break
		}
	}
	return ids
}

// similarity scores two strings in [0,1]. Individual words of the candidate
// are scored too, so "greek yogurt" still matches a query of "yogurtt".
func similarity(query, candidate string) float32 {
	best, err := edlib.StringsSimilarity(query, candidate, edlib.JaroWinkler)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("similarity computation failed")
		return 0
	}

	for _, word := range strings.Fields(candidate) {
		score, err := edlib.StringsSimilarity(query, word, edlib.JaroWinkler)
		if err == nil && score > best {
			best = score
		}
	}
	return best
}

// resolve maps an ordered id list back to food items.
func (c *Catalog) resolve(ids []string) []FoodItem {
	out := make([]FoodItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := c.Get(id); ok {
			out = append(out, item)
		}
	}
	return out
}
