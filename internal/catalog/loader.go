package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// LoadFile builds a catalog from a JSON file holding an array of FoodItem
// records. This is the only place the engine touches the filesystem, and it
// runs once at startup. Unknown JSON fields are rejected so a malformed
// dataset fails loudly instead of being silently trusted.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var items []FoodItem
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", path, err)
	}

	c, err := New(items)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}

	log.Info().Int("foods", c.Len()).Str("path", path).Msg("Loaded food catalog")
	return c, nil
}
