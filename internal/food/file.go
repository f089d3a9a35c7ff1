package food

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadCatalogFile builds a catalog from a JSON array of food items.
// Ids in the file are ignored; items are numbered in file order starting at 1.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var items []FoodItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog file %s: %w", path, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no foods", path)
	}

	c := NewCatalog()
	for i, item := range items {
		if err := validateItem(item); err != nil {
			return nil, fmt.Errorf("invalid catalog entry %d: %w", i, err)
		}
		c.Add(item)
	}
	return c, nil
}
