package food

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Category is the food group a catalog item belongs to.
type Category string

const (
	CategoryGrain     Category = "Grain"
	CategoryVegetable Category = "Vegetable"
	CategoryFruit     Category = "Fruit"
	CategoryProtein   Category = "Protein"
	CategoryProcessed Category = "Processed"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryGrain,
	CategoryVegetable,
	CategoryFruit,
	CategoryProtein,
	CategoryProcessed,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// FoodItem is a single reference food with its nutrient facts per serving.
type FoodItem struct {
	ID            int      `json:"id"`
	FoodName      string   `json:"foodName"`
	Category      Category `json:"category"`
	EnergyKcal    float64  `json:"energyKcal"`
	CarbohydrateG float64  `json:"carbohydrateG"`
	SugarG        float64  `json:"sugarG"`
	ProteinG      float64  `json:"proteinG"`
	FatG          float64  `json:"fatG"`
	SodiumMg      float64  `json:"sodiumMg"`
	PotassiumMg   float64  `json:"potassiumMg"`
	PhosphorusMg  float64  `json:"phosphorusMg"`
	GIIndex       int      `json:"giIndex"`
	Note          string   `json:"note"`
}

// Catalog holds the reference foods in insertion order.
// All Add calls must happen before the catalog is shared; reads need no locking.
type Catalog struct {
	items  []FoodItem
	byID   map[int]int
	nextID int
}

// NewCatalog creates an empty catalog whose ids start at 1.
func NewCatalog() *Catalog {
	return &Catalog{
		byID:   make(map[int]int),
		nextID: 1,
	}
}

// NewSeededCatalog returns a catalog preloaded with the built-in foods.
func NewSeededCatalog() *Catalog {
	c := NewCatalog()
	for _, item := range seedFoods {
		c.Add(item)
	}
	return c
}

// Add stores a copy of item under the next id and returns the stored item.
// Any id already present on item is ignored.
func (c *Catalog) Add(item FoodItem) FoodItem {
	item.ID = c.nextID
	c.nextID++
	c.byID[item.ID] = len(c.items)
	c.items = append(c.items, item)
	return item
}

// GetByID returns the food with the given id.
func (c *Catalog) GetByID(id int) (FoodItem, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return FoodItem{}, false
	}
	return c.items[idx], true
}

// Search returns foods whose name or category contains query, ignoring case.
// An empty query returns the whole catalog.
func (c *Catalog) Search(query string) []FoodItem {
	q := strings.ToLower(query)
	out := make([]FoodItem, 0, len(c.items))
	for _, item := range c.items {
		if q == "" ||
			strings.Contains(strings.ToLower(item.FoodName), q) ||
			strings.Contains(strings.ToLower(string(item.Category)), q) {
			out = append(out, item)
		}
	}
	return out
}

// All returns every food in catalog order.
func (c *Catalog) All() []FoodItem {
	return c.Search("")
}

// Len returns the number of foods in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Fingerprint identifies the catalog contents as "<count>-<hash>", hashing
// every id and name in order. Two catalogs with the same foods under the
// same ids share a fingerprint.
func (c *Catalog) Fingerprint() string {
	h := xxhash.New()
	for _, item := range c.items {
		fmt.Fprintf(h, "%d\x00%s\x00", item.ID, item.FoodName)
	}
	return fmt.Sprintf("%d-%016x", len(c.items), h.Sum64())
}

func validateItem(item FoodItem) error {
	if strings.TrimSpace(item.FoodName) == "" {
		return fmt.Errorf("food name is required")
	}
	if !item.Category.Valid() {
		return fmt.Errorf("food %q has unknown category %q", item.FoodName, item.Category)
	}
	if item.GIIndex < 0 || item.GIIndex > 100 {
		return fmt.Errorf("food %q has glycemic index %d outside 0-100", item.FoodName, item.GIIndex)
	}
	return nil
}
