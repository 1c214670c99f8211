package domain

// RoomClass holds the inventory attributes of one category.
type RoomClass struct {
	Capacity      int
	PricePerNight float64
}

// Catalog is the fixed room inventory: total capacity and nightly price
// per category. It is built once at startup and never mutated.
type Catalog struct {
	classes map[Category]RoomClass
}

func NewCatalog(classes map[Category]RoomClass) *Catalog {
	m := make(map[Category]RoomClass, len(classes))
	for cat, rc := range classes {
		m[cat] = rc
	}
	return &Catalog{classes: m}
}

// Capacity returns the total room count for the category, 0 if unknown.
func (c *Catalog) Capacity(cat Category) int {
	return c.classes[cat].Capacity
}

// Price returns the nightly price for the category, 0 if unknown.
func (c *Catalog) Price(cat Category) float64 {
	return c.classes[cat].PricePerNight
}
