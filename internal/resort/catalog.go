package resort

import (
	"errors"
	"fmt"

	"powdercast/internal/types"
)

// ErrNotFound is returned when a resort id is not in the catalog.
var ErrNotFound = errors.New("resort not found")

// Catalog is an immutable collection of resorts built at process start.
// Listing order is registration order.
type Catalog struct {
	byId  map[string]Resort
	order []string
}

// NewCatalog builds a catalog from the given resorts. Ids must be unique and
// altitude bands must strictly decrease from top to bottom.
func NewCatalog(resorts ...Resort) (*Catalog, error) {
	c := &Catalog{
		byId:  make(map[string]Resort, len(resorts)),
		order: make([]string, 0, len(resorts)),
	}

	for _, r := range resorts {
		if r.Id == "" {
			return nil, fmt.Errorf("resort %q has an empty id", r.Name)
		}
		if _, exists := c.byId[r.Id]; exists {
			return nil, fmt.Errorf("duplicate resort id %q", r.Id)
		}
		if r.Altitudes.Top <= r.Altitudes.Mid || r.Altitudes.Mid <= r.Altitudes.Bot {
			return nil, fmt.Errorf("resort %q altitudes must strictly decrease top to bottom (top=%d mid=%d bot=%d)",
				r.Id, r.Altitudes.Top, r.Altitudes.Mid, r.Altitudes.Bot)
		}

		c.byId[r.Id] = r
		c.order = append(c.order, r.Id)
	}

	return c, nil
}

// Get looks up a resort by id.
func (c *Catalog) Get(id string) (Resort, error) {
	r, ok := c.byId[id]
	if !ok {
		return Resort{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r, nil
}

// List returns all resorts in registration order.
func (c *Catalog) List() []Resort {
	resorts := make([]Resort, 0, len(c.order))
	for _, id := range c.order {
		resorts = append(resorts, c.byId[id])
	}
	return resorts
}

// Len returns the number of resorts in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}

// DefaultCatalog builds the catalog of built-in resorts.
func DefaultCatalog() (*Catalog, error) {
	return NewCatalog(
		Resort{
			Id:          "sunshine_village",
			Name:        "Sunshine Village",
			Location:    "Banff, Canada",
			Coordinates: types.NewCoords(51.1164, -115.7631),
			Altitudes:   types.AltitudeBands{Top: 2730, Mid: 2200, Bot: 1660},
		},
		Resort{
			Id:          "lake_louise",
			Name:        "Lake Louise",
			Location:    "Lake Louise, Canada",
			Coordinates: types.NewCoords(51.4419, -116.1622),
			Altitudes:   types.AltitudeBands{Top: 2637, Mid: 2088, Bot: 1646},
		},
		Resort{
			Id:          "mt_norquay",
			Name:        "Mt Norquay",
			Location:    "Banff, Canada",
			Coordinates: types.NewCoords(51.2030, -115.5927),
			Altitudes:   types.AltitudeBands{Top: 2133, Mid: 1905, Bot: 1630},
		},
	)
}
