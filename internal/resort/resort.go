package resort

import "powdercast/internal/types"

// Resort describes one ski area in the catalog. Values are fixed at process
// start and never mutated.
type Resort struct {
	Id          string
	Name        string
	Location    string
	Coordinates types.Coords
	Altitudes   types.AltitudeBands
}
