package types

// AltitudeBands holds the elevations, in meters, of the three forecast bands
// of a ski area. Top must be above Mid, and Mid above Bot.
type AltitudeBands struct {
	Top int
	Mid int
	Bot int
}
