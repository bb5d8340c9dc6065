package request_models

// ArrangerPlace is the trimmed candidate view given to the external
// arrangement model. Names must round-trip exactly so the merge step can
// resolve them back to candidates.
type ArrangerPlace struct {
	Name       string
	District   string
	DistanceKm float64
}
