package request_models

// GenerateItineraryRequest is one planning request. Origin is free text
// (city, district, or place name); Budget is in rupees for the whole trip.
type GenerateItineraryRequest struct {
	Origin         string   `json:"origin"`
	Budget         float64  `json:"budget"`
	Days           int      `json:"days"`
	StartDate      string   `json:"start_date,omitempty"` // YYYY-MM-DD
	NumPeople      int      `json:"num_people"`
	TripType       string   `json:"trip_type"` // FAMILY / FRIENDS / COUPLE / SOLO
	Personalities  []string `json:"personalities,omitempty"`
	HiddenGemsOnly bool     `json:"hidden_gems_only,omitempty"`
	SeasonOverride string   `json:"season_override,omitempty"` // three-letter month code
	RadiusKm       float64  `json:"radius_km,omitempty"`
	PickupCity     string   `json:"pickup_city,omitempty"`
	DropoffCity    string   `json:"dropoff_city,omitempty"`
	UseAIArranger  bool     `json:"use_ai_arranger,omitempty"`
}

// ValidateBudgetRequest mirrors the budget pre-check endpoint.
type ValidateBudgetRequest struct {
	Budget      float64 `json:"budget"`
	Days        int     `json:"days"`
	NumPeople   int     `json:"num_people"`
	TripType    string  `json:"trip_type,omitempty"`
	OriginCity  string  `json:"origin_city,omitempty"`
	PickupCity  string  `json:"pickup_city,omitempty"`
	DropoffCity string  `json:"dropoff_city,omitempty"`
}
