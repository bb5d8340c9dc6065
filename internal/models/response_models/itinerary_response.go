package response_models

// ScoredPlace is a place annotated with distance, cost, time and score
// relative to the request origin. Recomputed per request.
type ScoredPlace struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	District       string  `json:"district"`
	State          string  `json:"state"`
	Description    string  `json:"description,omitempty"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	EntryFee       float64 `json:"entry_fee"`
	AvgStayCost    float64 `json:"avg_stay_cost"`
	AvgFoodCost    float64 `json:"avg_food_cost"`
	IsHiddenGem    bool    `json:"is_hidden_gem"`
	IsFamous       bool    `json:"is_famous"`
	MinHoursNeeded float64 `json:"min_hours_needed"`
	DistanceKm     float64 `json:"distance_km"`
	TravelCost     float64 `json:"travel_cost"`
	TravelTimeMin  float64 `json:"travel_time_min"`
	Score          int     `json:"score"`
}

type DaySchedule struct {
	DayNumber     int           `json:"day_number"`
	Date          string        `json:"date,omitempty"` // YYYY-MM-DD, "" when no start date given
	Places        []ScoredPlace `json:"places"`
	TotalDistance float64       `json:"total_distance"`
	TotalCost     float64       `json:"total_cost"`
	TravelTime    float64       `json:"travel_time"` // minutes
	Notes         string        `json:"notes"`
}

type CostBreakdown struct {
	Travel  float64 `json:"travel"`
	Stay    float64 `json:"stay"`
	Food    float64 `json:"food"`
	Tickets float64 `json:"tickets"`
}

type ItineraryResult struct {
	Title          string        `json:"title"`
	Days           []DaySchedule `json:"days"`
	TotalCost      float64       `json:"total_cost"`
	CostBreakdown  CostBreakdown `json:"cost_breakdown"`
	TotalDistance  float64       `json:"total_distance"`
	AverageScore   int           `json:"average_score"`
	PlanBAvailable bool          `json:"plan_b_available"`
	ArrangedByAI   bool          `json:"arranged_by_ai"`
}

// TripMetadata rides alongside the itinerary for display and persistence.
type TripMetadata struct {
	OriginName       string  `json:"origin_name"`
	OriginDistrict   string  `json:"origin_district"`
	OriginState      string  `json:"origin_state"`
	OriginResolution string  `json:"origin_resolution"` // EXACT / SUBSTRING / STATE_ALIAS / FALLBACK_FIRST_PLACE
	Warning          string  `json:"warning,omitempty"`
	Budget           float64 `json:"budget"`
	BudgetSufficient bool    `json:"budget_sufficient"`
	Shortfall        float64 `json:"shortfall"`
	EstimatedCost    float64 `json:"estimated_cost"`
	SavedItineraryID string  `json:"saved_itinerary_id,omitempty"`
}

type GenerateItineraryResponse struct {
	Itinerary ItineraryResult          `json:"itinerary"`
	Metadata  TripMetadata             `json:"metadata"`
	Transport *TransportRecommendation `json:"transport,omitempty"`
}
