package db_models

// SavedItinerary stores a generated plan for later retrieval. Saving is
// best-effort: a failed insert never blocks returning the itinerary.
type SavedItinerary struct {
	BaseModel
	Title     string
	Origin    string
	State     string
	Days      int
	Budget    float64
	NumPeople int
	TripType  string
	Result    string `gorm:"type:jsonb"` // serialized response_models.GenerateItineraryResponse
}
