package response_models

type TransportOption struct {
	Type          string  `json:"type"` // FLIGHT / TRAIN / BUS / DRIVE
	CostPerPerson float64 `json:"cost_per_person"`
	DurationHours float64 `json:"duration_hours"`
	Comfort       string  `json:"comfort"` // BASIC / STANDARD / PREMIUM
	Description   string  `json:"description"`
}

type TransportRecommendation struct {
	From         string            `json:"from"`
	To           string            `json:"to"`
	DistanceKm   float64           `json:"distance_km"`
	Recommended  TransportOption   `json:"recommended"`
	Alternatives []TransportOption `json:"alternatives"`
	TotalCost    float64           `json:"total_cost"`
}
