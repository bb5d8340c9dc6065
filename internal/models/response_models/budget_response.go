package response_models

type BudgetSuggestion struct {
	Action        string  `json:"action"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimated_cost"`
	Savings       float64 `json:"savings"`
}

type BudgetEstimateBreakdown struct {
	TravelCost    float64 `json:"travel_cost"`
	StayCost      float64 `json:"stay_cost"`
	FoodCost      float64 `json:"food_cost"`
	TicketsCost   float64 `json:"tickets_cost"`
	TransportCost float64 `json:"transport_cost"`
}

type BudgetValidation struct {
	BudgetSufficient bool                    `json:"budget_sufficient"`
	EstimatedCost    float64                 `json:"estimated_cost"`
	Budget           float64                 `json:"budget"`
	Shortfall        float64                 `json:"shortfall"`
	Suggestions      []BudgetSuggestion      `json:"suggestions"`
	Breakdown        BudgetEstimateBreakdown `json:"breakdown"`
}
