package response_models

type PlaceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	District    string  `json:"district"`
	State       string  `json:"state"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description,omitempty"`
	BudgetTier  string  `json:"budget_tier"`
	EntryFee    float64 `json:"entry_fee"`
	IsHiddenGem bool    `json:"is_hidden_gem"`
	IsFamous    bool    `json:"is_famous"`
}
