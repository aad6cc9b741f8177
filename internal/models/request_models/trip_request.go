package request_models

// TripGenerationRequest is the immutable input to the itinerary pipeline.
type TripGenerationRequest struct {
	Destinations []string `json:"destinations" binding:"required,min=1"`
	CategoryType string   `json:"categoryType"`
	Days         int      `json:"days" binding:"required,min=1"`
	Members      int      `json:"members" binding:"required,min=1"`
	BudgetRange  string   `json:"budgetRange"`
}
