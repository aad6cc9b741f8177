package response_models

// TripSummary is the list view of a stored trip.
type TripSummary struct {
	TripID       string   `json:"tripId"`
	TripTitle    string   `json:"tripTitle"`
	Destinations []string `json:"destinations"`
	Days         int      `json:"days"`
	CreatedAt    int64    `json:"createdAt"`
}

type TripDetailResponse struct {
	TripID       string            `json:"tripId"`
	UserID       string            `json:"userId"`
	Destinations []string          `json:"destinations"`
	CategoryType string            `json:"categoryType"`
	Members      int               `json:"members"`
	BudgetRange  string            `json:"budgetRange"`
	Plan         TripPlan          `json:"plan"`
	DistanceInfo *TripDistanceInfo `json:"distanceInfo,omitempty"`
	CreatedAt    int64             `json:"createdAt"`
}
