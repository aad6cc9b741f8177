package response_models

type Activity struct {
	Time        string `json:"time"`
	Destination string `json:"destination"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type DayPlan struct {
	Day            int        `json:"day"`
	Date           string     `json:"date"`
	Activities     []Activity `json:"activities"`
	Transportation string     `json:"transportation"`
	Accommodation  string     `json:"accommodation"`
	EstimatedCost  string     `json:"estimatedCost"`
}

// TripPlan is the generated multi-day itinerary. Day numbers are 1-based
// and contiguous, matching array position.
type TripPlan struct {
	TripTitle    string            `json:"tripTitle"`
	Days         []DayPlan         `json:"days"`
	TripID       string            `json:"tripId"`
	DistanceInfo *TripDistanceInfo `json:"distanceInfo,omitempty"`
}
