package response_models

// RouteSegment is one leg of travel between two consecutive locations in
// a day. A failed lookup carries Error and leaves the numeric fields zero.
type RouteSegment struct {
	FromPlace       string  `json:"fromPlace"`
	ToPlace         string  `json:"toPlace"`
	DistanceMeters  float64 `json:"distanceMeters,omitempty"`
	DistanceLabel   string  `json:"distance,omitempty"`
	DurationSeconds float64 `json:"durationSeconds,omitempty"`
	DurationLabel   string  `json:"duration,omitempty"`
	Error           string  `json:"error,omitempty"`
}

type DailyDistance struct {
	Day            int            `json:"day"`
	Date           string         `json:"date"`
	DistanceKm     float64        `json:"distanceKm"`
	DistanceMeters float64        `json:"distanceMeters"`
	Segments       []RouteSegment `json:"segments"`
}

type TripDistanceInfo struct {
	Success             bool            `json:"success"`
	TotalDistanceKm     float64         `json:"totalDistanceKm"`
	TotalDistanceMeters float64         `json:"totalDistanceMeters"`
	DailyBreakdown      []DailyDistance `json:"dailyBreakdown,omitempty"`
	Error               string          `json:"error,omitempty"`
	Details             string          `json:"details,omitempty"`
}
