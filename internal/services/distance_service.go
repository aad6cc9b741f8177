package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"roamio/internal/models/response_models"
)

// DistanceServiceInterface annotates a generated plan with driving
// distances. It never raises past its boundary: segment-level failures
// become error entries, and only a top-level panic yields success=false.
type DistanceServiceInterface interface {
	AnnotateTripDistance(ctx context.Context, plan *response_models.TripPlan) response_models.TripDistanceInfo
}

type DistanceService struct {
	geocoder GeocoderServiceInterface
	routes   RouteServiceInterface
}

func NewDistanceService(geocoder GeocoderServiceInterface, routes RouteServiceInterface) DistanceServiceInterface {
	return &DistanceService{
		geocoder: geocoder,
		routes:   routes,
	}
}

func (d *DistanceService) AnnotateTripDistance(ctx context.Context, plan *response_models.TripPlan) (info response_models.TripDistanceInfo) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("distance annotation failed: %v", r)
			info = response_models.TripDistanceInfo{
				Success: false,
				Error:   "failed to calculate trip distance",
				Details: fmt.Sprint(r),
			}
		}
	}()

	var totalMeters float64
	breakdown := make([]response_models.DailyDistance, 0, len(plan.Days))

	// Days run strictly in order: each chain may start from the previous
	// day's accommodation, and the geocoder's courtesy limit is shared
	// across the process.
	for i, day := range plan.Days {
		chain := buildDayChain(plan.Days, i)

		daily := response_models.DailyDistance{
			Day:      day.Day,
			Date:     day.Date,
			Segments: []response_models.RouteSegment{},
		}

		if len(chain) >= 2 {
			for j := 0; j+1 < len(chain); j++ {
				seg := d.resolveSegment(ctx, chain[j], chain[j+1])
				if seg.Error == "" {
					daily.DistanceMeters += seg.DistanceMeters
				}
				daily.Segments = append(daily.Segments, seg)
			}
		}

		daily.DistanceKm = roundKm(daily.DistanceMeters)
		totalMeters += daily.DistanceMeters
		breakdown = append(breakdown, daily)
	}

	return response_models.TripDistanceInfo{
		Success:             true,
		TotalDistanceKm:     roundKm(totalMeters),
		TotalDistanceMeters: totalMeters,
		DailyBreakdown:      breakdown,
	}
}

func (d *DistanceService) resolveSegment(ctx context.Context, from, to string) response_models.RouteSegment {
	seg := response_models.RouteSegment{FromPlace: from, ToPlace: to}

	origin := d.geocoder.Resolve(ctx, from)
	if origin == nil {
		seg.Error = fmt.Sprintf("could not geocode %q", from)
		return seg
	}
	destination := d.geocoder.Resolve(ctx, to)
	if destination == nil {
		seg.Error = fmt.Sprintf("could not geocode %q", to)
		return seg
	}

	route := d.routes.Resolve(ctx, origin, destination)
	if route == nil {
		seg.Error = fmt.Sprintf("no driving route from %q to %q", from, to)
		return seg
	}

	seg.DistanceMeters = route.DistanceMeters
	seg.DistanceLabel = route.DistanceLabel
	seg.DurationSeconds = route.DurationSeconds
	seg.DurationLabel = route.DurationLabel
	return seg
}

// buildDayChain returns the ordered locations travelled on day i: the
// previous day's accommodation carries forward as the start of the day,
// then each activity destination in order, then the current day's
// accommodation.
func buildDayChain(days []response_models.DayPlan, i int) []string {
	var chain []string
	if i > 0 && strings.TrimSpace(days[i-1].Accommodation) != "" {
		chain = append(chain, days[i-1].Accommodation)
	}
	for _, act := range days[i].Activities {
		if strings.TrimSpace(act.Destination) != "" {
			chain = append(chain, act.Destination)
		}
	}
	if strings.TrimSpace(days[i].Accommodation) != "" {
		chain = append(chain, days[i].Accommodation)
	}
	return chain
}

func roundKm(meters float64) float64 {
	return math.Round(meters/100) / 10
}
