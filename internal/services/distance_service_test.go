package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamio/internal/models/response_models"
)

type fakeGeocoder struct {
	points map[string]GeoPoint
	calls  []string
}

func (f *fakeGeocoder) Resolve(ctx context.Context, placeName string) *GeoPoint {
	f.calls = append(f.calls, placeName)
	if p, ok := f.points[placeName]; ok {
		return &p
	}
	return nil
}

type fakeRoutes struct {
	distanceMeters float64
	failAll        bool
	calls          int
}

func (f *fakeRoutes) Resolve(ctx context.Context, origin, destination *GeoPoint) *RouteInfo {
	f.calls++
	if f.failAll {
		return nil
	}
	return &RouteInfo{
		DistanceMeters:  f.distanceMeters,
		DistanceLabel:   "10.0 km",
		DurationSeconds: 600,
		DurationLabel:   "10 min",
	}
}

func knownPlaces(names ...string) map[string]GeoPoint {
	points := make(map[string]GeoPoint, len(names))
	for i, name := range names {
		points[name] = GeoPoint{Latitude: float64(i), Longitude: float64(i), DisplayName: name}
	}
	return points
}

func twoDayPlan() *response_models.TripPlan {
	return &response_models.TripPlan{
		TripTitle: "Hill Country Loop",
		Days: []response_models.DayPlan{
			{
				Day:  1,
				Date: "2026-03-01",
				Activities: []response_models.Activity{
					{Destination: "Temple of the Tooth"},
					{Destination: "Kandy Lake"},
				},
				Accommodation: "Kandy City Hotel",
			},
			{
				Day:  2,
				Date: "2026-03-02",
				Activities: []response_models.Activity{
					{Destination: "Nine Arch Bridge"},
				},
				Accommodation: "Ella Resort",
			},
		},
	}
}

func TestAnnotateCarriesAccommodationForward(t *testing.T) {
	geocoder := &fakeGeocoder{points: knownPlaces(
		"Temple of the Tooth", "Kandy Lake", "Kandy City Hotel", "Nine Arch Bridge", "Ella Resort")}
	routes := &fakeRoutes{distanceMeters: 10000}
	svc := NewDistanceService(geocoder, routes)

	info := svc.AnnotateTripDistance(context.Background(), twoDayPlan())

	require.True(t, info.Success)
	require.Len(t, info.DailyBreakdown, 2)

	// Day 1: Temple -> Lake -> Hotel (2 segments).
	day1 := info.DailyBreakdown[0]
	require.Len(t, day1.Segments, 2)
	assert.Equal(t, "Temple of the Tooth", day1.Segments[0].FromPlace)
	assert.Equal(t, "Kandy City Hotel", day1.Segments[1].ToPlace)
	assert.Equal(t, 20000.0, day1.DistanceMeters)
	assert.Equal(t, 20.0, day1.DistanceKm)

	// Day 2 starts from day 1's accommodation.
	day2 := info.DailyBreakdown[1]
	require.Len(t, day2.Segments, 2)
	assert.Equal(t, "Kandy City Hotel", day2.Segments[0].FromPlace)
	assert.Equal(t, "Nine Arch Bridge", day2.Segments[0].ToPlace)
	assert.Equal(t, "Ella Resort", day2.Segments[1].ToPlace)

	assert.Equal(t, 40000.0, info.TotalDistanceMeters)
	assert.Equal(t, 40.0, info.TotalDistanceKm)
}

func TestAnnotateSingleLocationDayHasNoSegments(t *testing.T) {
	geocoder := &fakeGeocoder{points: knownPlaces("Sigiriya")}
	routes := &fakeRoutes{distanceMeters: 10000}
	svc := NewDistanceService(geocoder, routes)

	plan := &response_models.TripPlan{
		Days: []response_models.DayPlan{
			{Day: 1, Date: "2026-03-01", Activities: []response_models.Activity{{Destination: "Sigiriya"}}},
		},
	}

	info := svc.AnnotateTripDistance(context.Background(), plan)

	require.True(t, info.Success)
	require.Len(t, info.DailyBreakdown, 1)
	assert.Empty(t, info.DailyBreakdown[0].Segments)
	assert.Equal(t, 0.0, info.DailyBreakdown[0].DistanceKm)
	assert.Empty(t, geocoder.calls, "a one-location chain must not be geocoded")
}

func TestAnnotatePartialGeocodeFailureKeepsGoing(t *testing.T) {
	// "Mystery Spot" cannot be geocoded; the segments around it fail but
	// the rest of the day still counts.
	geocoder := &fakeGeocoder{points: knownPlaces("Galle Fort", "Unawatuna Beach", "Mirissa")}
	routes := &fakeRoutes{distanceMeters: 10000}
	svc := NewDistanceService(geocoder, routes)

	plan := &response_models.TripPlan{
		Days: []response_models.DayPlan{
			{
				Day:  1,
				Date: "2026-03-01",
				Activities: []response_models.Activity{
					{Destination: "Galle Fort"},
					{Destination: "Unawatuna Beach"},
					{Destination: "Mystery Spot"},
					{Destination: "Mirissa"},
				},
			},
		},
	}

	info := svc.AnnotateTripDistance(context.Background(), plan)

	require.True(t, info.Success)
	day := info.DailyBreakdown[0]
	require.Len(t, day.Segments, 3)

	assert.Empty(t, day.Segments[0].Error)
	assert.NotEmpty(t, day.Segments[1].Error)
	assert.NotEmpty(t, day.Segments[2].Error)

	// Only the successful segment contributes.
	assert.Equal(t, 10000.0, day.DistanceMeters)
	assert.Equal(t, 10.0, day.DistanceKm)
}

func TestAnnotateRouteFailureProducesErrorSegment(t *testing.T) {
	geocoder := &fakeGeocoder{points: knownPlaces("Colombo", "Negombo")}
	routes := &fakeRoutes{failAll: true}
	svc := NewDistanceService(geocoder, routes)

	plan := &response_models.TripPlan{
		Days: []response_models.DayPlan{
			{
				Day:  1,
				Date: "2026-03-01",
				Activities: []response_models.Activity{
					{Destination: "Colombo"},
					{Destination: "Negombo"},
				},
			},
		},
	}

	info := svc.AnnotateTripDistance(context.Background(), plan)

	require.True(t, info.Success)
	require.Len(t, info.DailyBreakdown[0].Segments, 1)
	assert.NotEmpty(t, info.DailyBreakdown[0].Segments[0].Error)
	assert.Equal(t, 0.0, info.TotalDistanceKm)
}

func TestAnnotateTopLevelFailureReportsUnsuccessful(t *testing.T) {
	svc := NewDistanceService(&fakeGeocoder{}, &fakeRoutes{})

	info := svc.AnnotateTripDistance(context.Background(), nil)

	assert.False(t, info.Success)
	assert.NotEmpty(t, info.Error)
	assert.NotEmpty(t, info.Details)
}
