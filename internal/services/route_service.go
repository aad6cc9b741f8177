package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	"roamio/pkg/memcache"
)

// RouteInfo holds driving distance and duration for one ordered
// coordinate pair, with human-readable labels.
type RouteInfo struct {
	DistanceMeters  float64
	DistanceLabel   string
	DurationSeconds float64
	DurationLabel   string
}

// RouteServiceInterface resolves the driving route between two resolved
// points. A nil result means no route or a transport failure; it never
// fails the caller.
type RouteServiceInterface interface {
	Resolve(ctx context.Context, origin, destination *GeoPoint) *RouteInfo
}

const routeTTL = 7 * 24 * time.Hour

type OSRMRouteClient struct {
	httpClient *http.Client
	baseURL    string
	cache      *memcache.Store[RouteInfo]
}

func NewOSRMRouteClient(cache *memcache.Store[RouteInfo], baseURL string) *OSRMRouteClient {
	if baseURL == "" {
		baseURL = "https://router.project-osrm.org"
	}
	return &OSRMRouteClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		cache:      cache,
	}
}

// routePairKey is directional: driving A->B and B->A are distinct routes.
func routePairKey(origin, destination *GeoPoint) string {
	return fmt.Sprintf("%f,%f->%f,%f",
		origin.Latitude, origin.Longitude,
		destination.Latitude, destination.Longitude)
}

func (c *OSRMRouteClient) Resolve(ctx context.Context, origin, destination *GeoPoint) *RouteInfo {
	key := routePairKey(origin, destination)
	if info, ok := c.cache.Get(key); ok {
		return &info
	}

	// overview=false: distance and duration only, no path geometry.
	u := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		c.baseURL,
		origin.Longitude, origin.Latitude,
		destination.Longitude, destination.Latitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		log.Printf("route %s: build request: %v", key, err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("route %s: %v", key, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("route %s: bad status %s", key, resp.Status)
		return nil
	}

	var payload struct {
		Code   string `json:"code"`
		Routes []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("route %s: decode: %v", key, err)
		return nil
	}
	if payload.Code != "Ok" || len(payload.Routes) == 0 {
		log.Printf("route %s: no route (code %q)", key, payload.Code)
		return nil
	}

	r := payload.Routes[0]
	info := RouteInfo{
		DistanceMeters:  r.Distance,
		DistanceLabel:   fmt.Sprintf("%.1f km", r.Distance/1000),
		DurationSeconds: r.Duration,
		DurationLabel:   fmt.Sprintf("%d min", int(math.Round(r.Duration/60))),
	}
	c.cache.Set(key, info, routeTTL)
	return &info
}
