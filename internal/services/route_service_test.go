package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamio/pkg/memcache"
)

func newTestRouteClient(t *testing.T, handler http.HandlerFunc) *OSRMRouteClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOSRMRouteClient(memcache.NewStore[RouteInfo](), srv.URL)
}

func TestRouteResolveBuildsLabels(t *testing.T) {
	c := newTestRouteClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":1500.0,"duration":900.0}]}`))
	})

	info := c.Resolve(context.Background(), &GeoPoint{Latitude: 7.29, Longitude: 80.63}, &GeoPoint{Latitude: 6.87, Longitude: 81.05})
	require.NotNil(t, info)
	assert.Equal(t, 1500.0, info.DistanceMeters)
	assert.Equal(t, "1.5 km", info.DistanceLabel)
	assert.Equal(t, 900.0, info.DurationSeconds)
	assert.Equal(t, "15 min", info.DurationLabel)
}

func TestRouteCacheIsDirectional(t *testing.T) {
	requests := 0
	c := newTestRouteClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":1000.0,"duration":600.0}]}`))
	})

	a := &GeoPoint{Latitude: 7.29, Longitude: 80.63}
	b := &GeoPoint{Latitude: 6.87, Longitude: 81.05}

	require.NotNil(t, c.Resolve(context.Background(), a, b))
	require.NotNil(t, c.Resolve(context.Background(), a, b))
	assert.Equal(t, 1, requests, "repeat A->B lookup must come from cache")

	// B->A is a different driving route and must not hit the A->B entry.
	require.NotNil(t, c.Resolve(context.Background(), b, a))
	assert.Equal(t, 2, requests)
}

func TestRouteNoRouteReturnsNil(t *testing.T) {
	c := newTestRouteClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	})

	assert.Nil(t, c.Resolve(context.Background(), &GeoPoint{}, &GeoPoint{Latitude: 1}))
}

func TestRouteTransportFailureReturnsNil(t *testing.T) {
	c := newTestRouteClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	assert.Nil(t, c.Resolve(context.Background(), &GeoPoint{}, &GeoPoint{Latitude: 1}))
}
