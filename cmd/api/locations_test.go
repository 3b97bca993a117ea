package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loc8r/internal/domain/locations"
	"loc8r/internal/ratelimiter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(limit int) *ratelimiter.FixedWindowRateLimiter {
	return ratelimiter.NewFixedWindowLimiter(limit, time.Minute)
}

func TestListLocations(t *testing.T) {
	e := newTestEnv(t, newFakeLocations(starcups()))

	rr := e.do(t, http.MethodGet, "/api/locations?lng=-0.96&lat=51.45&maxDistance=500", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got []locationListItem
	decodeData(t, rr, &got)
	require.Len(t, got, 1)
	assert.Equal(t, e.starcups, got[0].ID)
	assert.Equal(t, "Starcups", got[0].Name)
	assert.Equal(t, 3, got[0].Rating)
	assert.Equal(t, float64(100), got[0].Distance)
}

func TestListLocationsEmptyIsArray(t *testing.T) {
	e := newTestEnv(t, newFakeLocations())

	rr := e.do(t, http.MethodGet, "/api/locations", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data":[]}`, rr.Body.String())
}

func TestListLocationsRejectsMalformedQuery(t *testing.T) {
	e := newTestEnv(t, newFakeLocations(starcups()))

	for _, q := range []string{"lng=abc&lat=1", "lng=1", "lat=1", "lng=1&lat=95", "lng=1&lat=1&maxDistance=-4"} {
		t.Run(q, func(t *testing.T) {
			rr := e.do(t, http.MethodGet, "/api/locations?"+q, nil, "")
			require.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "ValidationError", decodeError(t, rr).Name)
		})
	}
}

func TestParseNearbyFilter(t *testing.T) {
	app := &application{config: config{nearby: nearbyConfig{defaultMaxDistance: 20000}}}

	req := httptest.NewRequest(http.MethodGet, "/api/locations?lng=126.96&lat=37.46", nil)
	filter, err := app.parseNearbyFilter(req)
	require.NoError(t, err)
	require.True(t, filter.HasLocation())
	assert.Equal(t, 126.96, *filter.Longitude)
	assert.Equal(t, 37.46, *filter.Latitude)
	assert.Equal(t, float64(20000), *filter.Distance)

	req = httptest.NewRequest(http.MethodGet, "/api/locations?lng=1&lat=2&maxDistance=200", nil)
	filter, err = app.parseNearbyFilter(req)
	require.NoError(t, err)
	assert.Equal(t, float64(200), *filter.Distance)

	req = httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	filter, err = app.parseNearbyFilter(req)
	require.NoError(t, err)
	assert.False(t, filter.HasLocation())
}

func TestReadLocation(t *testing.T) {
	e := newTestEnv(t, newFakeLocations(starcups()))

	rr := e.do(t, http.MethodGet, "/api/locations/"+e.starcups, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.JSONEq(t, `"`+e.starcups+`"`, string(body.Data["id"]))
	assert.JSONEq(t, `[-0.9690884,51.455041]`, string(body.Data["coords"]))
	assert.JSONEq(t, `[]`, string(body.Data["reviews"]))

	var loc locations.Location
	decodeData(t, rr, &loc)
	assert.Equal(t, "Starcups", loc.Name)
	assert.Equal(t, -0.9690884, loc.Coords.Lng)
}

func TestReadLocationNotFound(t *testing.T) {
	e := newTestEnv(t, newFakeLocations(starcups()))

	other, err := e.app.ids.Encode(42)
	require.NoError(t, err)

	for _, id := range []string{other, "not-a-hashid"} {
		rr := e.do(t, http.MethodGet, "/api/locations/"+id, nil, "")
		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Location not found", decodeError(t, rr).Message)
	}
}

func TestHealthCheck(t *testing.T) {
	e := newTestEnv(t, newFakeLocations())

	rr := e.do(t, http.MethodGet, "/api/health", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got map[string]string
	decodeData(t, rr, &got)
	assert.Equal(t, "ok", got["status"])
	assert.Equal(t, "test", got["env"])
}

func TestDebugVarsRequiresBasicAuth(t *testing.T) {
	e := newTestEnv(t, newFakeLocations())
	e.app.config.auth.basic = basicConfig{user: "admin", pass: "secret"}

	rr := e.do(t, http.MethodGet, "/api/debug/vars", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/debug/vars", nil)
	req.SetBasicAuth("admin", "secret")
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
