package locations

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordsJSON(t *testing.T) {
	raw, err := json.Marshal(Coords{Lng: 126.964062, Lat: 37.468769})
	require.NoError(t, err)
	assert.JSONEq(t, `[126.964062, 37.468769]`, string(raw))

	var c Coords
	require.NoError(t, json.Unmarshal([]byte(`[-0.9690884, 51.455041]`), &c))
	assert.Equal(t, -0.9690884, c.Lng)
	assert.Equal(t, 51.455041, c.Lat)

	assert.Error(t, json.Unmarshal([]byte(`[1]`), &c))
}

func TestNearbyFilterHasLocation(t *testing.T) {
	lng, lat, dist := 1.0, 2.0, 200.0

	assert.False(t, NearbyFilter{}.HasLocation())
	assert.False(t, NearbyFilter{Longitude: &lng, Latitude: &lat}.HasLocation())
	assert.True(t, NearbyFilter{Longitude: &lng, Latitude: &lat, Distance: &dist}.HasLocation())
}
