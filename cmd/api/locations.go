package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"loc8r/internal/domain/locations"

	"github.com/go-chi/chi/v5"
)

type locationListItem struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Rating     int      `json:"rating"`
	Facilities []string `json:"facilities"`
	Distance   float64  `json:"distance"` // meters
}

type locationResponse struct {
	ID string `json:"id"`
	*locations.Location
}

// LocationsListByDistance godoc
//
//	@Summary		List locations near a point
//	@Description	Returns locations within maxDistance meters of (lng, lat), nearest first. Without coordinates all locations are returned by name.
//	@Tags			Locations
//	@Produce		json
//	@Param			lng			query		number				false	"Longitude"
//	@Param			lat			query		number				false	"Latitude"
//	@Param			maxDistance	query		number				false	"Radius in meters"
//	@Success		200			{array}		locationListItem	"Locations"
//	@Failure		400			{object}	errorEnvelope		"Malformed coordinates"
//	@Failure		500			{object}	errorEnvelope		"Internal server error"
//	@Router			/locations [get]
func (app *application) locationsListByDistanceHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := app.parseNearbyFilter(r)
	if err != nil {
		app.validationErrorResponse(w, r, err)
		return
	}

	found, err := app.store.Locations.ListNearby(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	out := make([]locationListItem, 0, len(found))
	for _, l := range found {
		publicID, err := app.ids.Encode(l.ID)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		out = append(out, locationListItem{
			ID:         publicID,
			Name:       l.Name,
			Address:    l.Address,
			Rating:     l.Rating,
			Facilities: l.Facilities,
			Distance:   l.Distance,
		})
	}

	if err := app.jsonResponse(w, http.StatusOK, out); err != nil {
		app.internalServerError(w, r, err)
	}
}

// LocationsReadOne godoc
//
//	@Summary		Get a location
//	@Tags			Locations
//	@Produce		json
//	@Param			locationID	path		string				true	"Location ID"
//	@Success		200			{object}	locationResponse	"Location with its reviews"
//	@Failure		404			{object}	errorEnvelope		"Location not found"
//	@Router			/locations/{locationID} [get]
func (app *application) locationsReadOneHandler(w http.ResponseWriter, r *http.Request) {
	locationID, ok := app.locationIDParam(r)
	if !ok {
		app.notFoundResponse(w, r, "Location not found")
		return
	}

	loc, err := app.store.Locations.GetByID(r.Context(), locationID)
	if err != nil {
		if errors.Is(err, locations.ErrNotFound) {
			app.notFoundResponse(w, r, "Location not found")
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if loc.Reviews == nil {
		loc.Reviews = []locations.Review{}
	}

	if err := app.jsonResponse(w, http.StatusOK, locationResponse{ID: chi.URLParam(r, "locationID"), Location: loc}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// locationIDParam decodes the public location id in the URL. Ids that do not
// decode cannot exist, so callers answer 404.
func (app *application) locationIDParam(r *http.Request) (int64, bool) {
	id, err := app.ids.Decode(chi.URLParam(r, "locationID"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func (app *application) parseNearbyFilter(r *http.Request) (locations.NearbyFilter, error) {
	var filter locations.NearbyFilter
	q := r.URL.Query()

	lngStr, latStr := q.Get("lng"), q.Get("lat")
	if lngStr == "" && latStr == "" {
		return filter, nil
	}
	if lngStr == "" || latStr == "" {
		return filter, errors.New("lng and lat query parameters are both required")
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil || lng < -180 || lng > 180 {
		return filter, fmt.Errorf("invalid lng %q", lngStr)
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		return filter, fmt.Errorf("invalid lat %q", latStr)
	}

	dist := app.config.nearby.defaultMaxDistance
	if s := q.Get("maxDistance"); s != "" {
		d, err := strconv.ParseFloat(s, 64)
		if err != nil || d < 0 {
			return filter, fmt.Errorf("invalid maxDistance %q", s)
		}
		dist = d
	}

	filter.Longitude = &lng
	filter.Latitude = &lat
	filter.Distance = &dist
	return filter, nil
}
