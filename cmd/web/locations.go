package main

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"loc8r/internal/apiclient"

	"github.com/go-chi/chi/v5"
)

type pageHeader struct {
	Title     string
	Strapline string
}

type listItem struct {
	ID         string
	Name       string
	Address    string
	Rating     int
	Facilities []string
	Distance   string
}

type listPage struct {
	Title      string
	PageHeader pageHeader
	Sidebar    string
	Locations  []listItem
	Message    string
}

type coords struct {
	Lng float64
	Lat float64
}

type locationView struct {
	ID           string
	Name         string
	Address      string
	Rating       int
	Facilities   []string
	Coords       coords
	HasCoords    bool
	OpeningTimes []apiclient.OpeningTime
	Reviews      []apiclient.Review
}

type detailSidebar struct {
	Context      string
	CallToAction string
}

type detailPage struct {
	Title      string
	PageHeader pageHeader
	Sidebar    detailSidebar
	Location   locationView
}

type reviewFormPage struct {
	Title      string
	PageHeader pageHeader
	Error      string
}

const (
	msgNoPlaces  = "No places found nearby"
	msgLookupErr = "API lookup error"
)

func (app *application) homelistHandler(w http.ResponseWriter, r *http.Request) {
	q := app.nearbyQuery(r.URL.Query())

	page := listPage{
		Title:      "Loc8r - find a place to work with wifi",
		PageHeader: pageHeader{Title: "Loc8r", Strapline: "Find places to work with wifi near you!"},
		Sidebar:    "Looking for wifi and a seat? Loc8r helps you find places to work when out and about.",
		Locations:  []listItem{},
	}

	res, err := app.api.ListNearby(r.Context(), q)
	if err != nil {
		app.logger.Warnw("nearby lookup failed", "error", err)
		page.Message = msgLookupErr
		app.render(w, r, http.StatusOK, pageList, page)
		return
	}

	for _, l := range res.Locations {
		page.Locations = append(page.Locations, listItem{
			ID:         l.ID,
			Name:       l.Name,
			Address:    l.Address,
			Rating:     l.Rating,
			Facilities: l.Facilities,
			Distance:   formatDistance(l.Distance),
		})
	}
	if len(page.Locations) == 0 {
		page.Message = msgNoPlaces
	}

	app.render(w, r, http.StatusOK, pageList, page)
}

// nearbyQuery starts from the configured point; any valid lng, lat or
// maxDistance in the query string replaces it.
func (app *application) nearbyQuery(values url.Values) apiclient.NearbyQuery {
	lng, lat, dist := app.config.nearby.lng, app.config.nearby.lat, app.config.nearby.maxDistance

	override := func(key string, dst *float64) {
		if s := values.Get(key); s != "" {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				*dst = f
			}
		}
	}
	override("lng", &lng)
	override("lat", &lat)
	override("maxDistance", &dist)

	return apiclient.NearbyQuery{Lng: &lng, Lat: &lat, MaxDistance: &dist}
}

func (app *application) locationInfoHandler(w http.ResponseWriter, r *http.Request) {
	loc, ok := app.fetchLocation(w, r)
	if !ok {
		return
	}

	app.render(w, r, http.StatusOK, pageInfo, detailPage{
		Title:      loc.Name,
		PageHeader: pageHeader{Title: loc.Name},
		Sidebar: detailSidebar{
			Context:      "is on Loc8r because it has accessible wifi and space to sit down with your laptop and get some work done.",
			CallToAction: "If you've been and you like it - or if you don't - please leave a review to help other people just like you.",
		},
		Location: loc,
	})
}

func (app *application) addReviewHandler(w http.ResponseWriter, r *http.Request) {
	loc, ok := app.fetchLocation(w, r)
	if !ok {
		return
	}

	app.render(w, r, http.StatusOK, pageReviewForm, reviewFormPage{
		Title:      "Review " + loc.Name + " on Loc8r",
		PageHeader: pageHeader{Title: "Review " + loc.Name},
		Error:      r.URL.Query().Get("err"),
	})
}

func (app *application) doAddReviewHandler(w http.ResponseWriter, r *http.Request) {
	locationID := chi.URLParam(r, "locationID")
	formURL := "/location/" + url.PathEscape(locationID) + "/review/new?err=val"

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, formURL, http.StatusFound)
		return
	}

	author := strings.TrimSpace(r.PostForm.Get("name"))
	text := strings.TrimSpace(r.PostForm.Get("review"))
	rating, err := strconv.Atoi(r.PostForm.Get("rating"))
	if author == "" || text == "" || err != nil || rating == 0 {
		http.Redirect(w, r, formURL, http.StatusFound)
		return
	}

	res, err := app.api.CreateReview(r.Context(), locationID, r.Header.Get("Authorization"), apiclient.NewReview{
		Author:     author,
		Rating:     rating,
		ReviewText: text,
	})
	if err != nil {
		app.showAPIError(w, r, err)
		return
	}

	switch res.Outcome {
	case apiclient.Created:
		http.Redirect(w, r, "/location/"+url.PathEscape(locationID), http.StatusFound)
	case apiclient.Invalid:
		http.Redirect(w, r, formURL, http.StatusFound)
	default:
		app.logger.Errorw("unhandled create review outcome", "outcome", res.Outcome.String())
		app.showError(w, r, http.StatusInternalServerError)
	}
}

// fetchLocation loads the location named in the URL and reshapes its coords.
// On failure it has already written the error page.
func (app *application) fetchLocation(w http.ResponseWriter, r *http.Request) (locationView, bool) {
	res, err := app.api.GetLocation(r.Context(), chi.URLParam(r, "locationID"))
	if err != nil {
		app.showAPIError(w, r, err)
		return locationView{}, false
	}

	l := res.Location
	view := locationView{
		ID:           l.ID,
		Name:         l.Name,
		Address:      l.Address,
		Rating:       l.Rating,
		Facilities:   l.Facilities,
		OpeningTimes: l.OpeningTimes,
		Reviews:      l.Reviews,
	}
	if len(l.Coords) == 2 {
		view.Coords = coords{Lng: l.Coords[0], Lat: l.Coords[1]}
		view.HasCoords = true
	}
	return view, true
}

// showAPIError maps a client error to an error page: the upstream status when
// there was a response, 500 when there was none.
func (app *application) showAPIError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		upstream  *apiclient.UpstreamError
		transport *apiclient.TransportError
	)
	switch {
	case errors.As(err, &upstream):
		app.logger.Warnw("api returned an error", "status", upstream.Status, "name", upstream.Name, "message", upstream.Message, "path", r.URL.Path)
		app.showError(w, r, upstream.Status)
	case errors.As(err, &transport):
		app.logger.Errorw("api unreachable", "op", transport.Op, "error", transport.Err, "path", r.URL.Path)
		app.showError(w, r, http.StatusInternalServerError)
	default:
		app.logger.Errorw("api call failed", "error", err, "path", r.URL.Path)
		app.showError(w, r, http.StatusInternalServerError)
	}
}
