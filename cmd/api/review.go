package main

import (
	"errors"
	"net/http"
	"time"

	"loc8r/internal/domain/locations"
	"loc8r/internal/domain/users"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Author is accepted for compatibility with form posts but the stored author
// always comes from the authenticated user.
type createReviewPayload struct {
	Author     string `json:"author,omitempty"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	ReviewText string `json:"reviewText" validate:"required,max=2000"`
}

// Zero values mean "leave unchanged".
type updateReviewPayload struct {
	Author     string `json:"author,omitempty" validate:"omitempty,max=100"`
	Rating     int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	ReviewText string `json:"reviewText,omitempty" validate:"omitempty,max=2000"`
}

type locationSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type reviewWithLocation struct {
	Location locationSummary  `json:"location"`
	Review   locations.Review `json:"review"`
}

// ReviewsCreate godoc
//
//	@Summary		Add a review to a location
//	@Description	Appends a review authored by the authenticated user. The location's average rating is recomputed afterwards.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			locationID	path		string				true	"Location ID"
//	@Param			payload		body		createReviewPayload	true	"Review"
//	@Success		201			{object}	locations.Review	"Created review"
//	@Failure		400			{object}	errorEnvelope		"ValidationError or StoreError"
//	@Failure		401			{object}	errorEnvelope		"Unauthorized"
//	@Failure		404			{object}	errorEnvelope		"User or location not found"
//	@Security		ApiKeyAuth
//	@Router			/locations/{locationID}/reviews [post]
func (app *application) reviewsCreateHandler(w http.ResponseWriter, r *http.Request) {
	identity := getIdentityFromContext(r)
	if identity == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("no identity on request"))
		return
	}

	user, err := app.store.Users.GetByEmail(r.Context(), identity.Email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			app.notFoundResponse(w, r, "User not found")
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	locationID, ok := app.locationIDParam(r)
	if !ok {
		app.notFoundResponse(w, r, "Location not found")
		return
	}

	var payload createReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.validationErrorResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.validationErrorResponse(w, r, err)
		return
	}

	review := &locations.Review{
		ID:         uuid.NewString(),
		Author:     user.Name,
		Rating:     payload.Rating,
		ReviewText: payload.ReviewText,
		CreatedOn:  time.Now().UTC(),
	}

	if err := app.store.Locations.AddReview(r.Context(), locationID, review); err != nil {
		if errors.Is(err, locations.ErrNotFound) {
			app.notFoundResponse(w, r, "Location not found")
			return
		}
		app.storeErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, review); err != nil {
		app.logger.Errorw("failed to write review response", "location_id", locationID, "error", err)
	}

	app.ratings.Enqueue(locationID)
}

// ReviewsReadOne godoc
//
//	@Summary	Get one review
//	@Tags		Reviews
//	@Produce	json
//	@Param		locationID	path		string				true	"Location ID"
//	@Param		reviewID	path		string				true	"Review ID"
//	@Success	200			{object}	reviewWithLocation	"Review and its location"
//	@Failure	404			{object}	errorEnvelope		"Location or review not found"
//	@Router		/locations/{locationID}/reviews/{reviewID} [get]
func (app *application) reviewsReadOneHandler(w http.ResponseWriter, r *http.Request) {
	locationID, summary, review, ok := app.loadReview(w, r)
	if !ok {
		return
	}

	resp := reviewWithLocation{
		Location: locationSummary{ID: chi.URLParam(r, "locationID"), Name: summary.Name},
		Review:   *review,
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.logger.Errorw("failed to write review response", "location_id", locationID, "error", err)
	}
}

// ReviewsUpdateOne godoc
//
//	@Summary		Update a review
//	@Description	Only non-empty fields overwrite the stored review.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			locationID	path		string				true	"Location ID"
//	@Param			reviewID	path		string				true	"Review ID"
//	@Param			payload		body		updateReviewPayload	true	"Fields to change"
//	@Success		200			{object}	locations.Review	"Updated review"
//	@Failure		400			{object}	errorEnvelope		"ValidationError or StoreError"
//	@Failure		404			{object}	errorEnvelope		"Location or review not found"
//	@Router			/locations/{locationID}/reviews/{reviewID} [put]
func (app *application) reviewsUpdateOneHandler(w http.ResponseWriter, r *http.Request) {
	var payload updateReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.validationErrorResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.validationErrorResponse(w, r, err)
		return
	}

	locationID, _, review, ok := app.loadReview(w, r)
	if !ok {
		return
	}

	updated := mergeReview(*review, payload)

	if err := app.store.Locations.ReplaceReview(r.Context(), locationID, &updated); err != nil {
		if errors.Is(err, locations.ErrReviewNotFound) {
			app.notFoundResponse(w, r, "Review not found")
			return
		}
		app.storeErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, updated); err != nil {
		app.logger.Errorw("failed to write review response", "location_id", locationID, "error", err)
	}

	app.ratings.Enqueue(locationID)
}

// ReviewsDeleteOne godoc
//
//	@Summary	Delete a review
//	@Tags		Reviews
//	@Param		locationID	path	string	true	"Location ID"
//	@Param		reviewID	path	string	true	"Review ID"
//	@Success	204			"Deleted"
//	@Failure	404			{object}	errorEnvelope	"Location or review not found"
//	@Router		/locations/{locationID}/reviews/{reviewID} [delete]
func (app *application) reviewsDeleteOneHandler(w http.ResponseWriter, r *http.Request) {
	locationID, _, review, ok := app.loadReview(w, r)
	if !ok {
		return
	}

	if err := app.store.Locations.DeleteReview(r.Context(), locationID, review.ID); err != nil {
		if errors.Is(err, locations.ErrReviewNotFound) {
			app.notFoundResponse(w, r, "Review not found")
			return
		}
		app.storeErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)

	app.ratings.Enqueue(locationID)
}

// loadReview resolves both URL ids and writes the 404 itself when either is
// unknown.
func (app *application) loadReview(w http.ResponseWriter, r *http.Request) (int64, *locations.Summary, *locations.Review, bool) {
	locationID, ok := app.locationIDParam(r)
	if !ok {
		app.notFoundResponse(w, r, "Location not found")
		return 0, nil, nil, false
	}

	summary, review, err := app.store.Locations.GetReview(r.Context(), locationID, chi.URLParam(r, "reviewID"))
	switch {
	case errors.Is(err, locations.ErrNotFound):
		app.notFoundResponse(w, r, "Location not found")
		return 0, nil, nil, false
	case errors.Is(err, locations.ErrReviewNotFound):
		app.notFoundResponse(w, r, "Review not found")
		return 0, nil, nil, false
	case err != nil:
		app.internalServerError(w, r, err)
		return 0, nil, nil, false
	}

	return locationID, summary, review, true
}

// mergeReview applies a patch: empty author or text and a zero rating keep
// the existing value instead of clearing it.
func mergeReview(existing locations.Review, p updateReviewPayload) locations.Review {
	if p.Author != "" {
		existing.Author = p.Author
	}
	if p.Rating != 0 {
		existing.Rating = p.Rating
	}
	if p.ReviewText != "" {
		existing.ReviewText = p.ReviewText
	}
	return existing
}
