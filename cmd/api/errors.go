package main

import (
	"net/http"
	"strconv"
	"time"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadRequest, err.Error())
}

// validationErrorResponse tags the body with name "ValidationError"; the web
// tier sends the user back to the form when it sees it.
func (app *application) validationErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("validation error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSON(w, http.StatusBadRequest, &errorEnvelope{
		Name:    "ValidationError",
		Message: err.Error(),
		Status:  http.StatusBadRequest,
		Errors:  validationErrors(err),
	})
}

// storeErrorResponse reports a failed review write as a client error carrying
// the store's message.
func (app *application) storeErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("store error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSON(w, http.StatusBadRequest, &errorEnvelope{
		Name:    "StoreError",
		Message: err.Error(),
		Status:  http.StatusBadRequest,
	})
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path, "message", message)

	writeJSONError(w, http.StatusNotFound, message)
}

func (app *application) unauthorizedErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSON(w, http.StatusUnauthorized, &errorEnvelope{
		Name:    "UnauthorizedError",
		Message: "UnauthorizedError: " + err.Error(),
		Status:  http.StatusUnauthorized,
	})
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)

	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter time.Duration) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))

	writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter.String())
}
