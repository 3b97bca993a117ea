package main

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"math"
	"net/http"
	"strconv"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	pageList       = "locations-list"
	pageInfo       = "location-info"
	pageReviewForm = "location-review-form"
	pageText       = "generic-text"
)

// views holds one template set per page, each parsed together with the
// shared layout.
type views struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"stars": stars,
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2 January 2006")
	},
}

func newViews() (*views, error) {
	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	v := &views{pages: map[string]*template.Template{}}
	for _, name := range names {
		page := name[len("templates/") : len(name)-len(".html")]
		if page == "layout" {
			continue
		}
		t, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		v.pages[page] = t
	}
	return v, nil
}

// render executes the page into a buffer first so a template error can still
// produce a clean 500.
func (app *application) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	t, ok := app.views.pages[page]
	if !ok {
		app.logger.Errorw("unknown page", "page", page, "path", r.URL.Path)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		app.logger.Errorw("failed to render page", "page", page, "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// formatDistance renders meters for the list page: above 1000 as km with one
// decimal, otherwise whole meters rounded down.
func formatDistance(meters float64) string {
	if meters > 1000 {
		return strconv.FormatFloat(meters/1000, 'f', 1, 64) + "km"
	}
	return strconv.FormatFloat(math.Floor(meters), 'f', 0, 64) + "m"
}

// stars returns five flags, true for each filled star.
func stars(rating int) []bool {
	out := make([]bool, 5)
	for i := range out {
		out[i] = i < rating
	}
	return out
}
