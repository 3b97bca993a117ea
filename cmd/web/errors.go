package main

import (
	"fmt"
	"net/http"
)

type textPage struct {
	Title   string
	Content string
}

func (app *application) showError(w http.ResponseWriter, r *http.Request, status int) {
	page := textPage{
		Title:   fmt.Sprintf("%d, something's gone wrong", status),
		Content: "Something went wrong.",
	}
	if status == http.StatusNotFound {
		page = textPage{
			Title:   "404, page not found",
			Content: "Sorry, that page cannot be found.",
		}
	}

	app.render(w, r, status, pageText, page)
}
