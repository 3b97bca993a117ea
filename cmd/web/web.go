package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loc8r/internal/apiclient"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// locationAPI is the part of the API client the pages use.
type locationAPI interface {
	ListNearby(ctx context.Context, q apiclient.NearbyQuery) (*apiclient.NearbyResult, error)
	GetLocation(ctx context.Context, locationID string) (*apiclient.LocationResult, error)
	CreateReview(ctx context.Context, locationID, authorization string, review apiclient.NewReview) (*apiclient.CreateReviewResult, error)
}

type application struct {
	config config
	logger *zap.SugaredLogger
	api    locationAPI
	views  *views
}

type config struct {
	addr       string
	env        string
	apiBaseURL string
	apiTimeout time.Duration
	logLevel   string
	nearby     nearbyConfig
}

// nearbyConfig is the search point used by the home page when the query
// string does not override it.
type nearbyConfig struct {
	lng         float64
	lat         float64
	maxDistance float64 // meters
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	static, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Get("/", app.homelistHandler)
	r.Route("/location/{locationID}", func(r chi.Router) {
		r.Get("/", app.locationInfoHandler)
		r.Get("/review/new", app.addReviewHandler)
		r.Post("/review/new", app.doAddReviewHandler)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		app.showError(w, r, http.StatusNotFound)
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("web server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-shutdown; err != nil {
		return err
	}

	app.logger.Infow("web server has stopped", "addr", app.config.addr)

	return nil
}
