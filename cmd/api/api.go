package main

import (
	"context"
	"errors"
	"expvar"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loc8r/docs"
	"loc8r/internal/auth"
	"loc8r/internal/domain/storage"
	"loc8r/internal/ids"
	"loc8r/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// ratingQueue receives the id of every location whose reviews changed.
type ratingQueue interface {
	Enqueue(locationID int64) bool
}

type application struct {
	config        config
	store         *storage.Container
	logger        *zap.SugaredLogger
	authenticator auth.Authenticator
	rateLimiter   ratelimiter.Limiter
	ids           *ids.Codec
	ratings       ratingQueue
}

type config struct {
	addr        string
	env         string
	apiURL      string
	logLevel    string
	db          dbConfig
	auth        authConfig
	ids         idsConfig
	ratings     ratingsConfig
	nearby      nearbyConfig
	rateLimiter ratelimiter.Config
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}

type tokenConfig struct {
	secret string
	aud    string
	iss    string
}

type basicConfig struct {
	user string
	pass string
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleTime  string
	migrate      bool
}

type idsConfig struct {
	salt      string
	minLength int
}

type ratingsConfig struct {
	queueSize int
	workers   int
}

type nearbyConfig struct {
	defaultMaxDistance float64 // meters
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/api/swagger/doc.json")))

		r.Route("/locations", func(r chi.Router) {
			r.Get("/", app.locationsListByDistanceHandler)

			r.Route("/{locationID}", func(r chi.Router) {
				r.Get("/", app.locationsReadOneHandler)

				r.Route("/reviews", func(r chi.Router) {
					r.With(app.RateLimiterMiddleware, app.AuthTokenMiddleware).Post("/", app.reviewsCreateHandler)
					r.Get("/{reviewID}", app.reviewsReadOneHandler)
					r.With(app.RateLimiterMiddleware).Put("/{reviewID}", app.reviewsUpdateOneHandler)
					r.With(app.RateLimiterMiddleware).Delete("/{reviewID}", app.reviewsDeleteOneHandler)
				})
			})
		})
	})

	return r
}

// run serves until SIGINT/SIGTERM, then shuts the server down. Queued rating
// recomputes are drained by the caller after run returns.
func (app *application) run(mux http.Handler) error {
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api"

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

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
