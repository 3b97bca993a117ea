package main

import (
	"time"

	"loc8r/internal/apiclient"
	"loc8r/internal/env"
	"loc8r/internal/logger"

	"github.com/joho/godotenv"
)

var version = "1.0.0"

func main() {
	envErr := godotenv.Load()

	cfg := config{
		addr:       env.GetString("WEB_ADDR", ":8080"),
		env:        env.GetString("ENV", "development"),
		apiBaseURL: env.GetString("API_BASE_URL", "http://localhost:3000"),
		apiTimeout: env.GetDuration("API_TIMEOUT", 10*time.Second),
		logLevel:   env.GetString("LOG_LEVEL", "info"),
		nearby: nearbyConfig{
			lng:         env.GetFloat("NEARBY_LNG", 126.964062),
			lat:         env.GetFloat("NEARBY_LAT", 37.468769),
			maxDistance: env.GetFloat("NEARBY_MAX_DISTANCE", 200),
		},
	}

	log, err := logger.New(cfg.logLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if envErr != nil {
		log.Infow("no .env file loaded, using process environment", "error", envErr)
	}

	views, err := newViews()
	if err != nil {
		log.Fatalw("failed to parse templates", "error", err)
	}

	app := &application{
		config: cfg,
		logger: log,
		api:    apiclient.New(cfg.apiBaseURL, newHTTPClient(cfg.apiTimeout)),
		views:  views,
	}

	log.Infow("using api", "base_url", cfg.apiBaseURL, "version", version)

	mux := app.mount()
	if err := app.run(mux); err != nil {
		log.Fatalw("server stopped with error", "error", err)
	}
}
