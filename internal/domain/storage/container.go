package storage

import (
	"loc8r/internal/domain/locations"
	"loc8r/internal/domain/users"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Container groups the repositories the API depends on. Fields are
// interfaces so handlers can be exercised against in-memory fakes.
type Container struct {
	Locations locations.Store
	Users     users.Store
}

func NewContainer(db *pgxpool.Pool) *Container {
	return &Container{
		Locations: locations.NewRepository(db),
		Users:     users.NewRepository(db),
	}
}
