package locations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound          = errors.New("location not found")
	ErrReviewNotFound    = errors.New("review not found")
	QueryTimeoutDuration = time.Second * 5
)

// Coords is a longitude/latitude pair. On the wire it is the two-element
// array [lng, lat], matching the order PostGIS points use.
type Coords struct {
	Lng float64
	Lat float64
}

func (c Coords) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lng, c.Lat})
}

func (c *Coords) UnmarshalJSON(b []byte) error {
	var pair []float64
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("coords: expected [lng, lat], got %d values", len(pair))
	}
	c.Lng, c.Lat = pair[0], pair[1]
	return nil
}

type OpeningTime struct {
	Days    string `json:"days"`
	Opening string `json:"opening,omitempty"`
	Closing string `json:"closing,omitempty"`
	Closed  bool   `json:"closed"`
}

// Review is embedded in its location's reviews array and has no row of its own.
type Review struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	Rating     int       `json:"rating"` // 1-5
	ReviewText string    `json:"reviewText"`
	CreatedOn  time.Time `json:"createdOn"`
}

type Location struct {
	ID           int64         `json:"-"`
	Name         string        `json:"name"`
	Address      string        `json:"address"`
	Facilities   []string      `json:"facilities"`
	Coords       Coords        `json:"coords"`
	OpeningTimes []OpeningTime `json:"openingTimes"`
	Rating       int           `json:"rating"`
	Reviews      []Review      `json:"reviews"`
}

// NearbyLocation is a list row; Distance is in metres from the query point.
type NearbyLocation struct {
	ID         int64    `json:"-"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Rating     int      `json:"rating"`
	Facilities []string `json:"facilities"`
	Distance   float64  `json:"distance"`
}

type Summary struct {
	ID   int64
	Name string
}

// NearbyFilter restricts the list to a radius when all three fields are set.
type NearbyFilter struct {
	Longitude *float64
	Latitude  *float64
	Distance  *float64 // meters
}

func (f NearbyFilter) HasLocation() bool {
	return f.Longitude != nil && f.Latitude != nil && f.Distance != nil
}

type Store interface {
	ListNearby(ctx context.Context, filter NearbyFilter) ([]NearbyLocation, error)
	GetByID(ctx context.Context, locationID int64) (*Location, error)
	GetReview(ctx context.Context, locationID int64, reviewID string) (*Summary, *Review, error)
	AddReview(ctx context.Context, locationID int64, review *Review) error
	ReplaceReview(ctx context.Context, locationID int64, review *Review) error
	DeleteReview(ctx context.Context, locationID int64, reviewID string) error

	// GetRatingAndReviews reads only the rating and reviews columns.
	GetRatingAndReviews(ctx context.Context, locationID int64) (int, []Review, error)
	SetRating(ctx context.Context, locationID int64, rating int) error
}
