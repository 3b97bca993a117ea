package apiclient

import (
	"fmt"
	"time"
)

// NearbyLocation is one entry of the nearby list.
type NearbyLocation struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Rating     int      `json:"rating"`
	Facilities []string `json:"facilities"`
	Distance   float64  `json:"distance"` // meters
}

type OpeningTime struct {
	Days    string `json:"days"`
	Opening string `json:"opening,omitempty"`
	Closing string `json:"closing,omitempty"`
	Closed  bool   `json:"closed"`
}

type Review struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"reviewText"`
	CreatedOn  time.Time `json:"createdOn"`
}

// Location is the full location document. Coords is [lng, lat] as sent by
// the API.
type Location struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Address      string        `json:"address"`
	Rating       int           `json:"rating"`
	Facilities   []string      `json:"facilities"`
	Coords       []float64     `json:"coords"`
	OpeningTimes []OpeningTime `json:"openingTimes"`
	Reviews      []Review      `json:"reviews"`
}

// NearbyQuery selects the search point. A nil Lng or Lat lists every location.
type NearbyQuery struct {
	Lng         *float64
	Lat         *float64
	MaxDistance *float64
}

type NewReview struct {
	Author     string `json:"author,omitempty"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"reviewText"`
}

type NearbyResult struct {
	Locations []NearbyLocation
}

type LocationResult struct {
	Location Location
}

// Outcome classifies a create-review call that reached the API and got an
// answer the caller is expected to handle.
type Outcome int

const (
	Created Outcome = iota
	Invalid
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// CreateReviewResult holds the new review when Outcome is Created and the
// API's message when it is Invalid.
type CreateReviewResult struct {
	Outcome Outcome
	Review  Review
	Message string
}

// TransportError means the request produced no HTTP response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("apiclient: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamError is any response with a status the call does not expect.
type UpstreamError struct {
	Status  int
	Name    string
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("apiclient: upstream %d %s: %s", e.Status, e.Name, e.Message)
	}
	return fmt.Sprintf("apiclient: upstream %d: %s", e.Status, e.Message)
}
