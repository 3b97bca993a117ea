// Package apiclient calls the Loc8r JSON API on behalf of the web pages.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const ValidationErrorName = "ValidationError"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:3000". A nil httpClient gets a 10s timeout client.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

type errorBody struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (c *Client) ListNearby(ctx context.Context, q NearbyQuery) (*NearbyResult, error) {
	params := url.Values{}
	if q.Lng != nil && q.Lat != nil {
		params.Set("lng", strconv.FormatFloat(*q.Lng, 'f', -1, 64))
		params.Set("lat", strconv.FormatFloat(*q.Lat, 'f', -1, 64))
		if q.MaxDistance != nil {
			params.Set("maxDistance", strconv.FormatFloat(*q.MaxDistance, 'f', -1, 64))
		}
	}

	path := "/api/locations"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	status, raw, err := c.do(ctx, "list nearby", http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, upstreamError(status, raw)
	}

	var out []NearbyLocation
	if err := decodeData(raw, &out); err != nil {
		return nil, &UpstreamError{Status: status, Message: err.Error()}
	}
	return &NearbyResult{Locations: out}, nil
}

func (c *Client) GetLocation(ctx context.Context, locationID string) (*LocationResult, error) {
	status, raw, err := c.do(ctx, "get location", http.MethodGet, "/api/locations/"+url.PathEscape(locationID), "", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, upstreamError(status, raw)
	}

	var loc Location
	if err := decodeData(raw, &loc); err != nil {
		return nil, &UpstreamError{Status: status, Message: err.Error()}
	}
	return &LocationResult{Location: loc}, nil
}

// CreateReview posts a review with the caller's Authorization header value.
// 201 and a 400 ValidationError are results; every other status is an
// *UpstreamError.
func (c *Client) CreateReview(ctx context.Context, locationID, authorization string, review NewReview) (*CreateReviewResult, error) {
	body, err := json.Marshal(review)
	if err != nil {
		return nil, err
	}

	path := "/api/locations/" + url.PathEscape(locationID) + "/reviews"
	status, raw, err := c.do(ctx, "create review", http.MethodPost, path, authorization, body)
	if err != nil {
		return nil, err
	}

	switch status {
	case http.StatusCreated:
		var rv Review
		if err := decodeData(raw, &rv); err != nil {
			return nil, &UpstreamError{Status: status, Message: err.Error()}
		}
		return &CreateReviewResult{Outcome: Created, Review: rv}, nil
	case http.StatusBadRequest:
		uerr := upstreamError(status, raw)
		if uerr.Name == ValidationErrorName {
			return &CreateReviewResult{Outcome: Invalid, Message: uerr.Message}, nil
		}
		return nil, uerr
	default:
		return nil, upstreamError(status, raw)
	}
}

func (c *Client) do(ctx context.Context, op, method, path, authorization string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}
	return resp.StatusCode, raw, nil
}

func decodeData(raw []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("response has no data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

// upstreamError keeps the API's name and message when the body is an error
// envelope and falls back to the raw text otherwise.
func upstreamError(status int, raw []byte) *UpstreamError {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return &UpstreamError{Status: status, Message: strings.TrimSpace(string(raw))}
	}
	return &UpstreamError{Status: status, Name: body.Name, Message: body.Message}
}
