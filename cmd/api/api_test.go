package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"expvar"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"loc8r/internal/auth"
	"loc8r/internal/domain/locations"
	"loc8r/internal/domain/storage"
	"loc8r/internal/domain/users"
	"loc8r/internal/ids"
	"loc8r/internal/ratelimiter"
	"loc8r/internal/ratings"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeLocations is an in-memory locations.Store. Failure fields inject
// errors into single operations.
type fakeLocations struct {
	mu   sync.Mutex
	locs map[int64]*locations.Location

	addErr       error
	setRatingErr error
}

func newFakeLocations(locs ...*locations.Location) *fakeLocations {
	f := &fakeLocations{locs: map[int64]*locations.Location{}}
	for _, l := range locs {
		f.locs[l.ID] = l
	}
	return f
}

func (f *fakeLocations) ListNearby(ctx context.Context, filter locations.NearbyFilter) ([]locations.NearbyLocation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []locations.NearbyLocation{}
	for _, l := range f.locs {
		out = append(out, locations.NearbyLocation{ID: l.ID, Name: l.Name, Address: l.Address, Rating: l.Rating, Facilities: l.Facilities, Distance: float64(l.ID) * 100})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeLocations) GetByID(ctx context.Context, id int64) (*locations.Location, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	l, ok := f.locs[id]
	if !ok {
		return nil, locations.ErrNotFound
	}
	cp := *l
	cp.Reviews = append([]locations.Review(nil), l.Reviews...)
	return &cp, nil
}

func (f *fakeLocations) GetReview(ctx context.Context, id int64, reviewID string) (*locations.Summary, *locations.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	l, ok := f.locs[id]
	if !ok {
		return nil, nil, locations.ErrNotFound
	}
	for _, rv := range l.Reviews {
		if rv.ID == reviewID {
			rv := rv
			return &locations.Summary{ID: l.ID, Name: l.Name}, &rv, nil
		}
	}
	return &locations.Summary{ID: l.ID, Name: l.Name}, nil, locations.ErrReviewNotFound
}

func (f *fakeLocations) AddReview(ctx context.Context, id int64, review *locations.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.addErr != nil {
		return f.addErr
	}
	l, ok := f.locs[id]
	if !ok {
		return locations.ErrNotFound
	}
	l.Reviews = append(l.Reviews, *review)
	return nil
}

func (f *fakeLocations) ReplaceReview(ctx context.Context, id int64, review *locations.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	l, ok := f.locs[id]
	if !ok {
		return locations.ErrReviewNotFound
	}
	for i := range l.Reviews {
		if l.Reviews[i].ID == review.ID {
			l.Reviews[i] = *review
			return nil
		}
	}
	return locations.ErrReviewNotFound
}

func (f *fakeLocations) DeleteReview(ctx context.Context, id int64, reviewID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	l, ok := f.locs[id]
	if !ok {
		return locations.ErrReviewNotFound
	}
	for i := range l.Reviews {
		if l.Reviews[i].ID == reviewID {
			l.Reviews = append(l.Reviews[:i], l.Reviews[i+1:]...)
			return nil
		}
	}
	return locations.ErrReviewNotFound
}

func (f *fakeLocations) GetRatingAndReviews(ctx context.Context, id int64) (int, []locations.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	l, ok := f.locs[id]
	if !ok {
		return 0, nil, locations.ErrNotFound
	}
	return l.Rating, append([]locations.Review(nil), l.Reviews...), nil
}

func (f *fakeLocations) SetRating(ctx context.Context, id int64, rating int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.setRatingErr != nil {
		return f.setRatingErr
	}
	l, ok := f.locs[id]
	if !ok {
		return locations.ErrNotFound
	}
	l.Rating = rating
	return nil
}

func (f *fakeLocations) rating(id int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locs[id].Rating
}

func (f *fakeLocations) reviewCount(id int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.locs[id].Reviews)
}

type fakeUsers map[string]*users.User

func (f fakeUsers) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	u, ok := f[email]
	if !ok {
		return nil, users.ErrNotFound
	}
	return u, nil
}

type testEnv struct {
	app       *application
	handler   http.Handler
	locations *fakeLocations
	metrics   *expvar.Map
	token     string
	starcups  string // public id of location 1
}

const testSecret = "test-secret"

func newTestEnv(t *testing.T, locs *fakeLocations) *testEnv {
	t.Helper()

	codec, err := ids.NewCodec("test-salt", 8)
	require.NoError(t, err)

	authenticator := auth.NewJWTAuthenticator(testSecret, "loc8r", "loc8r")
	token, err := authenticator.GenerateToken("simon@example.com", "Simon", time.Hour)
	require.NoError(t, err)

	logger := zap.NewNop().Sugar()
	metrics := new(expvar.Map).Init()
	recomputer := ratings.NewRecomputer(locs, logger, metrics, 16)
	recomputer.Start(context.Background(), 1)
	t.Cleanup(recomputer.Close)

	app := &application{
		config: config{
			env:    "test",
			nearby: nearbyConfig{defaultMaxDistance: 20000},
			rateLimiter: ratelimiter.Config{
				Enabled: false,
			},
		},
		logger: logger,
		store: &storage.Container{
			Locations: locs,
			Users: fakeUsers{
				"simon@example.com": {ID: 1, Email: "simon@example.com", Name: "Simon Holmes"},
			},
		},
		authenticator: authenticator,
		rateLimiter:   ratelimiter.NewFixedWindowLimiter(100, time.Minute),
		ids:           codec,
		ratings:       recomputer,
	}

	public, err := codec.Encode(1)
	require.NoError(t, err)

	return &testEnv{
		app:       app,
		handler:   app.mount(),
		locations: locs,
		metrics:   metrics,
		token:     token,
		starcups:  public,
	}
}

func starcups(reviews ...locations.Review) *locations.Location {
	return &locations.Location{
		ID:         1,
		Name:       "Starcups",
		Address:    "125 High Street, Reading, RG6 1PS",
		Facilities: []string{"Hot drinks", "Food", "Premium wifi"},
		Coords:     locations.Coords{Lng: -0.9690884, Lat: 51.455041},
		Rating:     3,
		Reviews:    reviews,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)
	return rr
}

func decodeData(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()

	var env errorEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

var errBoom = errors.New("boom")
