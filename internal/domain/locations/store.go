package locations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

// ListNearby returns locations within filter.Distance of the given point,
// nearest first. Without a point every location is returned ordered by name.
func (r *Repository) ListNearby(ctx context.Context, filter NearbyFilter) ([]NearbyLocation, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var (
		rows pgx.Rows
		err  error
	)
	if filter.HasLocation() {
		query := `
		SELECT id, name, address, rating, facilities,
		       ST_Distance(coords, ST_MakePoint($1, $2)::geography) AS distance
		FROM locations
		WHERE ST_DWithin(coords, ST_MakePoint($1, $2)::geography, $3)
		ORDER BY distance ASC`
		rows, err = r.db.Query(ctx, query, *filter.Longitude, *filter.Latitude, *filter.Distance)
	} else {
		query := `
		SELECT id, name, address, rating, facilities, 0::float8 AS distance
		FROM locations
		ORDER BY name`
		rows, err = r.db.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("error querying locations: %w", err)
	}
	defer rows.Close()

	out := []NearbyLocation{}
	for rows.Next() {
		var l NearbyLocation
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.Rating, &l.Facilities, &l.Distance); err != nil {
			return nil, fmt.Errorf("error scanning location row: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, locationID int64) (*Location, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
	SELECT id, name, address, facilities,
	       ST_X(coords::geometry) AS lng, ST_Y(coords::geometry) AS lat,
	       opening_times, rating, reviews
	FROM locations
	WHERE id = $1`

	var (
		l           Location
		openingJSON []byte
		reviewsJSON []byte
	)
	err := r.db.QueryRow(ctx, query, locationID).Scan(
		&l.ID, &l.Name, &l.Address, &l.Facilities,
		&l.Coords.Lng, &l.Coords.Lat,
		&openingJSON, &l.Rating, &reviewsJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(openingJSON, &l.OpeningTimes); err != nil {
		return nil, fmt.Errorf("decode opening_times: %w", err)
	}
	if err := json.Unmarshal(reviewsJSON, &l.Reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return &l, nil
}

func (r *Repository) GetReview(ctx context.Context, locationID int64, reviewID string) (*Summary, *Review, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
	SELECT id, name,
	       (SELECT elem FROM jsonb_array_elements(reviews) AS elem
	        WHERE elem->>'id' = $2 LIMIT 1)
	FROM locations
	WHERE id = $1`

	var (
		s          Summary
		reviewJSON []byte
	)
	if err := r.db.QueryRow(ctx, query, locationID, reviewID).Scan(&s.ID, &s.Name, &reviewJSON); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if reviewJSON == nil {
		return &s, nil, ErrReviewNotFound
	}

	var rv Review
	if err := json.Unmarshal(reviewJSON, &rv); err != nil {
		return nil, nil, fmt.Errorf("decode review: %w", err)
	}
	return &s, &rv, nil
}

// AddReview appends in a single statement so concurrent submissions to the
// same location both land.
func (r *Repository) AddReview(ctx context.Context, locationID int64, review *Review) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	raw, err := json.Marshal(review)
	if err != nil {
		return err
	}

	query := `UPDATE locations SET reviews = reviews || jsonb_build_array($2::jsonb) WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, locationID, string(raw))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) ReplaceReview(ctx context.Context, locationID int64, review *Review) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	raw, err := json.Marshal(review)
	if err != nil {
		return err
	}

	query := `
	UPDATE locations SET reviews = (
		SELECT COALESCE(jsonb_agg(CASE WHEN t.elem->>'id' = $2 THEN $3::jsonb ELSE t.elem END ORDER BY t.ord), '[]'::jsonb)
		FROM jsonb_array_elements(reviews) WITH ORDINALITY AS t(elem, ord)
	)
	WHERE id = $1 AND reviews @> jsonb_build_array(jsonb_build_object('id', $2::text))`

	tag, err := r.db.Exec(ctx, query, locationID, review.ID, string(raw))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *Repository) DeleteReview(ctx context.Context, locationID int64, reviewID string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
	UPDATE locations SET reviews = (
		SELECT COALESCE(jsonb_agg(t.elem ORDER BY t.ord), '[]'::jsonb)
		FROM jsonb_array_elements(reviews) WITH ORDINALITY AS t(elem, ord)
		WHERE t.elem->>'id' <> $2
	)
	WHERE id = $1 AND reviews @> jsonb_build_array(jsonb_build_object('id', $2::text))`

	tag, err := r.db.Exec(ctx, query, locationID, reviewID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *Repository) GetRatingAndReviews(ctx context.Context, locationID int64) (int, []Review, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var (
		rating      int
		reviewsJSON []byte
	)
	err := r.db.QueryRow(ctx, `SELECT rating, reviews FROM locations WHERE id = $1`, locationID).Scan(&rating, &reviewsJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil, ErrNotFound
		}
		return 0, nil, err
	}

	var reviews []Review
	if err := json.Unmarshal(reviewsJSON, &reviews); err != nil {
		return 0, nil, fmt.Errorf("decode reviews: %w", err)
	}
	return rating, reviews, nil
}

func (r *Repository) SetRating(ctx context.Context, locationID int64, rating int) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, `UPDATE locations SET rating = $2 WHERE id = $1`, locationID, rating)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
