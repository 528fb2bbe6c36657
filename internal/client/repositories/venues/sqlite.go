package venues

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
	"github.com/dmitrijs2005/museumkeeper/internal/common"
	"github.com/dmitrijs2005/museumkeeper/internal/dbx"
)

const table = "venues"

var columns = []string{
	"id", "stable_id", "name", "location", "rating", "hours",
	"favorites_json", "visits_json", "created_at", "updated_at", "sync_version",
}

type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) Create(ctx context.Context, rec models.VenueRecord) (models.Created, error) {
	if rec.Name == "" {
		return models.Created{}, fmt.Errorf("%w: venue name is required", common.ErrorValidation)
	}

	now := r.now()
	if rec.StableID == "" {
		rec.StableID = common.LocalID("local", now)
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = rec.CreatedAt
	}

	favorites, err := encodeJSON(rec.Favorites)
	if err != nil {
		return models.Created{}, err
	}
	visits, err := encodeJSON(rec.Visits)
	if err != nil {
		return models.Created{}, err
	}

	query, args, err := squirrel.Insert(table).
		Columns(columns[1:]...).
		Values(rec.StableID, rec.Name, rec.Location, rec.Rating, rec.Hours,
			favorites, visits, dbx.FormatTime(rec.CreatedAt), dbx.FormatTime(rec.UpdatedAt), rec.SyncVersion).
		ToSql()
	if err != nil {
		return models.Created{}, fmt.Errorf("failed to build venue insert: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Created{}, fmt.Errorf("failed to insert venue %q: %w", rec.StableID, err)
	}
	rowID, err := res.LastInsertId()
	if err != nil {
		return models.Created{}, fmt.Errorf("failed to get venue row id: %w", err)
	}

	return models.Created{RowID: rowID, StableID: rec.StableID}, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.VenueRecord, error) {
	query, args, err := squirrel.Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build venue select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select venues: %w", err)
	}
	defer rows.Close()

	result := make([]models.VenueRecord, 0)
	for rows.Next() {
		rec, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate venues: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, key models.Key) (*models.VenueRecord, error) {
	where, err := keyPredicate(key)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build venue select: %w", err)
	}

	rec, err := scanVenue(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("venue %s: %w", key, common.ErrorNotFound)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Update writes the fields set in patch and always re-stamps updated_at.
// It returns the number of rows changed (0 when key matches nothing).
func (r *SQLiteRepository) Update(ctx context.Context, key models.Key, patch Patch) (int64, error) {
	where, err := keyPredicate(key)
	if err != nil {
		return 0, err
	}

	b := squirrel.Update(table).Set("updated_at", dbx.FormatTime(r.now()))

	if patch.Name != nil {
		if *patch.Name == "" {
			return 0, fmt.Errorf("%w: venue name must not be empty", common.ErrorValidation)
		}
		b = b.Set("name", *patch.Name)
	}
	if patch.Location != nil {
		b = b.Set("location", *patch.Location)
	}
	if patch.Rating != nil {
		b = b.Set("rating", *patch.Rating)
	}
	if patch.Hours != nil {
		b = b.Set("hours", *patch.Hours)
	}
	if patch.Favorites != nil {
		s, err := encodeJSON(*patch.Favorites)
		if err != nil {
			return 0, err
		}
		b = b.Set("favorites_json", s)
	}
	if patch.Visits != nil {
		s, err := encodeJSON(*patch.Visits)
		if err != nil {
			return 0, err
		}
		b = b.Set("visits_json", s)
	}
	if patch.SyncVersion != nil {
		b = b.Set("sync_version", *patch.SyncVersion)
	}

	query, args, err := b.Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build venue update: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update venue %s: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key models.Key) (int64, error) {
	where, err := keyPredicate(key)
	if err != nil {
		return 0, err
	}

	query, args, err := squirrel.Delete(table).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build venue delete: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete venue %s: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVenue(s scanner) (*models.VenueRecord, error) {
	var (
		rec                  models.VenueRecord
		rating               sql.NullFloat64
		favorites, visits    string
		createdAt, updatedAt string
	)

	err := s.Scan(&rec.RowID, &rec.StableID, &rec.Name, &rec.Location, &rating, &rec.Hours,
		&favorites, &visits, &createdAt, &updatedAt, &rec.SyncVersion)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan venue row: %w", err)
	}

	if rating.Valid {
		rec.Rating = &rating.Float64
	}
	if err := json.Unmarshal([]byte(favorites), &rec.Favorites); err != nil {
		return nil, fmt.Errorf("failed to decode favorites of venue %s: %w", rec.StableID, err)
	}
	if err := json.Unmarshal([]byte(visits), &rec.Visits); err != nil {
		return nil, fmt.Errorf("failed to decode visits of venue %s: %w", rec.StableID, err)
	}
	if rec.CreatedAt, err = dbx.ParseTime(createdAt); err != nil {
		return nil, err
	}
	if rec.UpdatedAt, err = dbx.ParseTime(updatedAt); err != nil {
		return nil, err
	}

	return &rec, nil
}

func keyPredicate(key models.Key) (squirrel.Eq, error) {
	if id, ok := key.RowID(); ok {
		return squirrel.Eq{"id": id}, nil
	}
	if id, ok := key.StableID(); ok {
		return squirrel.Eq{"stable_id": id}, nil
	}
	return nil, fmt.Errorf("%w: empty venue key", common.ErrorValidation)
}

// encodeJSON marshals v so that a nil slice is stored as "[]", not "null".
func encodeJSON[T any](v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode json column: %w", err)
	}
	return string(b), nil
}
