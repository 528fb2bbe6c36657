package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/museumkeeper/internal/client/models"
	"github.com/dmitrijs2005/museumkeeper/internal/common"
	"github.com/dmitrijs2005/museumkeeper/internal/dbx"
	"github.com/google/uuid"
)

const table = "users"

var columns = []string{"id", "stable_id", "name", "email", "password", "profile_image", "created_at"}

type SQLiteRepository struct {
	conn *sql.DB
	db   dbx.DBTX
	now  func() time.Time
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{conn: db, db: db, now: time.Now}
}

// inTx runs fn with a copy of r bound to one transaction, so an email
// check and the write that depends on it see the same state.
func (r *SQLiteRepository) inTx(ctx context.Context, fn func(ctx context.Context, tx *SQLiteRepository) error) error {
	return dbx.WithTx(ctx, r.conn, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, &SQLiteRepository{db: tx, now: r.now})
	})
}

// NormalizeEmail is the single email normalization rule of the store.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *SQLiteRepository) Create(ctx context.Context, u models.User) (models.Created, error) {
	u.Email = NormalizeEmail(u.Email)
	switch {
	case strings.TrimSpace(u.Name) == "":
		return models.Created{}, fmt.Errorf("%w: user name is required", common.ErrorValidation)
	case u.Email == "":
		return models.Created{}, fmt.Errorf("%w: user email is required", common.ErrorValidation)
	case u.PasswordHash == "":
		return models.Created{}, fmt.Errorf("%w: user password is required", common.ErrorValidation)
	}

	if u.StableID == "" {
		u.StableID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = r.now()
	}

	var created models.Created
	err := r.inTx(ctx, func(ctx context.Context, tx *SQLiteRepository) error {
		if err := tx.ensureEmailFree(ctx, u.Email, 0); err != nil {
			return err
		}
		var err error
		created, err = tx.insert(ctx, u)
		return err
	})
	if err != nil {
		return models.Created{}, err
	}
	return created, nil
}

func (r *SQLiteRepository) insert(ctx context.Context, u models.User) (models.Created, error) {
	query, args, err := squirrel.Insert(table).
		Columns(columns[1:]...).
		Values(u.StableID, u.Name, u.Email, u.PasswordHash, u.ProfileImage, dbx.FormatTime(u.CreatedAt)).
		ToSql()
	if err != nil {
		return models.Created{}, fmt.Errorf("failed to build user insert: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Created{}, translateWriteError("insert user", err)
	}
	rowID, err := res.LastInsertId()
	if err != nil {
		return models.Created{}, fmt.Errorf("failed to get user row id: %w", err)
	}

	return models.Created{RowID: rowID, StableID: u.StableID}, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query, args, err := squirrel.Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	result := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, key models.Key) (*models.User, error) {
	where, err := keyPredicate(key)
	if err != nil {
		return nil, err
	}
	return r.getOne(ctx, where, key.String())
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	email = NormalizeEmail(email)
	return r.getOne(ctx, squirrel.Eq{"email": email}, "email:"+email)
}

func (r *SQLiteRepository) getOne(ctx context.Context, where squirrel.Sqlizer, label string) (*models.User, error) {
	query, args, err := squirrel.Select(columns...).From(table).Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user select: %w", err)
	}

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", label, common.ErrorNotFound)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Update writes the fields set in patch. An empty patch is a no-op and
// reports 0 rows. An email change is checked and written in one
// transaction.
func (r *SQLiteRepository) Update(ctx context.Context, key models.Key, patch Patch) (int64, error) {
	where, err := keyPredicate(key)
	if err != nil {
		return 0, err
	}
	if patch.IsEmpty() {
		return 0, nil
	}
	if err := patch.validate(); err != nil {
		return 0, err
	}

	if patch.Email == nil {
		return r.update(ctx, key, where, patch)
	}

	var n int64
	err = r.inTx(ctx, func(ctx context.Context, tx *SQLiteRepository) error {
		current, err := tx.Get(ctx, key)
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.ensureEmailFree(ctx, NormalizeEmail(*patch.Email), current.RowID); err != nil {
			return err
		}
		n, err = tx.update(ctx, key, where, patch)
		return err
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (p Patch) validate() error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: user name must not be empty", common.ErrorValidation)
	}
	if p.Email != nil && NormalizeEmail(*p.Email) == "" {
		return fmt.Errorf("%w: user email must not be empty", common.ErrorValidation)
	}
	if p.PasswordHash != nil && *p.PasswordHash == "" {
		return fmt.Errorf("%w: user password must not be empty", common.ErrorValidation)
	}
	return nil
}

func (r *SQLiteRepository) update(ctx context.Context, key models.Key, where squirrel.Eq, patch Patch) (int64, error) {
	b := squirrel.Update(table)

	if patch.Name != nil {
		b = b.Set("name", *patch.Name)
	}
	if patch.Email != nil {
		b = b.Set("email", NormalizeEmail(*patch.Email))
	}
	if patch.PasswordHash != nil {
		b = b.Set("password", *patch.PasswordHash)
	}
	if patch.ProfileImage != nil {
		if *patch.ProfileImage == "" {
			b = b.Set("profile_image", nil)
		} else {
			b = b.Set("profile_image", *patch.ProfileImage)
		}
	}

	query, args, err := b.Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build user update: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, translateWriteError("update user "+key.String(), err)
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
		return 0, fmt.Errorf("failed to build user delete: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user %s: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}

// ensureEmailFree fails with ErrEmailTaken when email belongs to a row other
// than exceptRowID.
func (r *SQLiteRepository) ensureEmailFree(ctx context.Context, email string, exceptRowID int64) error {
	existing, err := r.GetByEmail(ctx, email)
	if errors.Is(err, common.ErrorNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.RowID != exceptRowID {
		return ErrEmailTaken
	}
	return nil
}

func translateWriteError(op string, err error) error {
	if dbx.IsUniqueViolation(err) && strings.Contains(err.Error(), "users.email") {
		return ErrEmailTaken
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*models.User, error) {
	var (
		u         models.User
		image     sql.NullString
		createdAt string
	)

	err := s.Scan(&u.RowID, &u.StableID, &u.Name, &u.Email, &u.PasswordHash, &image, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}

	if image.Valid {
		u.ProfileImage = &image.String
	}
	if u.CreatedAt, err = dbx.ParseTime(createdAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func keyPredicate(key models.Key) (squirrel.Eq, error) {
	if id, ok := key.RowID(); ok {
		return squirrel.Eq{"id": id}, nil
	}
	if id, ok := key.StableID(); ok {
		return squirrel.Eq{"stable_id": id}, nil
	}
	return nil, fmt.Errorf("%w: empty user key", common.ErrorValidation)
}
