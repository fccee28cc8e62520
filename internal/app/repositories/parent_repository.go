package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/berk/parentportal/internal/app/models"
	"github.com/berk/parentportal/internal/db"
	"github.com/berk/parentportal/internal/pkg/logger"
)

var (
	ErrParentNotFound = errors.New("parent not found")
)

// ParentRepository handles guardian account database operations
type ParentRepository struct {
	db *db.DB
	sb squirrel.StatementBuilderType
}

// NewParentRepository creates a new ParentRepository
func NewParentRepository(database *db.DB) *ParentRepository {
	return &ParentRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByCredentials finds the guardian account whose username matches any of
// the candidate forms and whose stored password exactly equals the submitted
// one. When several rows match, the first by primary key wins.
func (r *ParentRepository) GetByCredentials(ctx context.Context, candidates []string, password string) (*models.Parent, error) {
	sql, args, err := r.sb.Select("id", "login_id", "username", "password", "name", "status", "fcm_token").
		From("parents").
		Where(squirrel.Eq{"username": candidates}).
		Where(squirrel.Eq{"password": password}).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build credential lookup query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error looking up credentials: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error reading credential lookup result: %w", err)
		}
		return nil, ErrParentNotFound
	}

	var parent models.Parent
	if err := rows.Scan(&parent.ID, &parent.LoginID, &parent.Username, &parent.Password,
		&parent.Name, &parent.Status, &parent.FCMToken); err != nil {
		return nil, fmt.Errorf("error scanning parent row: %w", err)
	}

	return &parent, nil
}

// GetFCMToken reads the stored push token for an account. A missing account
// is reported as ErrParentNotFound; a NULL token comes back as nil.
func (r *ParentRepository) GetFCMToken(ctx context.Context, parentID int64) (*string, error) {
	rows, err := r.db.Query(ctx, `SELECT fcm_token FROM parents WHERE id = $1`, parentID)
	if err != nil {
		return nil, fmt.Errorf("error reading FCM token: %w", err)
	}

	token, err := pgx.CollectOneRow(rows, pgx.RowTo[*string])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrParentNotFound
		}
		return nil, fmt.Errorf("error scanning FCM token: %w", err)
	}
	return token, nil
}

// UpdateFCMToken overwrites the stored push token for an account
func (r *ParentRepository) UpdateFCMToken(ctx context.Context, parentID int64, token string) error {
	tag, err := r.db.Exec(ctx, `UPDATE parents SET fcm_token = $1 WHERE id = $2`, token, parentID)
	if err != nil {
		return fmt.Errorf("error updating FCM token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrParentNotFound
	}

	logger.Info().Int64("parentID", parentID).Msg("FCM token updated")
	return nil
}

// PasswordMatches reports whether the stored secret for the account equals
// the submitted password (exact, case-sensitive comparison).
func (r *ParentRepository) PasswordMatches(ctx context.Context, parentID int64, password string) (bool, error) {
	rows, err := r.db.Query(ctx,
		`SELECT EXISTS (SELECT 1 FROM parents WHERE id = $1 AND password = $2)`,
		parentID, password)
	if err != nil {
		return false, fmt.Errorf("error verifying password: %w", err)
	}

	matches, err := pgx.CollectOneRow(rows, pgx.RowTo[bool])
	if err != nil {
		return false, fmt.Errorf("error scanning password check: %w", err)
	}
	return matches, nil
}

// UpdatePassword overwrites the stored secret. The value is written as
// submitted; the schema keeps plaintext for compatibility with the data the
// administrative tooling maintains.
func (r *ParentRepository) UpdatePassword(ctx context.Context, parentID int64, newPassword string) error {
	tag, err := r.db.Exec(ctx, `UPDATE parents SET password = $1 WHERE id = $2`, newPassword, parentID)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrParentNotFound
	}

	logger.Info().Int64("parentID", parentID).Msg("Password updated")
	return nil
}

// List returns a page of guardian accounts ordered by id
func (r *ParentRepository) List(ctx context.Context, limit int, offset uint64) ([]models.Parent, error) {
	sql, args, err := r.sb.Select("id", "login_id", "username", "name", "status").
		From("parents").
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build parent list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing parents: %w", err)
	}
	defer rows.Close()

	parents := []models.Parent{}
	for rows.Next() {
		var p models.Parent
		if err := rows.Scan(&p.ID, &p.LoginID, &p.Username, &p.Name, &p.Status); err != nil {
			return nil, fmt.Errorf("error scanning parent row: %w", err)
		}
		parents = append(parents, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating parent rows: %w", err)
	}

	return parents, nil
}

// Count returns the total number of guardian accounts
func (r *ParentRepository) Count(ctx context.Context) (int64, error) {
	rows, err := r.db.Query(ctx, `SELECT COUNT(*) FROM parents`)
	if err != nil {
		return 0, fmt.Errorf("error counting parents: %w", err)
	}

	count, err := pgx.CollectOneRow(rows, pgx.RowTo[int64])
	if err != nil {
		return 0, fmt.Errorf("error scanning parent count: %w", err)
	}
	return count, nil
}
