package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/berk/parentportal/internal/app/models"
	"github.com/berk/parentportal/internal/db"
)

var (
	ErrAssociationNotFound = errors.New("no parent-student association")
	ErrEnrollmentNotFound  = errors.New("no enrollment record")
	ErrProfileNotFound     = errors.New("student profile not found")
)

// StudentRepository handles student linkage, enrollment and profile lookups
type StudentRepository struct {
	db *db.DB
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(database *db.DB) *StudentRepository {
	return &StudentRepository{db: database}
}

// GetLinkedStudentID returns the student linked to a guardian account.
// Multiple associations resolve to the first row by primary key.
func (r *StudentRepository) GetLinkedStudentID(ctx context.Context, parentID int64) (int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT student_id FROM parent_students WHERE parent_id = $1 ORDER BY id LIMIT 1`,
		parentID)
	if err != nil {
		return 0, fmt.Errorf("error looking up linked student: %w", err)
	}

	studentID, err := pgx.CollectOneRow(rows, pgx.RowTo[int64])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrAssociationNotFound
		}
		return 0, fmt.Errorf("error scanning linked student: %w", err)
	}
	return studentID, nil
}

// GetCurrentEnrollmentID returns the student's current enrollment record,
// selected as the row with the maximum surrogate identifier. There is no
// explicit active-term flag in the source data.
func (r *StudentRepository) GetCurrentEnrollmentID(ctx context.Context, studentID int64) (int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM enrollments WHERE student_id = $1 ORDER BY id DESC LIMIT 1`,
		studentID)
	if err != nil {
		return 0, fmt.Errorf("error looking up enrollment: %w", err)
	}

	enrollmentID, err := pgx.CollectOneRow(rows, pgx.RowTo[int64])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrEnrollmentNotFound
		}
		return 0, fmt.Errorf("error scanning enrollment: %w", err)
	}
	return enrollmentID, nil
}

// GetProfileName returns the student's display name from the profile table
func (r *StudentRepository) GetProfileName(ctx context.Context, studentID int64) (string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name FROM student_profiles WHERE id = $1 LIMIT 1`,
		studentID)
	if err != nil {
		return "", fmt.Errorf("error looking up profile name: %w", err)
	}

	name, err := pgx.CollectOneRow(rows, pgx.RowTo[string])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrProfileNotFound
		}
		return "", fmt.Errorf("error scanning profile name: %w", err)
	}
	return name, nil
}

// GetProfile returns the full student profile row by student identifier
func (r *StudentRepository) GetProfile(ctx context.Context, studentID int64) (*models.StudentProfile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, date_of_birth, gender, address, phone, photo_url
		FROM student_profiles
		WHERE id = $1
		LIMIT 1`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error looking up profile: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error reading profile result: %w", err)
		}
		return nil, ErrProfileNotFound
	}

	var profile models.StudentProfile
	if err := rows.Scan(&profile.ID, &profile.Name, &profile.DateOfBirth,
		&profile.Gender, &profile.Address, &profile.Phone, &profile.PhotoURL); err != nil {
		return nil, fmt.Errorf("error scanning profile row: %w", err)
	}

	return &profile, nil
}
