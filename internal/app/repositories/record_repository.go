package repositories

import (
	"context"
	"fmt"

	"github.com/berk/parentportal/internal/app/models"
	"github.com/berk/parentportal/internal/db"
)

// AttendanceRepository handles attendance database operations
type AttendanceRepository struct {
	db *db.DB
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(database *db.DB) *AttendanceRepository {
	return &AttendanceRepository{db: database}
}

// GetByEnrollment returns all attendance entries for an enrollment record,
// newest first.
func (r *AttendanceRepository) GetByEnrollment(ctx context.Context, enrollmentID int64) ([]models.AttendanceRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, enrollment_id, attendance_date, status
		FROM attendance_records
		WHERE enrollment_id = $1
		ORDER BY attendance_date DESC`,
		enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching attendance: %w", err)
	}
	defer rows.Close()

	records := []models.AttendanceRecord{}
	for rows.Next() {
		var rec models.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.EnrollmentID, &rec.AttendanceDate, &rec.Status); err != nil {
			return nil, fmt.Errorf("error scanning attendance row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", err)
	}

	return records, nil
}

// ActivityRepository handles student activity database operations
type ActivityRepository struct {
	db *db.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(database *db.DB) *ActivityRepository {
	return &ActivityRepository{db: database}
}

// GetByEnrollment returns all activity entries for an enrollment record,
// newest first.
func (r *ActivityRepository) GetByEnrollment(ctx context.Context, enrollmentID int64) ([]models.Activity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, enrollment_id, description, activity_date, file_url
		FROM activities
		WHERE enrollment_id = $1
		ORDER BY activity_date DESC`,
		enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching activities: %w", err)
	}
	defer rows.Close()

	activities := []models.Activity{}
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.EnrollmentID, &a.Description, &a.ActivityDate, &a.FileURL); err != nil {
			return nil, fmt.Errorf("error scanning activity row: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return activities, nil
}

// AnnouncementRepository handles announcement database operations
type AnnouncementRepository struct {
	db *db.DB
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(database *db.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: database}
}

// GetAll returns every announcement, newest first
func (r *AnnouncementRepository) GetAll(ctx context.Context) ([]models.Announcement, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, body, published_at
		FROM announcements
		ORDER BY published_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error fetching announcements: %w", err)
	}
	defer rows.Close()

	announcements := []models.Announcement{}
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.PublishedAt); err != nil {
			return nil, fmt.Errorf("error scanning announcement row: %w", err)
		}
		announcements = append(announcements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating announcement rows: %w", err)
	}

	return announcements, nil
}

// YearRepository handles academic year database operations
type YearRepository struct {
	db *db.DB
}

// NewYearRepository creates a new YearRepository
func NewYearRepository(database *db.DB) *YearRepository {
	return &YearRepository{db: database}
}

// GetActive returns the academic years flagged active, newest first
func (r *YearRepository) GetActive(ctx context.Context) ([]models.AcademicYear, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, is_active
		FROM academic_years
		WHERE is_active
		ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("error fetching active years: %w", err)
	}
	defer rows.Close()

	years := []models.AcademicYear{}
	for rows.Next() {
		var y models.AcademicYear
		if err := rows.Scan(&y.ID, &y.Name, &y.IsActive); err != nil {
			return nil, fmt.Errorf("error scanning academic year row: %w", err)
		}
		years = append(years, y)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating academic year rows: %w", err)
	}

	return years, nil
}
