package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/berk/parentportal/internal/app/models"
	"github.com/berk/parentportal/internal/app/repositories"
	"github.com/berk/parentportal/internal/pkg/apperrors"
)

// profileStore is the profile surface the student service needs
type profileStore interface {
	GetProfile(ctx context.Context, studentID int64) (*models.StudentProfile, error)
}

// attendanceStore lists attendance entries per enrollment record
type attendanceStore interface {
	GetByEnrollment(ctx context.Context, enrollmentID int64) ([]models.AttendanceRecord, error)
}

// activityStore lists activity entries per enrollment record
type activityStore interface {
	GetByEnrollment(ctx context.Context, enrollmentID int64) ([]models.Activity, error)
}

// StudentService defines the interface for per-student record reads
type StudentService interface {
	GetProfile(ctx context.Context, studentID int64) (*models.StudentProfile, error)
	GetAttendance(ctx context.Context, enrollmentID int64) ([]models.AttendanceRecord, error)
	GetActivities(ctx context.Context, enrollmentID int64) ([]models.Activity, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	profiles   profileStore
	attendance attendanceStore
	activities activityStore
}

// NewStudentService creates a new student service instance
func NewStudentService(profiles profileStore, attendance attendanceStore, activities activityStore) StudentService {
	return &studentServiceImpl{
		profiles:   profiles,
		attendance: attendance,
		activities: activities,
	}
}

// GetProfile retrieves a student profile by student identifier
func (s *studentServiceImpl) GetProfile(ctx context.Context, studentID int64) (*models.StudentProfile, error) {
	if studentID <= 0 {
		return nil, apperrors.NewValidationError("Student ID is required")
	}

	profile, err := s.profiles.GetProfile(ctx, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}
	return profile, nil
}

// GetAttendance retrieves the attendance history for an enrollment record
func (s *studentServiceImpl) GetAttendance(ctx context.Context, enrollmentID int64) ([]models.AttendanceRecord, error) {
	if enrollmentID <= 0 {
		return nil, apperrors.NewValidationError("Student ID is required")
	}

	records, err := s.attendance.GetByEnrollment(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendance: %w", err)
	}
	return records, nil
}

// GetActivities retrieves the activity history for an enrollment record
func (s *studentServiceImpl) GetActivities(ctx context.Context, enrollmentID int64) ([]models.Activity, error) {
	if enrollmentID <= 0 {
		return nil, apperrors.NewValidationError("Student ID is required")
	}

	activities, err := s.activities.GetByEnrollment(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving activities: %w", err)
	}
	return activities, nil
}
