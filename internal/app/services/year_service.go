package services

import (
	"context"
	"fmt"

	"github.com/berk/parentportal/internal/app/models"
)

// yearStore lists academic years
type yearStore interface {
	GetActive(ctx context.Context) ([]models.AcademicYear, error)
}

// YearService defines the interface for academic year reads
type YearService interface {
	GetActiveYears(ctx context.Context) ([]models.AcademicYear, error)
}

// yearServiceImpl implements the YearService interface
type yearServiceImpl struct {
	years yearStore
}

// NewYearService creates a new year service instance
func NewYearService(years yearStore) YearService {
	return &yearServiceImpl{years: years}
}

// GetActiveYears retrieves the academic years flagged active
func (s *yearServiceImpl) GetActiveYears(ctx context.Context) ([]models.AcademicYear, error) {
	years, err := s.years.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving active years: %w", err)
	}
	return years, nil
}
