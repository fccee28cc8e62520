package services

import (
	"context"
	"fmt"

	"github.com/berk/parentportal/internal/app/models"
	"github.com/berk/parentportal/internal/app/models/dto"
	"github.com/berk/parentportal/internal/pkg/apperrors"
)

// feeStore is the fee record surface the fee service needs
type feeStore interface {
	GetMainFees(ctx context.Context, enrollmentID int64, yearID *int64) ([]models.Fee, error)
	GetMonthlyFees(ctx context.Context, enrollmentID int64, yearID *int64) ([]models.StudentFee, error)
	GetFeeDetails(ctx context.Context, enrollmentID int64) ([]models.FeeDetail, error)
	GetExtraFees(ctx context.Context, enrollmentID int64, yearID *int64) ([]models.ExtraFee, error)
}

// FeeService defines the interface for fee record reads
type FeeService interface {
	GetFees(ctx context.Context, enrollmentID int64, yearID *int64) (*dto.FeeData, error)
}

// feeServiceImpl implements the FeeService interface
type feeServiceImpl struct {
	fees feeStore
}

// NewFeeService creates a new fee service instance
func NewFeeService(fees feeStore) FeeService {
	return &feeServiceImpl{fees: fees}
}

// GetFees collects the four fee result sets for an enrollment record. The
// optional year filter applies to main, monthly and extra fees; line-item
// details are always returned in full.
func (s *feeServiceImpl) GetFees(ctx context.Context, enrollmentID int64, yearID *int64) (*dto.FeeData, error) {
	if enrollmentID <= 0 {
		return nil, apperrors.NewValidationError("Student ID is required")
	}

	main, err := s.fees.GetMainFees(ctx, enrollmentID, yearID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving main fees: %w", err)
	}

	monthly, err := s.fees.GetMonthlyFees(ctx, enrollmentID, yearID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving monthly fees: %w", err)
	}

	details, err := s.fees.GetFeeDetails(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving fee details: %w", err)
	}

	extra, err := s.fees.GetExtraFees(ctx, enrollmentID, yearID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving extra fees: %w", err)
	}

	return &dto.FeeData{
		Main:    main,
		Monthly: monthly,
		Details: details,
		Extra:   extra,
	}, nil
}
