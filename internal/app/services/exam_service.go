package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/berk/parentportal/internal/app/models"
	"github.com/berk/parentportal/internal/app/models/dto"
	"github.com/berk/parentportal/internal/pkg/apperrors"
)

// examStore is the exam record surface the exam service needs
type examStore interface {
	GetVouchers(ctx context.Context, enrollmentID int64) ([]models.ExamVoucher, error)
	GetVoucherDetails(ctx context.Context, voucherID int64) ([]models.Exam, error)
}

// ExamService defines the interface for exam record reads
type ExamService interface {
	GetExams(ctx context.Context, enrollmentID int64) ([]dto.ExamWithDetails, error)
}

// examServiceImpl implements the ExamService interface
type examServiceImpl struct {
	exams examStore
}

// NewExamService creates a new exam service instance
func NewExamService(exams examStore) ExamService {
	return &examServiceImpl{exams: exams}
}

// GetExams returns each exam voucher for the enrollment record together with
// its per-subject result lines. The per-voucher detail fetches fan out
// concurrently; results are reassembled in voucher order.
func (s *examServiceImpl) GetExams(ctx context.Context, enrollmentID int64) ([]dto.ExamWithDetails, error) {
	if enrollmentID <= 0 {
		return nil, apperrors.NewValidationError("Student ID is required")
	}

	vouchers, err := s.exams.GetVouchers(ctx, enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving exam vouchers: %w", err)
	}

	results := make([]dto.ExamWithDetails, len(vouchers))
	g, gctx := errgroup.WithContext(ctx)
	for i, voucher := range vouchers {
		i, voucher := i, voucher
		g.Go(func() error {
			details, err := s.exams.GetVoucherDetails(gctx, voucher.ID)
			if err != nil {
				return fmt.Errorf("error retrieving details for voucher %d: %w", voucher.ID, err)
			}
			results[i] = dto.ExamWithDetails{
				ExamVoucher: voucher,
				Details:     details,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
