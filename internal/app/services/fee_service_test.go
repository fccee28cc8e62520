package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berk/parentportal/internal/app/models"
	"github.com/berk/parentportal/internal/pkg/apperrors"
)

// fakeFeeStore serves fixed fee sets and records the year filter seen
type fakeFeeStore struct {
	main    []models.Fee
	monthly []models.StudentFee
	details []models.FeeDetail
	extra   []models.ExtraFee

	mainErr error

	yearsSeen []*int64
}

func (f *fakeFeeStore) GetMainFees(_ context.Context, _ int64, yearID *int64) ([]models.Fee, error) {
	f.yearsSeen = append(f.yearsSeen, yearID)
	return f.main, f.mainErr
}

func (f *fakeFeeStore) GetMonthlyFees(_ context.Context, _ int64, yearID *int64) ([]models.StudentFee, error) {
	f.yearsSeen = append(f.yearsSeen, yearID)
	return f.monthly, nil
}

func (f *fakeFeeStore) GetFeeDetails(_ context.Context, _ int64) ([]models.FeeDetail, error) {
	return f.details, nil
}

func (f *fakeFeeStore) GetExtraFees(_ context.Context, _ int64, yearID *int64) ([]models.ExtraFee, error) {
	f.yearsSeen = append(f.yearsSeen, yearID)
	return f.extra, nil
}

func TestGetFees_RejectsNonPositiveEnrollmentID(t *testing.T) {
	svc := NewFeeService(&fakeFeeStore{})

	_, err := svc.GetFees(context.Background(), 0, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetFees_CollectsAllFourSets(t *testing.T) {
	store := &fakeFeeStore{
		main:    []models.Fee{{ID: 1, EnrollmentID: 99}},
		monthly: []models.StudentFee{{ID: 2, EnrollmentID: 99, Month: "March"}},
		details: []models.FeeDetail{{ID: 3, EnrollmentID: 99, Description: "Admission"}},
		extra:   []models.ExtraFee{{ID: 4, EnrollmentID: 99, Description: "Trip"}},
	}
	svc := NewFeeService(store)

	got, err := svc.GetFees(context.Background(), 99, nil)
	require.NoError(t, err)

	assert.Len(t, got.Main, 1)
	assert.Len(t, got.Monthly, 1)
	assert.Len(t, got.Details, 1)
	assert.Len(t, got.Extra, 1)
}

func TestGetFees_PassesYearFilterThrough(t *testing.T) {
	store := &fakeFeeStore{}
	svc := NewFeeService(store)

	yearID := int64(5)
	_, err := svc.GetFees(context.Background(), 99, &yearID)
	require.NoError(t, err)

	// Main, monthly and extra fee lookups all see the filter.
	require.Len(t, store.yearsSeen, 3)
	for _, seen := range store.yearsSeen {
		require.NotNil(t, seen)
		assert.Equal(t, int64(5), *seen)
	}
}

func TestGetFees_FirstFailureAbortsTheCall(t *testing.T) {
	boom := errors.New("connection reset")
	store := &fakeFeeStore{mainErr: boom}
	svc := NewFeeService(store)

	_, err := svc.GetFees(context.Background(), 99, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	// Only the first lookup ran.
	assert.Len(t, store.yearsSeen, 1)
}
