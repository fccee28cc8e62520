package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berk/parentportal/internal/app/models"
	"github.com/berk/parentportal/internal/pkg/apperrors"
)

// fakeExamStore serves vouchers and per-voucher detail lines
type fakeExamStore struct {
	mu          sync.Mutex
	vouchers    []models.ExamVoucher
	vouchersErr error
	details     map[int64][]models.Exam
	detailErrs  map[int64]error
	detailCalls []int64
}

func (f *fakeExamStore) GetVouchers(_ context.Context, _ int64) ([]models.ExamVoucher, error) {
	return f.vouchers, f.vouchersErr
}

func (f *fakeExamStore) GetVoucherDetails(_ context.Context, voucherID int64) ([]models.Exam, error) {
	f.mu.Lock()
	f.detailCalls = append(f.detailCalls, voucherID)
	f.mu.Unlock()
	if err, ok := f.detailErrs[voucherID]; ok {
		return nil, err
	}
	return f.details[voucherID], nil
}

func voucher(id int64, name string) models.ExamVoucher {
	return models.ExamVoucher{ID: id, EnrollmentID: 99, Name: name, ExamDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
}

func TestGetExams_RejectsNonPositiveEnrollmentID(t *testing.T) {
	svc := NewExamService(&fakeExamStore{})

	_, err := svc.GetExams(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.GetExams(context.Background(), -5)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetExams_PreservesVoucherOrder(t *testing.T) {
	store := &fakeExamStore{
		vouchers: []models.ExamVoucher{
			voucher(3, "Mid Term"),
			voucher(1, "First Term"),
			voucher(2, "Final Term"),
		},
		details: map[int64][]models.Exam{
			1: {{ID: 10, VoucherID: 1, SubjectID: 5}},
			2: {{ID: 20, VoucherID: 2, SubjectID: 5}},
			3: {{ID: 30, VoucherID: 3, SubjectID: 5}},
		},
	}
	svc := NewExamService(store)

	got, err := svc.GetExams(context.Background(), 99)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Mid Term", got[0].Name)
	assert.Equal(t, "First Term", got[1].Name)
	assert.Equal(t, "Final Term", got[2].Name)

	// Each entry carries the details of its own voucher.
	assert.Equal(t, int64(3), got[0].Details[0].VoucherID)
	assert.Equal(t, int64(1), got[1].Details[0].VoucherID)
	assert.Equal(t, int64(2), got[2].Details[0].VoucherID)
}

func TestGetExams_EmptyVoucherSet(t *testing.T) {
	svc := NewExamService(&fakeExamStore{})

	got, err := svc.GetExams(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetExams_DetailFailureFailsTheCall(t *testing.T) {
	boom := errors.New("connection reset")
	store := &fakeExamStore{
		vouchers:   []models.ExamVoucher{voucher(1, "First Term"), voucher(2, "Final Term")},
		details:    map[int64][]models.Exam{1: {{ID: 10, VoucherID: 1}}},
		detailErrs: map[int64]error{2: boom},
	}
	svc := NewExamService(store)

	_, err := svc.GetExams(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestGetExams_FetchesDetailsForEveryVoucher(t *testing.T) {
	store := &fakeExamStore{
		vouchers: []models.ExamVoucher{voucher(1, "a"), voucher(2, "b"), voucher(3, "c")},
	}
	svc := NewExamService(store)

	_, err := svc.GetExams(context.Background(), 99)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 3}, store.detailCalls)
}
