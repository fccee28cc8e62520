package repositories

import (
	"context"
	"fmt"

	"github.com/berk/parentportal/internal/app/models"
	"github.com/berk/parentportal/internal/db"
)

// ExamRepository handles exam voucher and result database operations
type ExamRepository struct {
	db *db.DB
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(database *db.DB) *ExamRepository {
	return &ExamRepository{db: database}
}

// GetVouchers returns the exam report headers for an enrollment record,
// newest first.
func (r *ExamRepository) GetVouchers(ctx context.Context, enrollmentID int64) ([]models.ExamVoucher, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, enrollment_id, name, exam_date, total_marks, obtained_marks
		FROM exam_vouchers
		WHERE enrollment_id = $1
		ORDER BY exam_date DESC`,
		enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching exam vouchers: %w", err)
	}
	defer rows.Close()

	vouchers := []models.ExamVoucher{}
	for rows.Next() {
		var v models.ExamVoucher
		if err := rows.Scan(&v.ID, &v.EnrollmentID, &v.Name, &v.ExamDate, &v.TotalMarks, &v.ObtainedMarks); err != nil {
			return nil, fmt.Errorf("error scanning exam voucher row: %w", err)
		}
		vouchers = append(vouchers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exam voucher rows: %w", err)
	}

	return vouchers, nil
}

// GetVoucherDetails returns the per-subject result lines for a voucher. The
// subject name is joined in; a removed subject leaves it NULL rather than
// dropping the result line.
func (r *ExamRepository) GetVoucherDetails(ctx context.Context, voucherID int64) ([]models.Exam, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.voucher_id, e.subject_id, s.name AS subject_name, e.total_marks, e.obtained_marks
		FROM exams e
		LEFT JOIN subjects s ON e.subject_id = s.id
		WHERE e.voucher_id = $1`,
		voucherID)
	if err != nil {
		return nil, fmt.Errorf("error fetching exam details: %w", err)
	}
	defer rows.Close()

	details := []models.Exam{}
	for rows.Next() {
		var e models.Exam
		if err := rows.Scan(&e.ID, &e.VoucherID, &e.SubjectID, &e.SubjectName, &e.TotalMarks, &e.ObtainedMarks); err != nil {
			return nil, fmt.Errorf("error scanning exam detail row: %w", err)
		}
		details = append(details, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exam detail rows: %w", err)
	}

	return details, nil
}
