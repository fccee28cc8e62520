package models

import "time"

// ExamVoucher defines an exam report header based on the 'exam_vouchers' table
type ExamVoucher struct {
	ID            int64     `json:"id" db:"id"`
	EnrollmentID  int64     `json:"enrollmentId" db:"enrollment_id"`
	Name          string    `json:"name" db:"name"`
	ExamDate      time.Time `json:"date" db:"exam_date"`
	TotalMarks    float64   `json:"totalMarks" db:"total_marks"`
	ObtainedMarks float64   `json:"obtainedMarks" db:"obtained_marks"`
}

// Exam defines a per-subject result line based on the 'exams' table.
// SubjectName is joined in from 'subjects' and is nullable because the
// subject row may have been removed.
type Exam struct {
	ID            int64   `json:"id" db:"id"`
	VoucherID     int64   `json:"voucherId" db:"voucher_id"`
	SubjectID     int64   `json:"subjectId" db:"subject_id"`
	SubjectName   *string `json:"subjectName" db:"subject_name"`
	TotalMarks    float64 `json:"totalMarks" db:"total_marks"`
	ObtainedMarks float64 `json:"obtainedMarks" db:"obtained_marks"`
}
