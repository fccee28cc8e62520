package models

import "time"

// Fee defines a main (annual or term) fee record based on the 'fees' table
type Fee struct {
	ID           int64     `json:"id" db:"id"`
	EnrollmentID int64     `json:"enrollmentId" db:"enrollment_id"`
	YearID       int64     `json:"yearId" db:"year_id"`
	Amount       float64   `json:"amount" db:"amount"`
	Paid         float64   `json:"paid" db:"paid"`
	Balance      float64   `json:"balance" db:"balance"`
	FeeDate      time.Time `json:"date" db:"fee_date"`
}

// StudentFee defines a monthly fee record based on the 'student_fees' table
type StudentFee struct {
	ID           int64      `json:"id" db:"id"`
	EnrollmentID int64      `json:"enrollmentId" db:"enrollment_id"`
	YearID       int64      `json:"yearId" db:"year_id"`
	Month        string     `json:"month" db:"month"`
	Amount       float64    `json:"amount" db:"amount"`
	PayDate      *time.Time `json:"payDate,omitempty" db:"pay_date"` // Nullable until paid
}

// FeeDetail defines a fee line item based on the 'fee_details' table
type FeeDetail struct {
	ID           int64     `json:"id" db:"id"`
	EnrollmentID int64     `json:"enrollmentId" db:"enrollment_id"`
	Description  string    `json:"description" db:"description"`
	Amount       float64   `json:"amount" db:"amount"`
	FeeDate      time.Time `json:"date" db:"fee_date"`
}

// ExtraFee defines an ad hoc charge based on the 'extra_fees' table
type ExtraFee struct {
	ID           int64     `json:"id" db:"id"`
	EnrollmentID int64     `json:"enrollmentId" db:"enrollment_id"`
	YearID       int64     `json:"yearId" db:"year_id"`
	Description  string    `json:"description" db:"description"`
	Amount       float64   `json:"amount" db:"amount"`
	FeeDate      time.Time `json:"date" db:"fee_date"`
}
