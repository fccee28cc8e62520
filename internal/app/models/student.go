package models

import "time"

// StudentProfile defines the display profile based on the 'student_profiles'
// table. The primary key is the student identifier itself; the row is looked
// up independently of any enrollment record.
type StudentProfile struct {
	ID          int64      `json:"id" db:"id"` // Student identifier
	Name        string     `json:"name" db:"name"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Gender      *string    `json:"gender,omitempty" db:"gender"`
	Address     *string    `json:"address,omitempty" db:"address"`
	Phone       *string    `json:"phone,omitempty" db:"phone"`
	PhotoURL    *string    `json:"photoUrl,omitempty" db:"photo_url"`
}

// Enrollment defines an academic enrollment record based on the 'enrollments'
// table, one per academic year a student was registered. The row with the
// maximum id is the student's current enrollment.
type Enrollment struct {
	ID        int64 `json:"id" db:"id"` // Surrogate identifier, also the "EAR student id"
	StudentID int64 `json:"studentId" db:"student_id"`
	YearID    int64 `json:"yearId" db:"year_id"`
}

// AcademicYear defines the academic year model based on the 'academic_years' table
type AcademicYear struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	IsActive bool   `json:"isActive" db:"is_active"`
}
