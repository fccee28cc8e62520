package models

import "time"

// AttendanceRecord defines a daily attendance entry based on the
// 'attendance_records' table, keyed by enrollment record.
type AttendanceRecord struct {
	ID             int64     `json:"id" db:"id"`
	EnrollmentID   int64     `json:"enrollmentId" db:"enrollment_id"`
	AttendanceDate time.Time `json:"attendanceDate" db:"attendance_date"`
	Status         string    `json:"status" db:"status"` // e.g. Present, Absent, Leave
}

// Activity defines a student activity entry based on the 'activities' table
type Activity struct {
	ID           int64     `json:"id" db:"id"`
	EnrollmentID int64     `json:"enrollmentId" db:"enrollment_id"`
	Description  string    `json:"description" db:"description"`
	ActivityDate time.Time `json:"date" db:"activity_date"`
	FileURL      *string   `json:"fileUrl,omitempty" db:"file_url"`
}
