package repositories

import (
	"github.com/berk/parentportal/internal/db"
)

// Repositories contains every repository implementation
type Repositories struct {
	ParentRepository       *ParentRepository
	StudentRepository      *StudentRepository
	FeeRepository          *FeeRepository
	ExamRepository         *ExamRepository
	AttendanceRepository   *AttendanceRepository
	ActivityRepository     *ActivityRepository
	AnnouncementRepository *AnnouncementRepository
	YearRepository         *YearRepository
}

// NewRepositories creates all repositories over the retrying database wrapper
func NewRepositories(database *db.DB) *Repositories {
	return &Repositories{
		ParentRepository:       NewParentRepository(database),
		StudentRepository:      NewStudentRepository(database),
		FeeRepository:          NewFeeRepository(database),
		ExamRepository:         NewExamRepository(database),
		AttendanceRepository:   NewAttendanceRepository(database),
		ActivityRepository:     NewActivityRepository(database),
		AnnouncementRepository: NewAnnouncementRepository(database),
		YearRepository:         NewYearRepository(database),
	}
}
