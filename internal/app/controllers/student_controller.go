package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/berk/parentportal/internal/app/models/dto"
	"github.com/berk/parentportal/internal/app/services"
	"github.com/berk/parentportal/internal/middleware"
)

// StudentController handles per-student record read endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// studentIDFromQuery parses the studentId query parameter. A missing or
// malformed value short-circuits with a 400 before any query is issued.
func studentIDFromQuery(ctx *gin.Context) (int64, bool) {
	raw := ctx.Query("studentId")
	if raw == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID is required"))
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID must be a valid number"))
		return 0, false
	}
	return id, true
}

// GetProfile retrieves a student profile
// @Summary Get student profile
// @Description Retrieves the display profile for the given student identifier
// @Tags students
// @Produce json
// @Param studentId query int true "Student ID"
// @Success 200 {object} models.StudentProfile "Profile row"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	studentID, ok := studentIDFromQuery(ctx)
	if !ok {
		return
	}

	profile, err := c.studentService.GetProfile(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// GetAttendance retrieves attendance entries for an enrollment record
// @Summary Get attendance history
// @Description Retrieves all attendance entries for the enrollment record, newest first
// @Tags students
// @Produce json
// @Param studentId query int true "Enrollment record ID"
// @Success 200 {array} models.AttendanceRecord "Attendance rows"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid student ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/attendance [get]
func (c *StudentController) GetAttendance(ctx *gin.Context) {
	enrollmentID, ok := studentIDFromQuery(ctx)
	if !ok {
		return
	}

	records, err := c.studentService.GetAttendance(ctx, enrollmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, records)
}

// GetActivities retrieves activity entries for an enrollment record
// @Summary Get activity history
// @Description Retrieves all activity entries for the enrollment record, newest first
// @Tags students
// @Produce json
// @Param studentId query int true "Enrollment record ID"
// @Success 200 {array} models.Activity "Activity rows"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid student ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/activities [get]
func (c *StudentController) GetActivities(ctx *gin.Context) {
	enrollmentID, ok := studentIDFromQuery(ctx)
	if !ok {
		return
	}

	activities, err := c.studentService.GetActivities(ctx, enrollmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, activities)
}
