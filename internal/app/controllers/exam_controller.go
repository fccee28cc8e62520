package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/berk/parentportal/internal/app/models/dto"
	"github.com/berk/parentportal/internal/app/services"
	"github.com/berk/parentportal/internal/middleware"
)

// ExamController handles exam record read endpoints
type ExamController struct {
	examService services.ExamService
}

// NewExamController creates a new ExamController
func NewExamController(examService services.ExamService) *ExamController {
	return &ExamController{
		examService: examService,
	}
}

// GetExams retrieves exam vouchers with their result lines
// @Summary Get exam records
// @Description Retrieves every exam voucher for the enrollment record together with its per-subject results
// @Tags exams
// @Produce json
// @Param studentId path int true "Enrollment record ID"
// @Success 200 {object} dto.DataResponse{data=[]dto.ExamWithDetails} "Vouchers with details"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid enrollment record ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/exams/{studentId} [get]
func (c *ExamController) GetExams(ctx *gin.Context) {
	enrollmentID, err := strconv.ParseInt(ctx.Param("studentId"), 10, 64)
	if err != nil || enrollmentID <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID is required"))
		return
	}

	exams, err := c.examService.GetExams(ctx, enrollmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{
		Success: true,
		Data:    exams,
	})
}
