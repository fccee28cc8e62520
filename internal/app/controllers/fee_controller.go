package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/berk/parentportal/internal/app/models/dto"
	"github.com/berk/parentportal/internal/app/services"
	"github.com/berk/parentportal/internal/middleware"
)

// FeeController handles fee record read endpoints
type FeeController struct {
	feeService services.FeeService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService services.FeeService) *FeeController {
	return &FeeController{
		feeService: feeService,
	}
}

// GetFees retrieves all fee result sets for an enrollment record
// @Summary Get fee records
// @Description Retrieves main, monthly, detail and extra fee records for the enrollment record, with an optional academic year filter
// @Tags fees
// @Produce json
// @Param earStudentId path int true "Enrollment record ID"
// @Param yearId query int false "Academic year filter"
// @Success 200 {object} dto.DataResponse{data=dto.FeeData} "Fee record sets"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid enrollment record ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/fees/{earStudentId} [get]
func (c *FeeController) GetFees(ctx *gin.Context) {
	enrollmentID, err := strconv.ParseInt(ctx.Param("earStudentId"), 10, 64)
	if err != nil || enrollmentID <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Student ID is required"))
		return
	}

	var yearID *int64
	if raw := ctx.Query("yearId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Year ID must be a valid number"))
			return
		}
		yearID = &parsed
	}

	fees, err := c.feeService.GetFees(ctx, enrollmentID, yearID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{
		Success: true,
		Data:    fees,
	})
}
