package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/berk/parentportal/internal/app/models/dto"
	"github.com/berk/parentportal/internal/app/services"
	"github.com/berk/parentportal/internal/middleware"
	"github.com/berk/parentportal/internal/pkg/helpers"
)

// SchoolController handles school-wide read endpoints: announcements,
// academic years and the cached items listing.
type SchoolController struct {
	announcementService services.AnnouncementService
	yearService         services.YearService
	itemService         services.ItemService
}

// NewSchoolController creates a new SchoolController
func NewSchoolController(
	announcementService services.AnnouncementService,
	yearService services.YearService,
	itemService services.ItemService,
) *SchoolController {
	return &SchoolController{
		announcementService: announcementService,
		yearService:         yearService,
		itemService:         itemService,
	}
}

// GetAnnouncements retrieves all announcements
// @Summary List announcements
// @Description Retrieves every school announcement, newest first
// @Tags school
// @Produce json
// @Success 200 {array} models.Announcement "Announcement rows"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/announcements [get]
func (c *SchoolController) GetAnnouncements(ctx *gin.Context) {
	announcements, err := c.announcementService.GetAnnouncements(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, announcements)
}

// GetActiveYears retrieves the active academic years
// @Summary List active academic years
// @Description Retrieves the academic years flagged active, newest first
// @Tags school
// @Produce json
// @Success 200 {object} dto.DataResponse{data=[]models.AcademicYear} "Active years"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/years/active [get]
func (c *SchoolController) GetActiveYears(ctx *gin.Context) {
	years, err := c.yearService.GetActiveYears(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DataResponse{
		Success: true,
		Data:    years,
	})
}

// GetItems retrieves one page of the cached items listing
// @Summary List items
// @Description Retrieves a page of accounts through the cache-aside helper with pagination metadata
// @Tags school
// @Produce json
// @Param page query int false "1-based page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.ItemPage "Page of rows with pagination"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/items [get]
func (c *SchoolController) GetItems(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	items, err := c.itemService.ListItems(ctx, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}
