package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sora-rara/bracu-student-hub-sub005/internal/models"
	"github.com/sora-rara/bracu-student-hub-sub005/internal/service"
	"github.com/sora-rara/bracu-student-hub-sub005/pkg/response"
)

type courseService interface {
	List(ctx context.Context, req service.CourseListRequest) ([]models.CourseSummary, *models.Pagination, error)
	Get(ctx context.Context, courseCode, sectionName string) (*models.SectionOffering, error)
}

// CourseHandler exposes the read-only catalog browser.
type CourseHandler struct {
	service courseService
}

// NewCourseHandler constructs handler.
func NewCourseHandler(svc courseService) *CourseHandler {
	return &CourseHandler{service: svc}
}

// List godoc
// @Summary Browse the course catalog
// @Tags Courses
// @Produce json
// @Param search query string false "Course code search"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	req := service.CourseListRequest{Search: c.Query("search")}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		req.Page = page
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		req.PageSize = limit
	}

	courses, pagination, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, pagination)
}

// Get godoc
// @Summary Get one section offering
// @Tags Courses
// @Produce json
// @Param code path string true "Course code"
// @Param section path string true "Section name"
// @Success 200 {object} response.Envelope
// @Router /courses/{code}/sections/{section} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	offering, err := h.service.Get(c.Request.Context(), c.Param("code"), c.Param("section"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, offering, nil)
}
