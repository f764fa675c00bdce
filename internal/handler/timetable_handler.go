package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sora-rara/bracu-student-hub-sub005/internal/dto"
	"github.com/sora-rara/bracu-student-hub-sub005/internal/models"
	"github.com/sora-rara/bracu-student-hub-sub005/pkg/response"
)

type timetableService interface {
	Compose(ctx context.Context, studentID string, scope models.ViewScope) (*dto.TimetableView, error)
	Grid(ctx context.Context, studentID string) (*dto.GridView, error)
	NowBanner(ctx context.Context, studentID string) (*dto.NowView, error)
}

// TimetableHandler serves composed timetables to the renderer and notifier.
type TimetableHandler struct {
	service timetableService
}

// NewTimetableHandler constructs handler.
func NewTimetableHandler(svc timetableService) *TimetableHandler {
	return &TimetableHandler{service: svc}
}

// Compose godoc
// @Summary Day-partitioned conflict-annotated timetable
// @Tags Timetable
// @Produce json
// @Param id path string true "Student ID"
// @Param scope query string false "week (default) or day"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/timetable [get]
func (h *TimetableHandler) Compose(c *gin.Context) {
	scope := models.ScopeFullWeek
	if strings.EqualFold(c.Query("scope"), "day") {
		scope = models.ScopeSingleDay
	}
	view, err := h.service.Compose(c.Request.Context(), c.Param("id"), scope)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Grid godoc
// @Summary Fixed-slot weekly grid
// @Tags Timetable
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/timetable/grid [get]
func (h *TimetableHandler) Grid(c *gin.Context) {
	view, err := h.service.Grid(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Now godoc
// @Summary Current and next class banner
// @Tags Timetable
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/timetable/now [get]
func (h *TimetableHandler) Now(c *gin.Context) {
	view, err := h.service.NowBanner(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}
