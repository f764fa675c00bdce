package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sora-rara/bracu-student-hub-sub005/internal/models"
	"github.com/sora-rara/bracu-student-hub-sub005/internal/service"
	appErrors "github.com/sora-rara/bracu-student-hub-sub005/pkg/errors"
	"github.com/sora-rara/bracu-student-hub-sub005/pkg/response"
)

type pickService interface {
	List(ctx context.Context, studentID string) ([]models.StudentPick, error)
	Replace(ctx context.Context, studentID string, req service.ReplacePicksRequest) ([]models.StudentPick, error)
	Clear(ctx context.Context, studentID string) error
}

// PickHandler manages a student's section picks.
type PickHandler struct {
	service pickService
}

// NewPickHandler constructs handler.
func NewPickHandler(svc pickService) *PickHandler {
	return &PickHandler{service: svc}
}

// List godoc
// @Summary List picks
// @Tags Picks
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/picks [get]
func (h *PickHandler) List(c *gin.Context) {
	picks, err := h.service.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, picks, nil)
}

// Replace godoc
// @Summary Replace the pick list
// @Tags Picks
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body service.ReplacePicksRequest true "Picks payload"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/picks [put]
func (h *PickHandler) Replace(c *gin.Context) {
	var req service.ReplacePicksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	picks, err := h.service.Replace(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, picks, nil)
}

// Clear godoc
// @Summary Remove every pick
// @Tags Picks
// @Param id path string true "Student ID"
// @Success 204
// @Router /students/{id}/picks [delete]
func (h *PickHandler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
