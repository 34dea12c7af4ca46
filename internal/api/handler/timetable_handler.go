package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jadwal-guru/internal/dto"
	"jadwal-guru/internal/model"
	"jadwal-guru/internal/service"
	"jadwal-guru/pkg/response"
)

// TimetableHandler teacher dashboard pages
type TimetableHandler struct {
	svc service.TimetableService
}

// NewTimetableHandler creates a TimetableHandler
func NewTimetableHandler(svc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{svc: svc}
}

// Today lessons of the current weekday
// GET /api/v1/dashboard
func (h *TimetableHandler) Today(c *gin.Context) {
	resp, err := h.svc.Today(GetProfile(c))
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, resp)
}

// Weekly all lessons by weekday
// GET /api/v1/dashboard/all?day=Senin
func (h *TimetableHandler) Weekly(c *gin.Context) {
	var q dto.WeeklyScheduleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "Parameter tidak valid")
		return
	}

	resp, err := h.svc.Weekly(GetProfile(c), q.Day)
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, resp)
}

// Classes class picker
// GET /api/v1/dashboard/major
func (h *TimetableHandler) Classes(c *gin.Context) {
	opts := h.svc.Classes()
	response.OKList(c, opts, len(opts))
}

// ClassSchedule lessons with one class
// GET /api/v1/dashboard/major/:id
func (h *TimetableHandler) ClassSchedule(c *gin.Context) {
	resp, err := h.svc.ClassSchedule(GetProfile(c), model.ParseID(c.Param("id")))
	if err != nil {
		handleTimetableError(c, err)
		return
	}
	response.OK(c, resp)
}

func handleTimetableError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProfileMissing):
		unauthenticated(c, err.Error())
	case errors.Is(err, service.ErrTeacherNotFound):
		response.NotFound(c, 12001, err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, 50000, "Gagal memuat jadwal")
	}
}
