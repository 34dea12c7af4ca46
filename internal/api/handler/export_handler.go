package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jadwal-guru/internal/service"
	"jadwal-guru/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler timetable downloads
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportWeekly weekly timetable as a spreadsheet
// GET /api/v1/dashboard/export/xlsx
func (h *ExportHandler) ExportWeekly(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportWeekly(c.Request.Context(), GetProfile(c))
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	response.Attachment(c, filename, contentTypeXLSX, buf.Bytes())
}

// ExportCalendar weekly timetable as an iCalendar feed
// GET /api/v1/dashboard/export/ics
func (h *ExportHandler) ExportCalendar(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportCalendar(c.Request.Context(), GetProfile(c))
	if err != nil {
		h.handleExportError(c, err)
		return
	}
	response.Attachment(c, filename, contentTypeICS, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProfileMissing), errors.Is(err, service.ErrTeacherNotFound):
		handleTimetableError(c, err)
	case errors.Is(err, service.ErrExportGenerateFail):
		response.Error(c, http.StatusInternalServerError, 16101, err.Error())
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
