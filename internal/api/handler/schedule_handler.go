package handler

import (
	"github.com/gin-gonic/gin"

	"jadwal-guru/internal/dto"
	"jadwal-guru/internal/model"
	"jadwal-guru/internal/service"
	"jadwal-guru/pkg/response"
)

// ScheduleHandler joined schedule data and the lookup tables
type ScheduleHandler struct {
	svc service.QueryService
}

// NewScheduleHandler creates a ScheduleHandler
func NewScheduleHandler(svc service.QueryService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

// ListSchedules joined schedules, optionally for one teacher or study group.
// teacher_id wins when both are given; ids that do not parse match nothing.
// GET /api/v1/schedules
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	var q dto.ScheduleListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 10001, "Parameter tidak valid")
		return
	}

	var list []dto.ScheduleDetail
	switch {
	case q.TeacherID != "":
		list = h.svc.SchedulesForTeacher(model.ParseID(q.TeacherID))
	case q.StudyGroupID != "":
		list = h.svc.SchedulesForStudyGroup(model.ParseID(q.StudyGroupID))
	default:
		list = h.svc.ListSchedules()
	}
	response.OKList(c, list, len(list))
}

// ListStudyGroups GET /api/v1/study-groups
func (h *ScheduleHandler) ListStudyGroups(c *gin.Context) {
	list := h.svc.ListStudyGroups()
	response.OKList(c, list, len(list))
}

// ListTeachers GET /api/v1/teachers
func (h *ScheduleHandler) ListTeachers(c *gin.Context) {
	list := h.svc.ListTeachers()
	response.OKList(c, list, len(list))
}

// TeacherByUser GET /api/v1/teachers/by-user/:user_id
func (h *ScheduleHandler) TeacherByUser(c *gin.Context) {
	teacher := h.svc.TeacherByUserID(model.ParseID(c.Param("user_id")))
	if teacher == nil {
		response.NotFound(c, 12001, service.ErrTeacherNotFound.Error())
		return
	}
	response.OK(c, teacher)
}

// ListStudyTimes GET /api/v1/study-times
func (h *ScheduleHandler) ListStudyTimes(c *gin.Context) {
	list := h.svc.ListStudyTimes()
	response.OKList(c, list, len(list))
}

// ListPrograms GET /api/v1/programs
func (h *ScheduleHandler) ListPrograms(c *gin.Context) {
	list := h.svc.ListPrograms()
	response.OKList(c, list, len(list))
}

// ListLevels GET /api/v1/levels
func (h *ScheduleHandler) ListLevels(c *gin.Context) {
	list := h.svc.ListLevels()
	response.OKList(c, list, len(list))
}

// ListDays GET /api/v1/days
func (h *ScheduleHandler) ListDays(c *gin.Context) {
	list := h.svc.ListDays()
	response.OKList(c, list, len(list))
}

// ListStudyLocations GET /api/v1/study-locations
func (h *ScheduleHandler) ListStudyLocations(c *gin.Context) {
	list := h.svc.ListStudyLocations()
	response.OKList(c, list, len(list))
}
