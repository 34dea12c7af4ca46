package handler

import "jadwal-guru/internal/service"

// Handler aggregates every handler
type Handler struct {
	Auth      *AuthHandler
	Timetable *TimetableHandler
	Schedule  *ScheduleHandler
	Export    *ExportHandler
}

// NewHandler creates the Handler aggregate
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		Timetable: NewTimetableHandler(svc.Timetable),
		Schedule:  NewScheduleHandler(svc.Query),
		Export:    NewExportHandler(svc.Export),
	}
}
