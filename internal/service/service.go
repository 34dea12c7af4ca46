package service

import (
	"go.uber.org/zap"

	"jadwal-guru/config"
	"jadwal-guru/internal/repository"
)

// Service aggregates every service
type Service struct {
	Auth      AuthService
	Query     QueryService
	Timetable TimetableService
	Export    ExportService
}

// NewService creates the Service aggregate
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	logger *zap.Logger,
) *Service {
	query := NewQueryService(repo)
	timetable := NewTimetableService(cfg, query, logger)
	return &Service{
		Auth:      NewAuthService(cfg, repo, logger),
		Query:     query,
		Timetable: timetable,
		Export:    NewExportService(cfg, timetable, logger),
	}
}
