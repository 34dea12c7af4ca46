package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jadwal-guru/config"
	"jadwal-guru/internal/api/handler"
	"jadwal-guru/internal/api/middleware"
	"jadwal-guru/internal/session"
	"jadwal-guru/pkg/redis"
)

// maxBodyBytes request body cap
const maxBodyBytes = 1 << 20

// Setup builds the gin engine. rdb may be nil, which disables login rate limiting.
func Setup(cfg *config.Config, h *handler.Handler, provider *session.Provider, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	if gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))
	r.Use(middleware.Session(provider))

	// ── health ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, cfg.Auth.LoginRateLimit, time.Minute, logger), h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/status", h.Auth.Status)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.RequireSession())
		{
			authorized.GET("/auth/me", h.Auth.Me)

			// teacher pages
			dashboard := authorized.Group("/dashboard")
			{
				dashboard.GET("", h.Timetable.Today)
				dashboard.GET("/all", h.Timetable.Weekly)
				dashboard.GET("/major", h.Timetable.Classes)
				dashboard.GET("/major/:id", h.Timetable.ClassSchedule)
				dashboard.GET("/export/xlsx", h.Export.ExportWeekly)
				dashboard.GET("/export/ics", h.Export.ExportCalendar)
			}

			// joined data
			authorized.GET("/schedules", h.Schedule.ListSchedules)
			authorized.GET("/study-groups", h.Schedule.ListStudyGroups)
			authorized.GET("/teachers", h.Schedule.ListTeachers)
			authorized.GET("/teachers/by-user/:user_id", h.Schedule.TeacherByUser)
			authorized.GET("/study-times", h.Schedule.ListStudyTimes)
			authorized.GET("/programs", h.Schedule.ListPrograms)
			authorized.GET("/levels", h.Schedule.ListLevels)
			authorized.GET("/days", h.Schedule.ListDays)
			authorized.GET("/study-locations", h.Schedule.ListStudyLocations)
		}
	}

	return r
}
