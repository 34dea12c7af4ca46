package service

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"jadwal-guru/config"
	"jadwal-guru/internal/dto"
	"jadwal-guru/internal/model"
)

// ── timetable errors ──

var (
	ErrProfileMissing  = errors.New("Data user tidak ditemukan")
	ErrTeacherNotFound = errors.New("Data guru tidak ditemukan")
)

// TimetableService builds the three teacher pages from the joined schedules
type TimetableService interface {
	// Today lessons of the signed-in teacher on the current weekday
	Today(profile *dto.UserProfile) (*dto.TodayScheduleResponse, error)
	// Weekly every lesson of the teacher, bucketed Monday to Friday.
	// day narrows the selected list; "" and "Semua" select everything.
	Weekly(profile *dto.UserProfile, day string) (*dto.WeeklyScheduleResponse, error)
	// Classes class picker options
	Classes() []dto.ClassOption
	// ClassSchedule lessons the teacher gives to one study group
	ClassSchedule(profile *dto.UserProfile, studyGroupID model.ID) (*dto.ClassScheduleResponse, error)
}

type timetableService struct {
	query  QueryService
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

// NewTimetableService creates a TimetableService using the configured school timezone
func NewTimetableService(cfg *config.Config, query QueryService, logger *zap.Logger) TimetableService {
	return newTimetableService(query, cfg.Schedule.Location(), time.Now, logger)
}

func newTimetableService(query QueryService, loc *time.Location, now func() time.Time, logger *zap.Logger) *timetableService {
	if loc == nil {
		loc = time.UTC
	}
	return &timetableService{query: query, loc: loc, now: now, logger: logger}
}

// teacherLessons resolves the teacher behind profile and their lessons
func (s *timetableService) teacherLessons(profile *dto.UserProfile) (*dto.TeacherDetail, []dto.TeachingEntry, error) {
	if profile == nil || !profile.ID.Valid() {
		return nil, nil, ErrProfileMissing
	}
	teacher := s.query.TeacherByUserID(profile.ID)
	if teacher == nil {
		s.logger.Debug("no teacher profile for user", zap.Int64("user_id", int64(profile.ID)))
		return nil, nil, ErrTeacherNotFound
	}
	entries := NewTeachingEntries(s.query.SchedulesForTeacher(teacher.ID))
	return teacher, entries, nil
}

func teacherName(t *dto.TeacherDetail, profile *dto.UserProfile) string {
	if t != nil && t.User != nil && t.User.Name != "" {
		return t.User.Name
	}
	return profile.Name
}

// ═══════════════════════════════════════════════════════════
// Today
// ═══════════════════════════════════════════════════════════

func (s *timetableService) Today(profile *dto.UserProfile) (*dto.TodayScheduleResponse, error) {
	teacher, entries, err := s.teacherLessons(profile)
	if err != nil {
		return nil, err
	}

	today := DayName(s.now().In(s.loc))
	todays := make([]dto.TeachingEntry, 0)
	for _, e := range entries {
		if e.Time.Day == today {
			todays = append(todays, e)
		}
	}
	sortByPeriod(todays)

	return &dto.TodayScheduleResponse{
		TeacherID:   teacher.ID,
		TeacherName: teacherName(teacher, profile),
		Day:         today,
		Total:       len(todays),
		Entries:     todays,
	}, nil
}

// ═══════════════════════════════════════════════════════════
// Weekly
// ═══════════════════════════════════════════════════════════

func (s *timetableService) Weekly(profile *dto.UserProfile, day string) (*dto.WeeklyScheduleResponse, error) {
	teacher, entries, err := s.teacherLessons(profile)
	if err != nil {
		return nil, err
	}

	buckets := GroupByWeekday(entries, SchoolDays())
	resp := &dto.WeeklyScheduleResponse{
		TeacherID:   teacher.ID,
		TeacherName: teacherName(teacher, profile),
		Total:       len(entries),
		Entries:     entries,
		ActiveDays:  ActiveDays(buckets),
		Days:        buckets,
		SelectedDay: AllDaysFilter,
		Selected:    entries,
	}

	if day != "" && day != AllDaysFilter {
		resp.SelectedDay = day
		resp.Selected = []dto.TeachingEntry{}
		for _, b := range buckets {
			if b.Day == day {
				resp.Selected = b.Entries
				break
			}
		}
	}
	return resp, nil
}

// ═══════════════════════════════════════════════════════════
// Class picker and per-class page
// ═══════════════════════════════════════════════════════════

func (s *timetableService) Classes() []dto.ClassOption {
	groups := s.query.ListStudyGroups()
	out := make([]dto.ClassOption, 0, len(groups))
	for i := range groups {
		g := &groups[i]
		opt := dto.ClassOption{
			ID:           g.ID,
			Name:         ClassName(g),
			StudyGroupID: g.ID,
		}
		if g.Program != nil {
			opt.Codename = g.Program.Codename
		}
		out = append(out, opt)
	}
	return out
}

func (s *timetableService) ClassSchedule(profile *dto.UserProfile, studyGroupID model.ID) (*dto.ClassScheduleResponse, error) {
	teacher, entries, err := s.teacherLessons(profile)
	if err != nil {
		return nil, err
	}

	mine := make([]dto.TeachingEntry, 0)
	if studyGroupID.Valid() {
		for _, e := range entries {
			if e.StudyGroupID == studyGroupID {
				mine = append(mine, e)
			}
		}
	}
	buckets := GroupByWeekday(mine, AllDays())

	return &dto.ClassScheduleResponse{
		TeacherID:    teacher.ID,
		TeacherName:  teacherName(teacher, profile),
		StudyGroupID: studyGroupID,
		ClassName:    ClassName(s.query.StudyGroup(studyGroupID)),
		Total:        len(mine),
		Entries:      mine,
		ActiveDays:   ActiveDays(buckets),
		Days:         buckets,
	}, nil
}
