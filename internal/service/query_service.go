package service

import (
	"jadwal-guru/internal/dto"
	"jadwal-guru/internal/model"
	"jadwal-guru/internal/repository"
)

// QueryService joins the fixture tables into denormalised views.
//
// Every method is total: unresolved references are embedded as nil and
// lookups that find nothing return nil or an empty slice, never an error.
// Identifiers are expected already normalised with model.ParseID; the zero
// ID matches nothing.
type QueryService interface {
	ListSchedules() []dto.ScheduleDetail
	SchedulesForTeacher(teacherID model.ID) []dto.ScheduleDetail
	SchedulesForStudyGroup(studyGroupID model.ID) []dto.ScheduleDetail
	ListStudyGroups() []dto.StudyGroupDetail
	StudyGroup(id model.ID) *dto.StudyGroupDetail
	ListTeachers() []dto.TeacherDetail
	TeacherByUserID(userID model.ID) *dto.TeacherDetail
	ListStudyTimes() []dto.StudyTimeDetail
	ListPrograms() []model.Program
	ListLevels() []model.Level
	ListDays() []model.Day
	ListStudyLocations() []model.StudyLocation
}

type queryService struct {
	repo *repository.Repository
}

// NewQueryService creates a QueryService over repo
func NewQueryService(repo *repository.Repository) QueryService {
	return &queryService{repo: repo}
}

// ── schedules ──

func (s *queryService) ListSchedules() []dto.ScheduleDetail {
	return s.filterSchedules(func(model.Schedule) bool { return true })
}

func (s *queryService) SchedulesForTeacher(teacherID model.ID) []dto.ScheduleDetail {
	return s.filterSchedules(func(sc model.Schedule) bool {
		return teacherID.Valid() && sc.TeacherID == teacherID
	})
}

func (s *queryService) SchedulesForStudyGroup(studyGroupID model.ID) []dto.ScheduleDetail {
	return s.filterSchedules(func(sc model.Schedule) bool {
		return studyGroupID.Valid() && sc.StudyGroupID == studyGroupID
	})
}

func (s *queryService) filterSchedules(keep func(model.Schedule) bool) []dto.ScheduleDetail {
	out := make([]dto.ScheduleDetail, 0)
	s.repo.Schedules.Each(func(sc model.Schedule) {
		if keep(sc) {
			out = append(out, s.scheduleDetail(sc))
		}
	})
	return out
}

func (s *queryService) scheduleDetail(sc model.Schedule) dto.ScheduleDetail {
	detail := dto.ScheduleDetail{
		Schedule:   sc,
		StudyGroup: s.StudyGroup(sc.StudyGroupID),
		StudyTime:  s.studyTime(sc.StudyTimeID),
		Teacher:    s.teacher(sc.TeacherID),
	}
	if loc, ok := s.repo.StudyLocations.Get(sc.StudyLocationID); ok {
		detail.StudyLocation = &loc
	}
	return detail
}

// ── study groups ──

func (s *queryService) ListStudyGroups() []dto.StudyGroupDetail {
	out := make([]dto.StudyGroupDetail, 0, s.repo.StudyGroups.Len())
	s.repo.StudyGroups.Each(func(g model.StudyGroup) {
		out = append(out, s.studyGroupDetail(g))
	})
	return out
}

func (s *queryService) StudyGroup(id model.ID) *dto.StudyGroupDetail {
	g, ok := s.repo.StudyGroups.Get(id)
	if !ok {
		return nil
	}
	detail := s.studyGroupDetail(g)
	return &detail
}

func (s *queryService) studyGroupDetail(g model.StudyGroup) dto.StudyGroupDetail {
	detail := dto.StudyGroupDetail{
		StudyGroup: g,
		Chief:      s.teacher(g.ChiefID),
	}
	if level, ok := s.repo.Levels.Get(g.LevelID); ok {
		detail.Level = &level
	}
	if program, ok := s.repo.Programs.Get(g.ProgramID); ok {
		detail.Program = &program
	}
	return detail
}

// ── teachers ──

func (s *queryService) ListTeachers() []dto.TeacherDetail {
	out := make([]dto.TeacherDetail, 0, s.repo.Teachers.Len())
	s.repo.Teachers.Each(func(t model.Teacher) {
		out = append(out, s.teacherDetail(t))
	})
	return out
}

func (s *queryService) TeacherByUserID(userID model.ID) *dto.TeacherDetail {
	t, ok := s.repo.TeacherByUserID(userID)
	if !ok {
		return nil
	}
	detail := s.teacherDetail(t)
	return &detail
}

func (s *queryService) teacher(id model.ID) *dto.TeacherDetail {
	t, ok := s.repo.Teachers.Get(id)
	if !ok {
		return nil
	}
	detail := s.teacherDetail(t)
	return &detail
}

func (s *queryService) teacherDetail(t model.Teacher) dto.TeacherDetail {
	detail := dto.TeacherDetail{Teacher: t}
	if u, ok := s.repo.Users.Get(t.UserID); ok {
		profile := dto.NewUserProfile(u)
		detail.User = &profile
	}
	return detail
}

// ── study times ──

func (s *queryService) ListStudyTimes() []dto.StudyTimeDetail {
	out := make([]dto.StudyTimeDetail, 0, s.repo.StudyTimes.Len())
	s.repo.StudyTimes.Each(func(st model.StudyTime) {
		out = append(out, s.studyTimeDetail(st))
	})
	return out
}

func (s *queryService) studyTime(id model.ID) *dto.StudyTimeDetail {
	st, ok := s.repo.StudyTimes.Get(id)
	if !ok {
		return nil
	}
	detail := s.studyTimeDetail(st)
	return &detail
}

func (s *queryService) studyTimeDetail(st model.StudyTime) dto.StudyTimeDetail {
	detail := dto.StudyTimeDetail{StudyTime: st}
	if day, ok := s.repo.Days.Get(st.DayID); ok {
		detail.Day = &day
	}
	return detail
}

// ── catalogues ──

func (s *queryService) ListPrograms() []model.Program { return s.repo.Programs.List() }

func (s *queryService) ListLevels() []model.Level { return s.repo.Levels.List() }

func (s *queryService) ListDays() []model.Day { return s.repo.Days.List() }

func (s *queryService) ListStudyLocations() []model.StudyLocation {
	return s.repo.StudyLocations.List()
}
