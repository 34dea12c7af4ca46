package service

import (
	"time"

	"go.uber.org/zap"

	"jadwal-guru/config"
	"jadwal-guru/internal/dto"
	"jadwal-guru/internal/fixture"
	"jadwal-guru/internal/model"
	"jadwal-guru/internal/repository"
)

// ── test fixtures ──
//
// Budi (user 1, teacher 10) teaches XI RPL 2 on Monday periods 3 and 1 and
// Tuesday period 2, plus one lesson whose study time is dangling.
// Siti (user 2, teacher 11) teaches X TKJ 1 on Wednesday.
// The operator (user 3) has no teacher profile.

func testDataset() *fixture.Dataset {
	return &fixture.Dataset{
		Users: []model.User{
			{ID: 1, Name: "Budi Santoso", Username: "budi", Password: "budi123", Email: "budi@sekolah.id"},
			{ID: 2, Name: "Siti Aminah", Username: "siti", Password: "siti123"},
			{ID: 3, Name: "Operator", Username: "operator", Password: "operator123"},
		},
		Teachers: []model.Teacher{
			{ID: 10, UserID: 1},
			{ID: 11, UserID: 2},
		},
		Programs: []model.Program{
			{ID: 1, Codename: "RPL", Name: "Rekayasa Perangkat Lunak"},
			{ID: 2, Codename: "TKJ", Name: "Teknik Komputer dan Jaringan"},
		},
		Levels: []model.Level{
			{ID: 1, Name: "X"},
			{ID: 2, Name: "XI"},
		},
		StudyGroups: []model.StudyGroup{
			{ID: 100, LevelID: 2, ProgramID: 1, Number: "2", ChiefID: 10},
			{ID: 101, LevelID: 1, ProgramID: 2, Number: "1", ChiefID: 99},
			{ID: 102, LevelID: 7, ProgramID: 1},
		},
		Days: []model.Day{
			{ID: 1, Day: "Senin"},
			{ID: 2, Day: "Selasa"},
			{ID: 3, Day: "Rabu"},
			{ID: 7, Day: "Minggu"},
		},
		StudyTimes: []model.StudyTime{
			{ID: 1, DayID: 1, Number: 1, StartTime: "07:00:00", EndTime: "07:45:00"},
			{ID: 3, DayID: 1, Number: 3, StartTime: "08:30:00", EndTime: "09:15:00"},
			{ID: 12, DayID: 2, Number: 2, StartTime: "07:45:00", EndTime: "08:30:00"},
			{ID: 21, DayID: 3, Number: 1, StartTime: "07:00:00", EndTime: "07:45:00"},
			{ID: 70, DayID: 7, Number: 1, StartTime: "09:00", EndTime: "10:00"},
		},
		StudyLocations: []model.StudyLocation{
			{ID: 1, Name: "Lab Komputer 1"},
		},
		Schedules: []model.Schedule{
			{ID: 500, TeacherID: 10, StudyGroupID: 100, StudyTimeID: 3, StudyLocationID: 1},
			{ID: 501, TeacherID: 10, StudyGroupID: 100, StudyTimeID: 1, StudyLocationID: 9},
			{ID: 502, TeacherID: 10, StudyGroupID: 100, StudyTimeID: 12, StudyLocationID: 1},
			{ID: 503, TeacherID: 10, StudyGroupID: 404, StudyTimeID: 999, StudyLocationID: 1},
			{ID: 504, TeacherID: 11, StudyGroupID: 101, StudyTimeID: 21, StudyLocationID: 1},
		},
	}
}

func testRepo() *repository.Repository {
	return repository.NewRepository(testDataset())
}

func testConfig() *config.Config {
	return &config.Config{
		Auth:     config.AuthConfig{LoginDelay: 0},
		Schedule: config.ScheduleConfig{Timezone: "UTC"},
	}
}

// fixedClock returns a clock stuck at the given date, 10:00 UTC
func fixedClock(year int, month time.Month, day int) func() time.Time {
	t := time.Date(year, month, day, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

// monday 2024-01-01 was a Monday
var monday = fixedClock(2024, time.January, 1)

func newTestTimetable(now func() time.Time) *timetableService {
	return newTimetableService(NewQueryService(testRepo()), time.UTC, now, zap.NewNop())
}

func profileOf(id model.ID, name string) *dto.UserProfile {
	return &dto.UserProfile{ID: id, Name: name}
}
