package dto

import "jadwal-guru/internal/model"

// ── denormalised views ──
//
// Embedded references are nil when the foreign key does not resolve.

// TeacherDetail teacher with its user
type TeacherDetail struct {
	model.Teacher
	User *UserProfile `json:"user"`
}

// StudyGroupDetail study group with level, program and chief
type StudyGroupDetail struct {
	model.StudyGroup
	Level   *model.Level   `json:"level"`
	Program *model.Program `json:"program"`
	Chief   *TeacherDetail `json:"chief"`
}

// StudyTimeDetail study time with its day
type StudyTimeDetail struct {
	model.StudyTime
	Day *model.Day `json:"day"`
}

// DayName name of the embedded day, empty when it does not resolve
func (t *StudyTimeDetail) DayName() string {
	if t == nil || t.Day == nil {
		return ""
	}
	return t.Day.Day
}

// ScheduleDetail schedule with every reference resolved
type ScheduleDetail struct {
	model.Schedule
	StudyGroup    *StudyGroupDetail    `json:"study_group"`
	StudyTime     *StudyTimeDetail     `json:"study_time"`
	Teacher       *TeacherDetail       `json:"teacher"`
	StudyLocation *model.StudyLocation `json:"study_location"`
}

// ScheduleListQuery optional filters of GET /schedules
type ScheduleListQuery struct {
	TeacherID    string `form:"teacher_id"     binding:"max=32"`
	StudyGroupID string `form:"study_group_id" binding:"max=32"`
}
