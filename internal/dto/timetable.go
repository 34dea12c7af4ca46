package dto

import "jadwal-guru/internal/model"

// ── teacher timetable pages ──
//
// JSON keys follow the field names the dashboard front end already renders.

// TeachingTime when a lesson happens
type TeachingTime struct {
	Period    int    `json:"jam_ke"`
	StartTime string `json:"waktu_mulai"`
	EndTime   string `json:"waktu_selesai"`
	Day       string `json:"hari"`
}

// TeachingEntry one lesson as shown to the teacher
type TeachingEntry struct {
	ScheduleID   model.ID     `json:"schedule_id"`
	StudyGroupID model.ID     `json:"study_group_id"`
	ClassName    string       `json:"kelas"`
	Location     string       `json:"lokasi"`
	Time         TeachingTime `json:"waktu_mengajar"`
}

// DayBucket lessons of one weekday, ordered by period
type DayBucket struct {
	Day     string          `json:"hari"`
	Entries []TeachingEntry `json:"jadwal"`
}

// TodayScheduleResponse GET /dashboard
type TodayScheduleResponse struct {
	TeacherID   model.ID        `json:"teacher_id"`
	TeacherName string          `json:"nama_guru"`
	Day         string          `json:"hari"`
	Total       int             `json:"total_jadwal"`
	Entries     []TeachingEntry `json:"jadwal"`
}

// WeeklyScheduleQuery GET /dashboard/all
type WeeklyScheduleQuery struct {
	Day string `form:"day"`
}

// WeeklyScheduleResponse GET /dashboard/all
type WeeklyScheduleResponse struct {
	TeacherID   model.ID        `json:"teacher_id"`
	TeacherName string          `json:"nama_guru"`
	Total       int             `json:"total_jadwal"`
	Entries     []TeachingEntry `json:"jadwal"`
	ActiveDays  int             `json:"hari_aktif"`
	Days        []DayBucket     `json:"per_hari"`
	SelectedDay string          `json:"hari_dipilih"`
	Selected    []TeachingEntry `json:"jadwal_dipilih"`
}

// ClassOption entry of the class picker
type ClassOption struct {
	ID           model.ID `json:"id"`
	Name         string   `json:"name"`
	Codename     string   `json:"codename"`
	StudyGroupID model.ID `json:"study_group_id"`
}

// ClassScheduleResponse GET /dashboard/major/:id
type ClassScheduleResponse struct {
	TeacherID    model.ID        `json:"teacher_id"`
	TeacherName  string          `json:"nama_guru"`
	StudyGroupID model.ID        `json:"study_group_id"`
	ClassName    string          `json:"kelas"`
	Total        int             `json:"total_jadwal"`
	Entries      []TeachingEntry `json:"jadwal"`
	ActiveDays   int             `json:"hari_aktif"`
	Days         []DayBucket     `json:"per_hari"`
}
