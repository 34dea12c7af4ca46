package service

import (
	"errors"
	"testing"
	"time"

	"jadwal-guru/internal/dto"
	"jadwal-guru/internal/model"
)

// ── helpers ──

func TestDayName(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), "Senin"},
		{time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC), "Jumat"},
		{time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC), "Sabtu"},
		{time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC), "Minggu"},
	}
	for _, tt := range tests {
		if got := DayName(tt.date); got != tt.want {
			t.Errorf("DayName(%s) = %q, want %q", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}

	// late Monday evening UTC is already Tuesday in Jakarta
	wib := time.FixedZone("WIB", 7*60*60)
	late := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	if got := DayName(late.In(wib)); got != "Selasa" {
		t.Errorf("expected Selasa in WIB, got %q", got)
	}
}

func TestClassName(t *testing.T) {
	svc := NewQueryService(testRepo())

	if got := ClassName(svc.StudyGroup(100)); got != "XI RPL 2" {
		t.Errorf("got %q, want XI RPL 2", got)
	}
	if got := ClassName(svc.StudyGroup(102)); got != "RPL" {
		t.Errorf("missing level and number trim away, got %q", got)
	}
	if got := ClassName(nil); got != UnknownClassLabel {
		t.Errorf("nil group: got %q", got)
	}
	if got := ClassName(&dto.StudyGroupDetail{StudyGroup: model.StudyGroup{ID: 9}}); got != "" {
		t.Errorf("group with nothing resolved: got %q, want empty", got)
	}

	noProgram := &dto.StudyGroupDetail{
		StudyGroup: model.StudyGroup{ID: 9, Number: "1"},
		Level:      &model.Level{ID: 1, Name: "X"},
	}
	if got := ClassName(noProgram); got != "X  1" {
		t.Errorf("missing program keeps its slot: got %q, want %q", got, "X  1")
	}
}

func TestNewTeachingEntry_Defaults(t *testing.T) {
	entry := NewTeachingEntry(dto.ScheduleDetail{})

	if entry.ClassName != UnknownClassLabel {
		t.Errorf("class: %q", entry.ClassName)
	}
	if entry.Location != DefaultLocation {
		t.Errorf("location: %q", entry.Location)
	}
	if entry.Time.StartTime != DefaultClock || entry.Time.EndTime != DefaultClock {
		t.Errorf("times: %+v", entry.Time)
	}
	if entry.Time.Day != UnknownDayLabel || entry.Time.Period != 0 {
		t.Errorf("day/period: %+v", entry.Time)
	}
}

func TestGroupByWeekday(t *testing.T) {
	entries := []dto.TeachingEntry{
		{ScheduleID: 1, Time: dto.TeachingTime{Day: "Senin", Period: 3}},
		{ScheduleID: 2, Time: dto.TeachingTime{Day: "Senin", Period: 1}},
		{ScheduleID: 3, Time: dto.TeachingTime{Day: "Sabtu", Period: 1}},
		{ScheduleID: 4, Time: dto.TeachingTime{Day: "Senin", Period: 1}},
		{ScheduleID: 5, Time: dto.TeachingTime{Day: UnknownDayLabel}},
	}

	buckets := GroupByWeekday(entries, SchoolDays())
	if len(buckets) != 5 {
		t.Fatalf("expected one bucket per school day, got %d", len(buckets))
	}
	if buckets[0].Day != "Senin" || buckets[4].Day != "Jumat" {
		t.Errorf("bucket order wrong: %s..%s", buckets[0].Day, buckets[4].Day)
	}

	var ids []int64
	for _, e := range buckets[0].Entries {
		ids = append(ids, int64(e.ScheduleID))
	}
	if len(ids) != 3 || ids[0] != 2 || ids[1] != 4 || ids[2] != 1 {
		t.Errorf("Senin should be stably ordered by period [2 4 1], got %v", ids)
	}
	for _, b := range buckets[1:] {
		if b.Entries == nil || len(b.Entries) != 0 {
			t.Errorf("%s should be an empty, non-nil bucket", b.Day)
		}
	}
	if ActiveDays(buckets) != 1 {
		t.Errorf("active days: %d", ActiveDays(buckets))
	}

	all := GroupByWeekday(entries, AllDays())
	if len(all) != 7 || all[5].Day != "Sabtu" || len(all[5].Entries) != 1 {
		t.Errorf("Sabtu bucket expected with all days: %+v", all)
	}
}

func TestGroupByWeekday_Idempotent(t *testing.T) {
	entries := NewTeachingEntries(NewQueryService(testRepo()).SchedulesForTeacher(10))

	first := GroupByWeekday(entries, AllDays())
	var flat []dto.TeachingEntry
	for _, b := range first {
		flat = append(flat, b.Entries...)
	}
	second := GroupByWeekday(flat, AllDays())

	for i := range first {
		if len(first[i].Entries) != len(second[i].Entries) {
			t.Fatalf("%s changed size on regrouping", first[i].Day)
		}
		for j := range first[i].Entries {
			if first[i].Entries[j].ScheduleID != second[i].Entries[j].ScheduleID {
				t.Errorf("%s changed order on regrouping", first[i].Day)
			}
			if j > 0 && first[i].Entries[j-1].Time.Period > first[i].Entries[j].Time.Period {
				t.Errorf("%s periods not non-decreasing", first[i].Day)
			}
		}
	}
}

// ── pages ──

func TestTimetableService_Today(t *testing.T) {
	svc := newTestTimetable(monday)

	resp, err := svc.Today(profileOf(1, "Budi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Day != "Senin" || resp.Total != 2 {
		t.Fatalf("expected 2 lessons on Senin, got %d on %s", resp.Total, resp.Day)
	}
	if resp.Entries[0].ScheduleID != 501 || resp.Entries[1].ScheduleID != 500 {
		t.Errorf("today should be ordered by period: %+v", resp.Entries)
	}
	if resp.Entries[0].Location != DefaultLocation {
		t.Errorf("unresolved location should default, got %q", resp.Entries[0].Location)
	}
	if resp.Entries[1].ClassName != "XI RPL 2" || resp.Entries[1].Location != "Lab Komputer 1" {
		t.Errorf("entry not rendered: %+v", resp.Entries[1])
	}
	if resp.TeacherID != 10 || resp.TeacherName != "Budi Santoso" {
		t.Errorf("teacher: %d %q", resp.TeacherID, resp.TeacherName)
	}
}

func TestTimetableService_Today_NoLessons(t *testing.T) {
	svc := newTestTimetable(fixedClock(2024, time.January, 7))

	resp, err := svc.Today(profileOf(1, "Budi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Day != "Minggu" || resp.Total != 0 || resp.Entries == nil {
		t.Errorf("expected empty Minggu, got %+v", resp)
	}
}

func TestTimetableService_Errors(t *testing.T) {
	svc := newTestTimetable(monday)

	if _, err := svc.Today(nil); !errors.Is(err, ErrProfileMissing) {
		t.Errorf("nil profile: %v", err)
	}
	if _, err := svc.Weekly(profileOf(3, "Operator"), ""); !errors.Is(err, ErrTeacherNotFound) {
		t.Errorf("operator: %v", err)
	}
	if _, err := svc.ClassSchedule(profileOf(42, "Ghost"), 100); !errors.Is(err, ErrTeacherNotFound) {
		t.Errorf("unknown user: %v", err)
	}
}

func TestTimetableService_Weekly(t *testing.T) {
	svc := newTestTimetable(monday)

	resp, err := svc.Weekly(profileOf(1, "Budi"), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 4 || len(resp.Entries) != 4 {
		t.Errorf("every lesson counts, including the dangling one: %d", resp.Total)
	}
	if len(resp.Days) != 5 || resp.ActiveDays != 2 {
		t.Errorf("expected 5 buckets with 2 active, got %d/%d", len(resp.Days), resp.ActiveDays)
	}
	if resp.SelectedDay != AllDaysFilter || len(resp.Selected) != 4 {
		t.Errorf("default selection should be everything: %s %d", resp.SelectedDay, len(resp.Selected))
	}

	tue, _ := svc.Weekly(profileOf(1, "Budi"), "Selasa")
	if tue.SelectedDay != "Selasa" || len(tue.Selected) != 1 || tue.Selected[0].ScheduleID != 502 {
		t.Errorf("Selasa selection: %+v", tue.Selected)
	}

	sat, _ := svc.Weekly(profileOf(1, "Budi"), "Sabtu")
	if sat.Selected == nil || len(sat.Selected) != 0 {
		t.Errorf("day outside the school week selects nothing: %+v", sat.Selected)
	}
}

func TestTimetableService_Classes(t *testing.T) {
	svc := newTestTimetable(monday)

	opts := svc.Classes()
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
	if opts[0].Name != "XI RPL 2" || opts[0].Codename != "RPL" || opts[0].StudyGroupID != 100 {
		t.Errorf("option: %+v", opts[0])
	}
}

func TestTimetableService_ClassSchedule(t *testing.T) {
	svc := newTestTimetable(monday)

	resp, err := svc.ClassSchedule(profileOf(1, "Budi"), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ClassName != "XI RPL 2" || resp.Total != 3 {
		t.Errorf("got %q with %d lessons", resp.ClassName, resp.Total)
	}
	if len(resp.Days) != 7 || resp.ActiveDays != 2 {
		t.Errorf("expected 7 buckets, 2 active: %d/%d", len(resp.Days), resp.ActiveDays)
	}

	// Siti's class, but Budi is signed in
	other, _ := svc.ClassSchedule(profileOf(1, "Budi"), 101)
	if other.Total != 0 || other.ClassName != "X TKJ 1" {
		t.Errorf("other teacher's class should be empty: %+v", other)
	}

	none, _ := svc.ClassSchedule(profileOf(1, "Budi"), 0)
	if none.Total != 0 || none.ClassName != UnknownClassLabel {
		t.Errorf("no class selected: %+v", none)
	}
}
