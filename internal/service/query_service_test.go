package service

import (
	"testing"

	"jadwal-guru/internal/model"
)

func TestQueryService_ListSchedules_ResolvesReferences(t *testing.T) {
	svc := NewQueryService(testRepo())

	list := svc.ListSchedules()
	if len(list) != 5 {
		t.Fatalf("expected 5 schedules, got %d", len(list))
	}

	first := list[0]
	if first.ID != 500 {
		t.Errorf("source order not kept, first id %d", first.ID)
	}
	if first.StudyGroup == nil || first.StudyGroup.Level == nil || first.StudyGroup.Level.Name != "XI" {
		t.Errorf("study group level not resolved: %+v", first.StudyGroup)
	}
	if first.StudyGroup.Chief == nil || first.StudyGroup.Chief.User == nil || first.StudyGroup.Chief.User.Name != "Budi Santoso" {
		t.Errorf("chief not resolved through teacher to user: %+v", first.StudyGroup.Chief)
	}
	if first.StudyTime == nil || first.StudyTime.DayName() != "Senin" {
		t.Errorf("study time day not resolved: %+v", first.StudyTime)
	}
	if first.Teacher == nil || first.Teacher.ID != 10 {
		t.Errorf("teacher not resolved: %+v", first.Teacher)
	}
	if first.StudyLocation == nil || first.StudyLocation.Name != "Lab Komputer 1" {
		t.Errorf("location not resolved: %+v", first.StudyLocation)
	}
}

func TestQueryService_DanglingReferencesAreNil(t *testing.T) {
	svc := NewQueryService(testRepo())

	var dangling, unknownLocation bool
	for _, s := range svc.ListSchedules() {
		switch s.ID {
		case 503:
			dangling = true
			if s.StudyGroup != nil || s.StudyTime != nil {
				t.Errorf("dangling refs should be nil: group=%+v time=%+v", s.StudyGroup, s.StudyTime)
			}
			if s.StudyTime.DayName() != "" {
				t.Error("DayName on nil study time should be empty")
			}
		case 501:
			unknownLocation = true
			if s.StudyLocation != nil {
				t.Errorf("location 9 does not exist, got %+v", s.StudyLocation)
			}
		}
	}
	if !dangling || !unknownLocation {
		t.Fatal("expected schedules 501 and 503 in the list")
	}

	groups := svc.ListStudyGroups()
	for _, g := range groups {
		if g.ID == 101 && g.Chief != nil {
			t.Errorf("chief 99 does not exist, got %+v", g.Chief)
		}
		if g.ID == 102 && g.Level != nil {
			t.Errorf("level 7 does not exist, got %+v", g.Level)
		}
	}
}

func TestQueryService_SchedulesForTeacher(t *testing.T) {
	svc := NewQueryService(testRepo())

	tests := []struct {
		name string
		id   model.ID
		want int
	}{
		{"budi", 10, 4},
		{"siti", 11, 1},
		{"unknown", 77, 0},
		{"zero never matches", 0, 0},
		{"unparseable input", model.ParseID("abc"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.SchedulesForTeacher(tt.id)
			if got == nil {
				t.Fatal("result should be an empty slice, not nil")
			}
			if len(got) != tt.want {
				t.Errorf("got %d schedules, want %d", len(got), tt.want)
			}
			for _, s := range got {
				if s.TeacherID != tt.id {
					t.Errorf("schedule %d belongs to teacher %d", s.ID, s.TeacherID)
				}
			}
		})
	}
}

func TestQueryService_SchedulesForStudyGroup(t *testing.T) {
	svc := NewQueryService(testRepo())

	if got := svc.SchedulesForStudyGroup(model.ParseID("100")); len(got) != 3 {
		t.Errorf("study group 100 has 3 schedules, got %d", len(got))
	}
	if got := svc.SchedulesForStudyGroup(model.ParseID(" 101 ")); len(got) != 1 {
		t.Errorf("padded id should normalise, got %d", len(got))
	}
	if got := svc.SchedulesForStudyGroup(404); len(got) != 1 {
		t.Errorf("filter uses the raw key even when the group is missing, got %d", len(got))
	}
}

func TestQueryService_TeacherByUserID(t *testing.T) {
	svc := NewQueryService(testRepo())

	teacher := svc.TeacherByUserID(2)
	if teacher == nil || teacher.ID != 11 {
		t.Fatalf("expected teacher 11, got %+v", teacher)
	}
	if teacher.User == nil || teacher.User.Username != "siti" {
		t.Errorf("user not embedded: %+v", teacher.User)
	}
	if svc.TeacherByUserID(3) != nil {
		t.Error("operator has no teacher profile")
	}
}

func TestQueryService_Catalogues(t *testing.T) {
	svc := NewQueryService(testRepo())

	if n := len(svc.ListTeachers()); n != 2 {
		t.Errorf("teachers: got %d", n)
	}
	if n := len(svc.ListStudyTimes()); n != 5 {
		t.Errorf("study times: got %d", n)
	}
	if n := len(svc.ListPrograms()); n != 2 {
		t.Errorf("programs: got %d", n)
	}
	if n := len(svc.ListLevels()); n != 2 {
		t.Errorf("levels: got %d", n)
	}
	if n := len(svc.ListDays()); n != 4 {
		t.Errorf("days: got %d", n)
	}
	if n := len(svc.ListStudyLocations()); n != 1 {
		t.Errorf("locations: got %d", n)
	}
	if svc.StudyGroup(0) != nil {
		t.Error("study group 0 must not resolve")
	}
}
