package service

import (
	"sort"
	"strings"
	"time"

	"jadwal-guru/internal/dto"
)

// ── presentation defaults ──

const (
	UnknownClassLabel = "Kelas Tidak Diketahui"
	DefaultLocation   = "Ruang Teori"
	DefaultClock      = "00:00"
	UnknownDayLabel   = "Tidak Diketahui"

	// AllDaysFilter selects every day on the weekly page
	AllDaysFilter = "Semua"
)

// weekdayNames is indexed by time.Weekday, Sunday first
var weekdayNames = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

// SchoolDays Monday to Friday
func SchoolDays() []string {
	return []string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat"}
}

// AllDays Monday to Sunday
func AllDays() []string {
	return append(SchoolDays(), "Sabtu", "Minggu")
}

// DayName Indonesian weekday name of t in t's location
func DayName(t time.Time) string {
	return weekdayNames[t.Weekday()]
}

// ClassName renders "<level> <program codename> <number>", e.g. "XI RPL 2".
// Unresolved parts become empty strings and the result is trimmed, so the
// inner spacing is kept ("X  1" without a program). Only a nil group gets
// UnknownClassLabel.
func ClassName(g *dto.StudyGroupDetail) string {
	if g == nil {
		return UnknownClassLabel
	}
	var level, codename, number string
	if g.Level != nil {
		level = g.Level.Name
	}
	if g.Program != nil {
		codename = g.Program.Codename
	}
	if n := string(g.Number); n != "" {
		number = " " + n
	}
	return strings.TrimSpace(level + " " + codename + number)
}

// NewTeachingEntry flattens a joined schedule into the row the pages render
func NewTeachingEntry(s dto.ScheduleDetail) dto.TeachingEntry {
	entry := dto.TeachingEntry{
		ScheduleID:   s.ID,
		StudyGroupID: s.StudyGroupID,
		ClassName:    ClassName(s.StudyGroup),
		Location:     DefaultLocation,
		Time: dto.TeachingTime{
			StartTime: DefaultClock,
			EndTime:   DefaultClock,
			Day:       UnknownDayLabel,
		},
	}
	if s.StudyLocation != nil && s.StudyLocation.Name != "" {
		entry.Location = s.StudyLocation.Name
	}
	if st := s.StudyTime; st != nil {
		entry.Time.Period = int(st.Number)
		if st.StartTime != "" {
			entry.Time.StartTime = st.StartTime
		}
		if st.EndTime != "" {
			entry.Time.EndTime = st.EndTime
		}
		if day := st.DayName(); day != "" {
			entry.Time.Day = day
		}
	}
	return entry
}

// NewTeachingEntries maps NewTeachingEntry over schedules
func NewTeachingEntries(schedules []dto.ScheduleDetail) []dto.TeachingEntry {
	out := make([]dto.TeachingEntry, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, NewTeachingEntry(s))
	}
	return out
}

// GroupByWeekday buckets entries by day name in the order of days.
// Every requested day gets a bucket, possibly empty; entries on other days
// are dropped. Buckets are stably sorted by period.
func GroupByWeekday(entries []dto.TeachingEntry, days []string) []dto.DayBucket {
	buckets := make([]dto.DayBucket, len(days))
	pos := make(map[string]int, len(days))
	for i, d := range days {
		buckets[i] = dto.DayBucket{Day: d, Entries: []dto.TeachingEntry{}}
		if _, dup := pos[d]; !dup {
			pos[d] = i
		}
	}
	for _, e := range entries {
		if i, ok := pos[e.Time.Day]; ok {
			buckets[i].Entries = append(buckets[i].Entries, e)
		}
	}
	for i := range buckets {
		sortByPeriod(buckets[i].Entries)
	}
	return buckets
}

// ActiveDays number of non-empty buckets
func ActiveDays(buckets []dto.DayBucket) int {
	n := 0
	for _, b := range buckets {
		if len(b.Entries) > 0 {
			n++
		}
	}
	return n
}

func sortByPeriod(entries []dto.TeachingEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time.Period < entries[j].Time.Period
	})
}
