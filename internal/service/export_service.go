package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"jadwal-guru/config"
	"jadwal-guru/internal/dto"
)

// ── export errors ──

var ErrExportGenerateFail = errors.New("Gagal membuat berkas ekspor")

// ExportService turns the teacher's weekly timetable into downloadable files.
//
// Both exports cover Monday to Sunday; entries whose day did not resolve are
// left out. Results are returned as a buffer plus a suggested filename and
// written to the response by the handler.
type ExportService interface {
	// ExportWeekly spreadsheet, one row per lesson
	ExportWeekly(ctx context.Context, profile *dto.UserProfile) (*bytes.Buffer, string, error)
	// ExportCalendar iCalendar feed with one weekly recurring event per lesson
	ExportCalendar(ctx context.Context, profile *dto.UserProfile) (*bytes.Buffer, string, error)
}

type exportService struct {
	timetable TimetableService
	loc       *time.Location
	now       func() time.Time
	logger    *zap.Logger
}

// NewExportService creates an ExportService instance
func NewExportService(cfg *config.Config, timetable TimetableService, logger *zap.Logger) ExportService {
	return &exportService{
		timetable: timetable,
		loc:       cfg.Schedule.Location(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *exportService) week(profile *dto.UserProfile) (*dto.WeeklyScheduleResponse, []dto.DayBucket, error) {
	weekly, err := s.timetable.Weekly(profile, AllDaysFilter)
	if err != nil {
		return nil, nil, err
	}
	return weekly, GroupByWeekday(weekly.Entries, AllDays()), nil
}

// ═══════════════════════════════════════════════════════════
// ExportWeekly builds the .xlsx sheet
// ═══════════════════════════════════════════════════════════
//
// Layout:
//   - row 1: title, merged across the table
//   - row 2: Hari | Jam Ke | Waktu | Kelas | Lokasi
//   - row 3+: lessons, Monday first, ordered by period

func (s *exportService) ExportWeekly(ctx context.Context, profile *dto.UserProfile) (*bytes.Buffer, string, error) {
	weekly, buckets, err := s.week(profile)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Jadwal Mengajar"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("failed to create sheet", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 8)
	f.SetColWidth(sheetName, "C", "C", 16)
	f.SetColWidth(sheetName, "D", "D", 22)
	f.SetColWidth(sheetName, "E", "E", 20)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Jadwal Mengajar %s", weekly.TeacherName))
	f.MergeCell(sheetName, "A1", "E1")
	f.SetCellStyle(sheetName, "A1", "E1", headerStyle)

	row := 2
	for i, title := range []string{"Hari", "Jam Ke", "Waktu", "Kelas", "Lokasi"} {
		f.SetCellValue(sheetName, cell(colName(i), row), title)
	}
	f.SetCellStyle(sheetName, cell("A", row), cell("E", row), headerStyle)

	row = 3
	for _, b := range buckets {
		for _, e := range b.Entries {
			f.SetCellValue(sheetName, cell("A", row), b.Day)
			f.SetCellValue(sheetName, cell("B", row), e.Time.Period)
			f.SetCellValue(sheetName, cell("C", row), fmt.Sprintf("%s-%s", clock(e.Time.StartTime), clock(e.Time.EndTime)))
			f.SetCellValue(sheetName, cell("D", row), e.ClassName)
			f.SetCellValue(sheetName, cell("E", row), e.Location)
			row++
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("failed to write xlsx", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, fmt.Sprintf("jadwal_%s.xlsx", fileSlug(profile.Username)), nil
}

// ═══════════════════════════════════════════════════════════
// ExportCalendar builds the .ics calendar
// ═══════════════════════════════════════════════════════════
//
// Each lesson is anchored on its weekday in the current Monday-based week
// and repeats weekly. Lessons whose times do not parse are skipped.

func (s *exportService) ExportCalendar(ctx context.Context, profile *dto.UserProfile) (*bytes.Buffer, string, error) {
	weekly, buckets, err := s.week(profile)
	if err != nil {
		return nil, "", err
	}

	now := s.now().In(s.loc)
	monday := startOfWeek(now)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//jadwal-guru//Jadwal Mengajar//ID")
	cal.SetXWRCalName(fmt.Sprintf("Jadwal Mengajar %s", weekly.TeacherName))
	cal.SetXWRTimezone(s.loc.String())

	skipped := 0
	for offset, b := range buckets {
		day := monday.AddDate(0, 0, offset)
		for _, e := range b.Entries {
			start, okStart := atClock(day, e.Time.StartTime)
			end, okEnd := atClock(day, e.Time.EndTime)
			if !okStart || !okEnd || !end.After(start) {
				skipped++
				continue
			}

			event := cal.AddEvent(fmt.Sprintf("schedule-%d@jadwal-guru", e.ScheduleID))
			event.SetDtStampTime(now)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(e.ClassName)
			event.SetLocation(e.Location)
			event.SetDescription(fmt.Sprintf("Jam ke-%d", e.Time.Period))
			event.AddRrule("FREQ=WEEKLY")
		}
	}
	if skipped > 0 {
		s.logger.Debug("lessons without usable times left out of calendar", zap.Int("skipped", skipped))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, fmt.Sprintf("jadwal_%s.ics", fileSlug(profile.Username)), nil
}

// ── helpers ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// clock trims "07:00:00" to "07:00"
func clock(s string) string {
	if len(s) > 5 && s[2] == ':' {
		return s[:5]
	}
	return s
}

func atClock(day time.Time, hhmm string) (time.Time, bool) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.ParseInLocation(layout, hhmm, day.Location())
		if err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), t.Second(), 0, day.Location()), true
		}
	}
	return time.Time{}, false
}

func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

func fileSlug(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "guru"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}
