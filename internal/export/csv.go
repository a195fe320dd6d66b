// Package export renders attendance history as CSV for download.
package export

import (
	"strings"
	"time"

	"github.com/arnold/lifehub-api/internal/models"
)

var attendanceHeaders = []string{"Date", "Went to College", "Absence Type", "Note", "Completed Tasks"}

// AttendanceCSV renders the given calendar days in download order. Every
// cell is double-quoted, booleans become Yes/No and missing optionals
// become "-". The format is consumed by spreadsheet imports, so it stays
// byte-stable.
func AttendanceCSV(days []models.CalendarDay) string {
	var b strings.Builder
	b.WriteString(strings.Join(attendanceHeaders, ","))

	for _, day := range days {
		cells := []string{
			day.Date,
			yesNo(day.WentToCollege),
			orDash(day.AbsenceType),
			orDash(day.AbsenceNote),
			yesNo(day.CompletedPlannedTasks),
		}
		b.WriteByte('\n')
		for i, cell := range cells {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(cell)
			b.WriteByte('"')
		}
	}
	return b.String()
}

// AttendanceFilename embeds the export date, e.g. attendance-2025-03-01.csv.
func AttendanceFilename(now time.Time) string {
	return "attendance-" + now.Format("2006-01-02") + ".csv"
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func orDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}
