// Package export renders fetched school data into shareable documents.
package export

import (
	"fmt"
	"strconv"

	"github.com/noah-isme/sma-mobile-sdk/internal/client"
)

// Dataset is the tabular form both renderers consume.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// GradeReport builds a report-card dataset from fetched grades.
func GradeReport(studentName, term string, grades []client.Grade) Dataset {
	rows := make([]map[string]string, 0, len(grades))
	for _, grade := range grades {
		max := grade.MaxScore
		if max == 0 {
			max = 100
		}
		rows = append(rows, map[string]string{
			"Subject": grade.Subject,
			"Term":    grade.Term,
			"Type":    grade.Type,
			"Score":   fmt.Sprintf("%s / %s", trimFloat(grade.Score), trimFloat(max)),
		})
	}
	return Dataset{
		Headers: []string{"Subject", "Term", "Type", "Score"},
		Rows:    rows,
	}
}

// TimetableSheet builds a weekly timetable dataset.
func TimetableSheet(entries []client.TimetableEntry) Dataset {
	rows := make([]map[string]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, map[string]string{
			"Day":     entry.Day,
			"Time":    entry.StartTime + "-" + entry.EndTime,
			"Subject": entry.Subject,
			"Teacher": entry.Teacher,
			"Room":    entry.Room,
		})
	}
	return Dataset{
		Headers: []string{"Day", "Time", "Subject", "Teacher", "Room"},
		Rows:    rows,
	}
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
