package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-mobile-sdk/internal/client"
)

func sampleGrades() []client.Grade {
	return []client.Grade{
		{ID: 1, Subject: "Mathematics", Term: "1", Type: "quiz", Score: 86, MaxScore: 100},
		{ID: 2, Subject: "Physics", Term: "1", Type: "exam", Score: 74.5},
	}
}

func TestGradeReportDataset(t *testing.T) {
	data := GradeReport("Minh Nguyen", "1", sampleGrades())

	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"Subject", "Term", "Type", "Score"}, data.Headers)
	assert.Equal(t, "86 / 100", data.Rows[0]["Score"])
	// missing max score defaults to the 100 point scale
	assert.Equal(t, "74.5 / 100", data.Rows[1]["Score"])
}

func TestTimetableSheetDataset(t *testing.T) {
	data := TimetableSheet([]client.TimetableEntry{
		{ID: 1, Day: "Monday", StartTime: "08:00", EndTime: "08:45", Subject: "Mathematics", Teacher: "Ms. Carter", Room: "B12"},
	})

	require.Len(t, data.Rows, 1)
	assert.Equal(t, "08:00-08:45", data.Rows[0]["Time"])
	assert.Equal(t, "B12", data.Rows[0]["Room"])
}

func TestCSVRender(t *testing.T) {
	out, err := NewCSVExporter().Render(GradeReport("Minh Nguyen", "1", sampleGrades()))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Subject,Term,Type,Score", lines[0])
	assert.Contains(t, lines[1], "Mathematics")
	assert.Contains(t, lines[2], "74.5 / 100")
}

func TestCSVRenderRejectsEmptyHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFRender(t *testing.T) {
	out, err := NewPDFExporter().Render(GradeReport("Minh Nguyen", "1", sampleGrades()), "Report Card")
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestPDFRenderRejectsEmptyHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "")
	assert.Error(t, err)
}
