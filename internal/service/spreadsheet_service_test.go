package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stemsi/school-records/internal/model"
	"github.com/stemsi/school-records/internal/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestSpreadsheetService_ImportStudents(t *testing.T) {
	s := newServices(t).withSchool(t)
	ctx := context.Background()

	buf := workbook(t, [][]any{
		{"id", "name", "dob", "gender", "phone"},
		{"6001", "Ben", "2010-05-05", "m", "555-1"},
		{"", "No Id", "2010-05-05", "F", "555-2"},
		{"5001", "Duplicate", "2010-05-05", "F", "555-3"},
		{"6002", "Cara", "2010-06-06", "F", "555-4"},
		{"6003", "Bad Gender", "2010-06-06", "?", "555-5"},
		{"S-01", "Letter Id", "2010-06-06", "F", "555-6"},
		{"6004 x", "Spaced Id", "2010-06-06", "M", "555-7"},
	})

	res, err := s.sheets.ImportStudents(ctx, buf, "10")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Len(t, res.Notices, 5)
	assert.Contains(t, res.Notices[3], "row 7")
	assert.Contains(t, res.Notices[4], "row 8")

	for _, id := range []string{"S-01", "6004 x"} {
		_, err := s.students.GetByID(ctx, id)
		assert.Equal(t, response.ErrNotFound, response.CodeOf(err), id)
	}

	ben, err := s.students.GetByID(ctx, "6001")
	require.NoError(t, err)
	assert.Equal(t, model.GenderMale, ben.Gender)
	assert.Equal(t, "10", ben.CurrentGrade())
}

func TestSpreadsheetService_ImportRejectsGarbage(t *testing.T) {
	s := newServices(t)
	_, err := s.sheets.ImportStudents(context.Background(), bytes.NewBufferString("not a workbook"), "")
	assert.Error(t, err)
}

func TestSpreadsheetService_ExportWorkbook(t *testing.T) {
	s := newServices(t).withSchool(t)
	ctx := context.Background()
	require.NoError(t, s.scores.SetScore(ctx, "5001", "101", 92))

	var buf bytes.Buffer
	require.NoError(t, s.sheets.ExportWorkbook(ctx, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetStudents, SheetRoster, SheetScores}, f.GetSheetList())

	summary, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{"Students", "1"}, summary[1])

	students, err := f.GetRows(SheetStudents)
	require.NoError(t, err)
	assert.Equal(t, []string{"5001", "Ann Lee", "10", "2010-01-01", "F", "555-0101"}, students[1])

	roster, err := f.GetRows(SheetRoster)
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "Grade 10", "1", "Ann Lee"}, roster[1])

	scores, err := f.GetRows(SheetScores)
	require.NoError(t, err)
	assert.Equal(t, []string{"5001", "Ann Lee", "Math", "92", "A"}, scores[1])
}
