package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadHistoryCSV(t *testing.T) {
	path := writeTempCSV(t, `date,numbers,stars
2024-01-01,"1,2,3,4,5","1,2"
2024-01-08,"6,7,8,9,10","3,4"
`)

	result, err := NewHistoryReader(path).ReadHistory()
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Equal(t, 0, result.Skipped)

	rec := result.Records[0]
	require.NotNil(t, rec.Actual)
	assert.Equal(t, "1,2,3,4,5;1,2", rec.Actual.Encode())
	assert.Equal(t, "2024-01-01", rec.Date.Format("2006-01-02"))
}

func TestReadHistoryCSVSkipsBadRows(t *testing.T) {
	path := writeTempCSV(t, `date,numbers,stars
2024-01-01,"1,2,3,4,5","1,2"
not-a-date,"1,2,3,4,5","1,2"
2024-01-15,"1,2,3,4,99","1,2"
2024-01-22,"1,2,3,4","1,2"
2024-01-29,"6,7,8,9,10","3,4"
`)

	result, err := NewHistoryReader(path).ReadHistory()
	require.NoError(t, err)
	assert.Len(t, result.Records, 2)
	assert.Equal(t, 3, result.Skipped)
}

func TestReadHistoryMissingFile(t *testing.T) {
	_, err := NewHistoryReader(filepath.Join(t.TempDir(), "nope.csv")).ReadHistory()
	require.Error(t, err)
}

func TestReadHistoryExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"date", "numbers", "stars"},
		{"2024-01-01", "1,2,3,4,5", "1,2"},
		{"2024-01-08", "6,7,8,9,10", "3,4"},
	}
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", ref, cell))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	result, err := NewHistoryReader(path).ReadHistory()
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Equal(t, "6,7,8,9,10;3,4", result.Records[1].Actual.Encode())
}
