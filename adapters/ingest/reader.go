package ingest

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"drawcast/domain/draw"

	"github.com/xuri/excelize/v2"
)

// HistoryReader reads draw history files in Excel or CSV format. Each data
// row is (date, numbers, stars) with the date as YYYY-MM-DD and the two
// value groups comma-separated, matching the stored column encoding.
type HistoryReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// ImportResult carries the decoded records plus skip accounting.
type ImportResult struct {
	Records []draw.DrawRecord
	Skipped int
}

// NewHistoryReader creates a reader that handles both Excel and CSV files
func NewHistoryReader(filePath string) *HistoryReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &HistoryReader{filePath: filePath, fileType: fileType}
}

// ReadHistory reads the file into draw records. A row that fails to decode
// is skipped and counted; only an unreadable file is an error.
func (r *HistoryReader) ReadHistory() (*ImportResult, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, err
	}

	return r.processRows(rows), nil
}

func (r *HistoryReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	// Always use Sheet1
	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to read Sheet1: %w", err)
	}
	return rows, nil
}

func (r *HistoryReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

// processRows converts raw string rows into draw records, skipping
// anything that does not decode. A header row is recognized by its
// unparsable date and skipped silently.
func (r *HistoryReader) processRows(rows [][]string) *ImportResult {
	result := &ImportResult{}

	for i, row := range rows {
		rec, err := parseRow(row)
		if err != nil {
			// First row is usually a header; don't count it as bad data.
			if i == 0 {
				continue
			}
			result.Skipped++
			log.Printf("[HistoryReader] skipping row %d: %v", i+1, err)
			continue
		}
		result.Records = append(result.Records, rec)
	}

	log.Printf("[HistoryReader] %s file processed (%d records, %d skipped)",
		strings.ToUpper(r.fileType), len(result.Records), result.Skipped)
	return result
}

func parseRow(row []string) (draw.DrawRecord, error) {
	if len(row) < 3 {
		return draw.DrawRecord{}, fmt.Errorf("expected 3 columns, got %d", len(row))
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(row[0]))
	if err != nil {
		return draw.DrawRecord{}, fmt.Errorf("unparsable date %q", row[0])
	}

	set, err := draw.ParseDrawSet(strings.TrimSpace(row[1]) + ";" + strings.TrimSpace(row[2]))
	if err != nil {
		return draw.DrawRecord{}, err
	}

	return draw.DrawRecord{Date: date, Actual: &set}, nil
}
