package batch

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// table is a tabular file in memory: a header row plus data rows.
type table struct {
	header []string
	rows   [][]string
}

func readTable(path string) (*table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q, want .csv or .xlsx", ext)
	}
}

func readCSV(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("input %s has no header row", path)
	}
	return &table{header: records[0], rows: records[1:]}, nil
}

func readXLSX(path string) (*table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("input %s has no header row", path)
	}
	return &table{header: rows[0], rows: rows[1:]}, nil
}

func (t *table) write(path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return t.writeCSV(path)
	case ".xlsx":
		return t.writeXLSX(path)
	default:
		return fmt.Errorf("unsupported file type %q, want .csv or .xlsx", ext)
	}
}

func (t *table) writeCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.WriteAll(t.rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	w.Flush()
	return w.Error()
}

func (t *table) writeXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range append([][]string{t.header}, t.rows...) {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save output: %w", err)
	}
	return nil
}

// defaultOutput derives the output path from the input path the way the
// converter always has: "report.csv" becomes "report_converted.csv".
func defaultOutput(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_converted" + ext
}
