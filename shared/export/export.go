// Package export renders list screens as spreadsheets.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	headerRow   = 1
	firstColumn = 1
	columnWidth = 22
	stampLayout = "20060102-150405"
)

// Column describes one spreadsheet column of T.
type Column[T any] struct {
	Header string
	Value  func(item T) any
}

// XLSX writes items into a single-sheet workbook with a bold header row.
func XLSX[T any](sheet string, columns []Column[T], items []T) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	defaultSheet := file.GetSheetName(0)
	if err := file.SetSheetName(defaultSheet, sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	style, err := file.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for idx, column := range columns {
		cell, _ := excelize.CoordinatesToCellName(firstColumn+idx, headerRow)

		if err := file.SetCellValue(sheet, cell, column.Header); err != nil {
			return nil, fmt.Errorf("failed to write header %s: %w", column.Header, err)
		}

		if err := file.SetCellStyle(sheet, cell, cell, style); err != nil {
			return nil, fmt.Errorf("failed to style header %s: %w", column.Header, err)
		}
	}

	if len(columns) > 0 {
		lastColumn, _ := excelize.ColumnNumberToName(len(columns))
		if err := file.SetColWidth(sheet, "A", lastColumn, columnWidth); err != nil {
			return nil, fmt.Errorf("failed to size columns: %w", err)
		}
	}

	for row, item := range items {
		for idx, column := range columns {
			cell, _ := excelize.CoordinatesToCellName(firstColumn+idx, headerRow+1+row)

			if err := file.SetCellValue(sheet, cell, column.Value(item)); err != nil {
				return nil, fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

// FileName builds the download name for a screen export taken at the given time.
func FileName(screen string, at time.Time) string {
	return fmt.Sprintf("%s-%s.xlsx", screen, at.Format(stampLayout))
}
