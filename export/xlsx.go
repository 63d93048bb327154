package export

import (
	"fmt"
	"io"
	"unicode/utf8"

	excelize "github.com/xuri/excelize/v2"
)

const (
	sheetName = "Sheet1"

	minColWidth = 8
	maxColWidth = 40
)

// WriteXLSX writes the table as a single-sheet workbook: a bold header row
// followed by bordered data rows, with columns sized to their content.
func WriteXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sm := NewStyleManager(f)

	if err := writeXLSXRow(f, sm.Header, 1, t.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("row %d: has %d columns, expected %d", i+1, len(row), len(t.Header))
		}
		if err := writeXLSXRow(f, sm.Body, i+2, row); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	if err := fitColumns(f, t); err != nil {
		return fmt.Errorf("fit columns: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}

// writeXLSXRow writes values into the 1-based row, every cell as a string.
func writeXLSXRow(f *excelize.File, style func() (int, error), row int, values []string) error {
	styleID, err := style()
	if err != nil {
		return fmt.Errorf("style: %w", err)
	}

	for col, val := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheetName, cell, val); err != nil {
			return fmt.Errorf("col %d: %w", col+1, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, styleID); err != nil {
			return fmt.Errorf("style col %d: %w", col+1, err)
		}
	}

	return nil
}

func fitColumns(f *excelize.File, t Table) error {
	for col := range t.Header {
		width := utf8.RuneCountInString(t.Header[col])
		for _, row := range t.Rows {
			width = max(width, utf8.RuneCountInString(row[col]))
		}
		width = min(max(width+2, minColWidth), maxColWidth)

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, name, name, float64(width)); err != nil {
			return err
		}
	}
	return nil
}
