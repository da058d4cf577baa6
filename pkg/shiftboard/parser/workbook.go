package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads a display table from a worksheet.
// When area is nil the sheet's print area is used if one is defined, otherwise
// the bounding box of non-empty cells. The first non-empty row of the area is the
// header row; data rows without any value are skipped. Data cells are typed from
// their raw value and number format, see typedCell.
func ReadTable(f *excelize.File, sheetName string, area *models.Area) (models.RawTable, error) {
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return models.RawTable{}, fmt.Errorf("workbook has no sheets")
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.RawTable{}, err
	}

	if area == nil {
		if areas := PrintAreas(f)[sheetName]; len(areas) > 0 {
			area = &areas[0]
		} else if bounds, ok := findDataBounds(rows); ok {
			area = &bounds
		} else {
			return models.RawTable{}, nil
		}
	}

	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.RawTable{}, err
	}

	var table models.RawTable
	headerRead := false
	for r := area.R1; r <= area.R2 && r <= len(rows); r++ {
		texts := make([]string, 0, area.C2-area.C1+1)
		hasData := false
		for c := area.C1; c <= area.C2; c++ {
			value := textAt(rows, r, c)
			if strings.TrimSpace(value) != "" {
				hasData = true
			}
			texts = append(texts, value)
		}
		if !hasData {
			continue
		}

		if !headerRead {
			table.Headers = texts
			headerRead = true
			continue
		}

		cells := make([]models.Cell, len(texts))
		for i, text := range texts {
			c := area.C1 + i
			cells[i] = typedCell(f, sheetName, r, c, text, textAt(raw, r, c))
		}
		table.Rows = append(table.Rows, cells)
	}

	return table, nil
}

// textAt returns the 1-based cell of rows, or "" past the end.
func textAt(rows [][]string, r, c int) string {
	if r-1 >= len(rows) || c-1 >= len(rows[r-1]) {
		return ""
	}
	return rows[r-1][c-1]
}

// typedCell converts one worksheet cell for the normalizers. Numbers are
// returned as float64, date cells as "dd/mm/yyyy" and time cells as
// "HH:MM:SS". Text keeps its formatted value; empty cells become absent.
func typedCell(f *excelize.File, sheet string, row, col int, text, raw string) models.Cell {
	if text == "" && raw == "" {
		return nil
	}
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return text
	}
	if t, err := f.GetCellType(sheet, axis); err == nil {
		switch t {
		case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
			excelize.CellTypeBool, excelize.CellTypeError:
			return text
		}
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return text
	}

	switch numFmtKind(f, sheet, axis) {
	case kindDate:
		t, err := excelize.ExcelDateToTime(n, false)
		if err != nil {
			return text
		}
		return t.Format("02/01/2006")
	case kindTime:
		return clockText(n)
	}
	return n
}

type formatKind int

const (
	kindNumber formatKind = iota
	kindDate
	kindTime
)

var (
	quotedRe  = regexp.MustCompile(`"[^"]*"|\\.`)
	elapsedRe = regexp.MustCompile(`\[(h+|m+|s+)\]`)
	bracketRe = regexp.MustCompile(`\[[^\]]*\]`)
)

// numFmtKind classifies the number format applied to a cell.
func numFmtKind(f *excelize.File, sheet, axis string) formatKind {
	idx, err := f.GetCellStyle(sheet, axis)
	if err != nil || idx == 0 {
		return kindNumber
	}
	style, err := f.GetStyle(idx)
	if err != nil || style == nil {
		return kindNumber
	}
	if style.CustomNumFmt != nil {
		return customFmtKind(*style.CustomNumFmt)
	}
	switch {
	case style.NumFmt >= 14 && style.NumFmt <= 17, style.NumFmt == 22:
		return kindDate
	case style.NumFmt >= 18 && style.NumFmt <= 21, style.NumFmt >= 45 && style.NumFmt <= 47:
		return kindTime
	}
	return kindNumber
}

// customFmtKind classifies a custom format code such as "dd/mm/yyyy" or "[h]:mm:ss".
func customFmtKind(code string) formatKind {
	code = strings.ToLower(quotedRe.ReplaceAllString(code, ""))
	elapsed := elapsedRe.MatchString(code)
	code = bracketRe.ReplaceAllString(code, "")
	switch {
	case strings.ContainsAny(code, "dy"):
		return kindDate
	case elapsed, strings.ContainsAny(code, "hs"):
		return kindTime
	}
	return kindNumber
}

// clockText renders a fraction of a day as an elapsed "HH:MM:SS".
func clockText(days float64) string {
	secs := int64(math.Round(math.Max(0, days) * 86400))
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}

// findDataBounds finds the bounding box of non-empty cells as a 1-based area.
func findDataBounds(rows [][]string) (models.Area, bool) {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	if minRow < 0 {
		return models.Area{}, false
	}
	return models.Area{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}
