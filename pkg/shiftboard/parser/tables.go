// Package parser converts spreadsheet display tables into typed day series.
package parser

import (
	"math"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
)

// ParseTable converts a raw table into the series of one sector.
// Columns are resolved once per table. Rows are emitted in input order,
// without sorting, de-duplication or gap filling.
func ParseTable(table models.RawTable, cols models.ColumnMap) models.Series {
	idx := ResolveColumns(table.Headers, cols)

	series := make(models.Series, 0, len(table.Rows))
	for _, row := range table.Rows {
		series = append(series, parseRow(row, idx))
	}
	return series
}

func parseRow(row []models.Cell, idx ColumnIndex) models.DayRecord {
	rawDate := idx.Cell(row, models.ColumnDate)
	dateStr := cellText(rawDate)

	rec := models.DayRecord{
		Date:    ParseDate(rawDate),
		DateStr: dateStr,
		Label:   label(dateStr),
	}

	if p := ParseNumber(idx.Cell(row, models.ColumnPieces)); p != nil && *p > 0 {
		rec.Pieces = *p
	}
	if h := ParseHours(idx.Cell(row, models.ColumnRunning)); h != nil {
		rec.RunningHours = *h
	}
	if idx.Has(models.ColumnWorkingHours) {
		rec.WorkingHours = ParseHours(idx.Cell(row, models.ColumnWorkingHours))
	}
	if rec.WorkingHours != nil {
		wh := *rec.WorkingHours
		rec.RunningHours = math.Min(math.Max(rec.RunningHours, 0), wh)
		rec.StoppedHours = wh - rec.RunningHours
	} else if h := ParseHours(idx.Cell(row, models.ColumnStopped)); h != nil {
		rec.StoppedHours = *h
	}

	rec.UtilizationPercent = percent(idx.Cell(row, models.ColumnUtilization))
	if idx.Has(models.ColumnTargetUtilization) {
		rec.TargetUtilizationPercent = percent(idx.Cell(row, models.ColumnTargetUtilization))
	} else {
		rec.TargetUtilizationPercent = percent(idx.Cell(row, models.ColumnMaximumUtilization))
	}
	rec.MinUtilizationPercent = percent(idx.Cell(row, models.ColumnMinimumUtilization))

	rec.TcMedioMinPerPiece = ParseCycleMinutes(idx.Cell(row, models.ColumnTcMedio))
	if rec.TcMedioMinPerPiece == nil && rec.Pieces > 0 && rec.RunningHours > 0 {
		rec.TcMedioMinPerPiece = finite(rec.RunningHours * 60 / rec.Pieces)
	}

	return rec
}

// percent parses a percent cell and clamps it to [0,100].
func percent(v models.Cell) *float64 {
	p := ParsePercent(v)
	if p == nil {
		return nil
	}
	return ptr(math.Min(100, math.Max(0, *p)))
}

// label returns the first 5 characters of the date text ("dd/mm").
func label(dateStr string) string {
	r := []rune(dateStr)
	if len(r) > 5 {
		r = r[:5]
	}
	return string(r)
}
