package output

import (
	"fmt"
	"strings"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
	"github.com/xuri/excelize/v2"
)

// SummarySheet is the name of the fleet summary sheet.
const SummarySheet = "Resumo"

var summaryHeaders = []string{
	"Setor", "Data", "Peças", "Horas Funcionando", "Horas Parado", "Horas Totais",
	"Utilização", "Meta", "Mínimo", "TC Médio",
}

var sheetNameReplacer = strings.NewReplacer(":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_")

var seriesHeaders = []string{
	"Data", "Peças", "Horas Funcionando", "Horas Parado", "Utilização", "Meta", "Mínimo", "TC Médio (min/peça)",
}

// WriteReport builds a workbook with the summary sheet and one sheet per sector series.
func WriteReport(summary models.Summary, sectors []models.SectorSeries) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSummary(f, summary); err != nil {
		f.Close()
		return nil, err
	}

	for _, s := range sectors {
		name := sheetName(s)
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		if err := writeSeries(f, name, s.Series); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
	}

	return f, nil
}

// SaveReport writes the report to path.
func SaveReport(path string, summary models.Summary, sectors []models.SectorSeries) error {
	f, err := WriteReport(summary, sectors)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func writeSummary(f *excelize.File, summary models.Summary) error {
	if err := writeRow(f, SummarySheet, 1, toCells(summaryHeaders)); err != nil {
		return err
	}

	row := 2
	for _, s := range summary.PerSector {
		cells := []any{
			s.Name, s.DateStr, s.Pieces, s.RunningHours, s.StoppedHours, s.TotalHours,
			FormatPercent(s.UtilizationPercent), FormatPercent(s.TargetUtilizationPercent),
			FormatPercent(s.MinUtilizationPercent), FormatMinutesCompact(s.TcMedioMinPerPiece),
		}
		if err := writeRow(f, SummarySheet, row, cells); err != nil {
			return err
		}
		row++
	}

	t := summary.Totals
	total := []any{
		"TOTAL", summary.DateStr, t.Pieces, t.RunningHours, t.StoppedHours, t.TotalHours,
		FormatPercent(summary.UtilizationPercent), FormatPercent(summary.TargetUtilizationPercent),
		FormatPercent(summary.MinUtilizationPercent), FormatMinutesCompact(summary.TcMedioAvgMinPerPiece),
	}
	return writeRow(f, SummarySheet, row, total)
}

func writeSeries(f *excelize.File, sheet string, series models.Series) error {
	if err := writeRow(f, sheet, 1, toCells(seriesHeaders)); err != nil {
		return err
	}
	for i, r := range series {
		cells := []any{
			r.DateStr, r.Pieces, r.RunningHours, r.StoppedHours,
			FormatPercent(r.UtilizationPercent), FormatPercent(r.TargetUtilizationPercent),
			FormatPercent(r.MinUtilizationPercent), FormatMinutesHMS(r.TcMedioMinPerPiece),
		}
		if err := writeRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

// sheetName returns a worksheet name for the sector, within Excel's 31 character limit.
func sheetName(s models.SectorSeries) string {
	name := s.Name
	if name == "" {
		name = s.ID
	}
	r := []rune(sheetNameReplacer.Replace(name))
	if len(r) > 31 {
		r = r[:31]
	}
	return string(r)
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
