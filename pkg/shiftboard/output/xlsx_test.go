package output

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/metrics"
	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
	"github.com/xuri/excelize/v2"
)

func testSectors() []models.SectorSeries {
	return []models.SectorSeries{
		{ID: "costura", Name: "COSTURA", Series: models.Series{
			{DateStr: "05/03/2025", Label: "05/03", Pieces: 1200, RunningHours: 6, StoppedHours: 2,
				UtilizationPercent: f(75), TcMedioMinPerPiece: f(0.3)},
			{DateStr: "04/03/2025", Label: "04/03", Pieces: 900, RunningHours: 5, StoppedHours: 3},
		}},
		{ID: "corte", Name: "CORTE/1", Series: models.Series{}},
	}
}

func TestSaveReport(t *testing.T) {
	sectors := testSectors()
	summary := metrics.ComputeSummary(sectors, time.Date(2025, time.March, 5, 9, 0, 0, 0, time.Local))

	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := SaveReport(path, summary, sectors); err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open report: %v", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	expected := []string{SummarySheet, "COSTURA", "CORTE_1"}
	if strings.Join(sheets, ",") != strings.Join(expected, ",") {
		t.Fatalf("Sheets = %v, expected %v", sheets, expected)
	}

	rows, err := wb.GetRows(SummarySheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("Expected header, 2 sectors and a total row, got %d rows", len(rows))
	}
	if rows[1][0] != "COSTURA" || rows[1][6] != "75,0%" || rows[1][9] != "18s" {
		t.Errorf("Unexpected sector row: %v", rows[1])
	}
	if rows[3][0] != "TOTAL" || rows[3][2] != "1200" {
		t.Errorf("Unexpected total row: %v", rows[3])
	}

	seriesRows, _ := wb.GetRows("COSTURA")
	if len(seriesRows) != 3 || seriesRows[1][7] != "00:00:18" || seriesRows[2][7] != Placeholder {
		t.Errorf("Unexpected series rows: %v", seriesRows)
	}
}

func TestToJSON(t *testing.T) {
	d := models.Date{Year: 2025, Month: time.March, Day: 5}
	rec := models.DayRecord{Date: &d, DateStr: "05/03/2025", Label: "05/03", Pieces: 10}

	compact, err := ToJSON(rec, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(compact), `"date":"2025-03-05"`) || !strings.Contains(string(compact), `"utilizationPercent":null`) {
		t.Errorf("Unexpected JSON: %s", compact)
	}

	pretty, err := ToJSON(rec, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  \"dateStr\"") {
		t.Errorf("Expected indented JSON, got %s", pretty)
	}

	var back models.DayRecord
	if err := json.Unmarshal(compact, &back); err != nil || back.Date == nil || !back.Date.Equal(d) {
		t.Errorf("Expected date to decode back, got %v (%v)", back.Date, err)
	}
}
