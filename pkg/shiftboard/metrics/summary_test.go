package metrics

import (
	"reflect"
	"testing"
	"time"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
)

func checkRate(t *testing.T, name string, got *float64, want *float64) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %v, expected nil", name, *got)
	case want != nil && got == nil:
		t.Errorf("%s = nil, expected %v", name, *want)
	case want != nil && *got != *want:
		t.Errorf("%s = %v, expected %v", name, *got, *want)
	}
}

func TestComputeSummaryZeroWeightExcluded(t *testing.T) {
	now := time.Date(2025, time.March, 5, 10, 0, 0, 0, time.Local)
	sectors := []models.SectorSeries{
		{ID: "a", Name: "A", Series: models.Series{
			{DateStr: "05/03/2025", RunningHours: 8, StoppedHours: 2, UtilizationPercent: f(80)},
		}},
		{ID: "b", Name: "B", Series: models.Series{
			{DateStr: "05/03/2025", UtilizationPercent: f(50)},
		}},
	}

	summary := ComputeSummary(sectors, now)

	checkRate(t, "utilizationPercent", summary.UtilizationPercent, f(80))
}

func TestComputeSummaryWeightedRates(t *testing.T) {
	now := time.Date(2025, time.March, 5, 10, 0, 0, 0, time.Local)
	sectors := []models.SectorSeries{
		{ID: "costura", Name: "COSTURA", Series: models.Series{
			{Date: day(2025, time.March, 4), DateStr: "04/03/2025", Pieces: 1},
			{Date: day(2025, time.March, 5), DateStr: "05/03/2025", Pieces: 1200, RunningHours: 6, StoppedHours: 2,
				UtilizationPercent: f(75), TargetUtilizationPercent: f(90), MinUtilizationPercent: f(60),
				TcMedioMinPerPiece: f(0.3)},
		}},
		{ID: "corte", Name: "CORTE", Series: models.Series{
			{Date: day(2025, time.March, 4), DateStr: "04/03/2025", Pieces: 300, RunningHours: 3, StoppedHours: 1,
				UtilizationPercent: f(60), TargetUtilizationPercent: f(85), TcMedioMinPerPiece: f(0.62)},
		}},
	}

	summary := ComputeSummary(sectors, now)

	expectedTotals := models.Totals{Pieces: 1500, RunningHours: 9, StoppedHours: 3, TotalHours: 12}
	if summary.Totals != expectedTotals {
		t.Errorf("Totals = %+v, expected %+v", summary.Totals, expectedTotals)
	}
	// (75*8 + 60*4) / 12 = 70
	checkRate(t, "utilizationPercent", summary.UtilizationPercent, f(70))
	// (90*8 + 85*4) / 12 = 88.333...
	checkRate(t, "targetUtilizationPercent", summary.TargetUtilizationPercent, f(88.3))
	// only costura tracks a minimum
	checkRate(t, "minUtilizationPercent", summary.MinUtilizationPercent, f(60))
	// (0.3 + 0.62) / 2 = 0.46
	checkRate(t, "tcMedioAvgMinPerPiece", summary.TcMedioAvgMinPerPiece, f(0.5))

	if summary.DateStr != "05/03/2025" {
		t.Errorf("DateStr = %q, expected first sector's date", summary.DateStr)
	}
	if summary.PerSector[0].TotalHours != 8 || summary.PerSector[1].TotalHours != 4 {
		t.Errorf("Unexpected per-sector hours: %+v", summary.PerSector)
	}
}

func TestComputeSummaryMissingSector(t *testing.T) {
	now := time.Date(2025, time.March, 5, 10, 0, 0, 0, time.Local)
	sectors := []models.SectorSeries{
		{ID: "costura", Name: "COSTURA", Series: nil},
		{ID: "corte", Name: "CORTE", Series: models.Series{
			{DateStr: "05/03/2025", Pieces: 300, RunningHours: 3, StoppedHours: 1, UtilizationPercent: f(60)},
		}},
	}

	summary := ComputeSummary(sectors, now)

	if len(summary.PerSector) != 2 {
		t.Fatalf("Expected 2 sectors, got %d", len(summary.PerSector))
	}
	if summary.PerSector[0].ID != "costura" || summary.PerSector[0].HasData {
		t.Errorf("Expected empty costura snapshot, got %+v", summary.PerSector[0])
	}
	if summary.Totals.Pieces != 300 || summary.Totals.TotalHours != 4 {
		t.Errorf("Totals = %+v, expected only corte", summary.Totals)
	}
	checkRate(t, "utilizationPercent", summary.UtilizationPercent, f(60))
	if summary.DateStr != "05/03/2025" {
		t.Errorf("DateStr = %q, expected 05/03/2025", summary.DateStr)
	}
}

func TestComputeSummaryNoData(t *testing.T) {
	summary := ComputeSummary([]models.SectorSeries{{ID: "a"}, {ID: "b"}}, time.Now())

	checkRate(t, "utilizationPercent", summary.UtilizationPercent, nil)
	checkRate(t, "targetUtilizationPercent", summary.TargetUtilizationPercent, nil)
	checkRate(t, "minUtilizationPercent", summary.MinUtilizationPercent, nil)
	checkRate(t, "tcMedioAvgMinPerPiece", summary.TcMedioAvgMinPerPiece, nil)
	if summary.Totals != (models.Totals{}) || summary.DateStr != "" {
		t.Errorf("Expected zero totals and empty date, got %+v", summary)
	}
}

func TestComputeSummaryIdempotent(t *testing.T) {
	now := time.Date(2025, time.March, 5, 10, 0, 0, 0, time.Local)
	sectors := []models.SectorSeries{
		{ID: "a", Series: models.Series{{DateStr: "05/03/2025", RunningHours: 1, UtilizationPercent: f(33.33)}}},
	}

	if !reflect.DeepEqual(ComputeSummary(sectors, now), ComputeSummary(sectors, now)) {
		t.Errorf("Expected identical summaries for identical input")
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{88.3333, 88.3},
		{0.46, 0.5},
		{70, 70},
		{12.25, 12.3},
	}

	for _, tt := range tests {
		if got := round1(tt.input); got == nil || *got != tt.expected {
			t.Errorf("round1(%v) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
