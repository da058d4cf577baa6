package metrics

import (
	"testing"
	"time"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
)

func f(v float64) *float64 { return &v }

func day(y int, m time.Month, d int) *models.Date {
	return &models.Date{Year: y, Month: m, Day: d}
}

func TestPickTodayOrLatest(t *testing.T) {
	now := time.Date(2025, time.March, 5, 15, 42, 0, 0, time.Local)

	series := models.Series{
		{Date: day(2025, time.March, 3), DateStr: "03/03/2025"},
		{Date: nil, DateStr: "??"},
		{Date: day(2025, time.March, 5), DateStr: "05/03/2025"},
		{Date: day(2025, time.March, 4), DateStr: "04/03/2025"},
	}

	tests := []struct {
		name     string
		series   models.Series
		expected string
		found    bool
	}{
		{"today's record wherever it is", series, "05/03/2025", true},
		{"first record without a match", series[:2], "03/03/2025", true},
		{"undated first record is still the fallback", series[1:2], "??", true},
		{"empty series", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := PickTodayOrLatest(tt.series, now)
			if ok != tt.found || rec.DateStr != tt.expected {
				t.Errorf("PickTodayOrLatest = (%q, %v), expected (%q, %v)", rec.DateStr, ok, tt.expected, tt.found)
			}
		})
	}
}

func TestPickTodayOrLatestIgnoresTimeOfDay(t *testing.T) {
	series := models.Series{
		{Date: day(2025, time.March, 4), DateStr: "04/03/2025"},
		{Date: day(2025, time.March, 5), DateStr: "05/03/2025"},
	}

	for _, hour := range []int{0, 12, 23} {
		now := time.Date(2025, time.March, 5, hour, 59, 59, 0, time.Local)
		rec, _ := PickTodayOrLatest(series, now)
		if rec.DateStr != "05/03/2025" {
			t.Errorf("at %02d:59 got %q, expected 05/03/2025", hour, rec.DateStr)
		}
	}
}

func TestSectorSnapshotWithoutData(t *testing.T) {
	snap := SectorSnapshot(models.SectorSeries{ID: "corte", Name: "CORTE"}, time.Now())

	if snap.ID != "corte" || snap.Name != "CORTE" {
		t.Errorf("Expected identity to be kept, got %q/%q", snap.ID, snap.Name)
	}
	if snap.HasData || snap.Pieces != 0 || snap.TotalHours != 0 || snap.DateStr != "" {
		t.Errorf("Expected zero snapshot, got %+v", snap)
	}
	if snap.UtilizationPercent != nil || snap.TcMedioMinPerPiece != nil {
		t.Errorf("Expected nil rates, got %+v", snap)
	}
}
