package shiftboard

import (
	"errors"
	"testing"
	"time"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
)

func TestBoardApply(t *testing.T) {
	sectors := []models.Sector{{ID: "costura", Name: "COSTURA"}, {ID: "corte", Name: "CORTE"}}
	b := NewBoard("Produção", sectors)

	if b.Loaded() {
		t.Error("Expected board to start unloaded")
	}

	first := time.Date(2025, time.March, 5, 8, 0, 0, 0, time.Local)
	series := models.Series{{DateStr: "05/03/2025", Pieces: 100, RunningHours: 2, StoppedHours: 1}}
	b.Apply(Result{ID: "r1", FinishedAt: first, Outcomes: []Outcome{
		{Sector: sectors[0], Series: series, RowCount: 1},
		{Sector: sectors[1], Err: NewSectorError("corte", StageFetch, errors.New("Erro HTTP: 500"))},
	}})

	st, ok := b.Sector("costura")
	if !ok || st.HasError || st.RowCount != 1 || len(st.Series) != 1 {
		t.Errorf("Unexpected costura state: %+v", st)
	}
	st, _ = b.Sector("corte")
	if !st.HasError || st.ErrorMsg != "Erro HTTP: 500" || len(st.Series) != 0 {
		t.Errorf("Unexpected corte state: %+v", st)
	}

	// A failed refresh keeps the previous series.
	second := first.Add(5 * time.Minute)
	b.Apply(Result{ID: "r2", FinishedAt: second, Outcomes: []Outcome{
		{Sector: sectors[0], Err: NewSectorError("costura", StageParse, ErrNoData)},
	}})

	st, _ = b.Sector("costura")
	if !st.HasError || st.ErrorMsg != ErrNoData.Error() || len(st.Series) != 1 || st.RowCount != 1 {
		t.Errorf("Expected error with previous series kept, got %+v", st)
	}
	if st.UpdatedAt == nil || !st.UpdatedAt.Equal(second) {
		t.Errorf("Expected UpdatedAt %v, got %v", second, st.UpdatedAt)
	}

	d := b.Dashboard(first)
	if d.Title != "Produção" || d.RefreshID != "r2" || !b.Loaded() {
		t.Errorf("Unexpected dashboard header: %+v", d)
	}
	if len(d.Summary.PerSector) != 2 || d.Summary.Totals.Pieces != 100 {
		t.Errorf("Unexpected summary: %+v", d.Summary)
	}
	if d.Summary.PerSector[1].HasData {
		t.Errorf("Expected corte without data in summary")
	}

	if _, ok := b.Sector("nope"); ok {
		t.Error("Expected unknown sector lookup to fail")
	}
}

func TestSeriesFromResult(t *testing.T) {
	res := Result{Outcomes: []Outcome{
		{Sector: models.Sector{ID: "a", Name: "A"}},
		{Sector: models.Sector{ID: "b"}, Series: models.Series{{Pieces: 1}}},
	}}

	got := SeriesFromResult(res)
	if len(got) != 2 || got[0].Series == nil || len(got[0].Series) != 0 || len(got[1].Series) != 1 {
		t.Errorf("Unexpected series: %+v", got)
	}
}
