package shiftboard

import (
	"sync"
	"time"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/metrics"
	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
)

// Board keeps the last known state of every configured sector.
// It is safe for concurrent use.
type Board struct {
	mu          sync.RWMutex
	title       string
	states      []models.SectorState
	refreshID   string
	refreshedAt *time.Time
}

// NewBoard returns a Board with an empty state for every sector.
func NewBoard(title string, sectors []models.Sector) *Board {
	states := make([]models.SectorState, len(sectors))
	for i, s := range sectors {
		states[i] = models.SectorState{ID: s.ID, Name: s.Name, Series: models.Series{}}
	}
	return &Board{title: title, states: states}
}

// Apply merges a refresh result. A successful sector replaces its state;
// a failed one keeps its previous series and records the error.
func (b *Board) Apply(res Result) {
	b.mu.Lock()
	defer b.mu.Unlock()

	updatedAt := res.FinishedAt
	for _, out := range res.Outcomes {
		i := b.indexOf(out.Sector.ID)
		if i < 0 {
			continue
		}
		st := &b.states[i]
		st.UpdatedAt = &updatedAt
		if out.Err != nil {
			st.HasError = true
			st.ErrorMsg = DisplayMessage(out.Err)
			continue
		}
		st.Series = out.Series
		st.RowCount = out.RowCount
		st.HasError = false
		st.ErrorMsg = ""
	}

	b.refreshID = res.ID
	b.refreshedAt = &updatedAt
}

// Sector returns a copy of one sector's state.
func (b *Board) Sector(id string) (models.SectorState, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	i := b.indexOf(id)
	if i < 0 {
		return models.SectorState{}, false
	}
	return b.states[i], true
}

// Dashboard returns the sector states and a summary computed for now.
func (b *Board) Dashboard(now time.Time) models.Dashboard {
	b.mu.RLock()
	defer b.mu.RUnlock()

	states := make([]models.SectorState, len(b.states))
	copy(states, b.states)

	return models.Dashboard{
		Title:       b.title,
		RefreshID:   b.refreshID,
		RefreshedAt: b.refreshedAt,
		Sectors:     states,
		Summary:     metrics.ComputeSummary(SeriesOf(states), now),
	}
}

// Loaded reports whether at least one refresh has been applied.
func (b *Board) Loaded() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.refreshedAt != nil
}

func (b *Board) indexOf(id string) int {
	for i := range b.states {
		if b.states[i].ID == id {
			return i
		}
	}
	return -1
}

// SeriesOf returns the aggregation input for states. Sectors without data
// contribute an empty series.
func SeriesOf(states []models.SectorState) []models.SectorSeries {
	out := make([]models.SectorSeries, len(states))
	for i, st := range states {
		series := st.Series
		if series == nil {
			series = models.Series{}
		}
		out[i] = models.SectorSeries{ID: st.ID, Name: st.Name, Series: series}
	}
	return out
}

// SeriesFromResult returns the aggregation input of a single refresh.
func SeriesFromResult(res Result) []models.SectorSeries {
	out := make([]models.SectorSeries, len(res.Outcomes))
	for i, o := range res.Outcomes {
		series := o.Series
		if series == nil {
			series = models.Series{}
		}
		out[i] = models.SectorSeries{ID: o.Sector.ID, Name: o.Sector.Name, Series: series}
	}
	return out
}
