package shiftboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/parser"
)

// Source fetches the display table of one sector.
type Source interface {
	FetchTable(ctx context.Context, sector models.Sector) (models.TableResponse, error)
}

// Outcome is the result of refreshing one sector.
type Outcome struct {
	Sector   models.Sector
	Series   models.Series
	RowCount int
	// Err is a *SectorError when the sector could not be refreshed.
	Err error
}

// Result is the result of one refresh cycle.
type Result struct {
	// ID identifies the refresh cycle.
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	// Outcomes holds one entry per sector, in configuration order.
	Outcomes []Outcome
}

// Refresh fetches and parses every sector concurrently. A failing sector never
// stops the others: its outcome carries the error and an empty series.
func Refresh(ctx context.Context, sectors []models.Sector, cols models.ColumnMap, src Source, opts Options) Result {
	res := Result{
		ID:        uuid.NewString(),
		StartedAt: opts.now(),
		Outcomes:  make([]Outcome, len(sectors)),
	}
	log := opts.logger()
	rec := opts.recorder()

	var g errgroup.Group
	g.SetLimit(opts.concurrency())

	for i, sector := range sectors {
		g.Go(func() error {
			start := time.Now()
			out := refreshSector(ctx, sector, cols, src)
			rec.RecordFetch(ctx, sector.ID, time.Since(start), out.Err)

			if out.Err != nil {
				log.Error(fmt.Sprintf("[%s] %v", res.ID, out.Err))
			} else {
				log.Debug(fmt.Sprintf("[%s] sector %q: %d records", res.ID, sector.ID, out.RowCount))
			}
			res.Outcomes[i] = out
			return nil
		})
	}
	_ = g.Wait()

	res.FinishedAt = opts.now()
	return res
}

func refreshSector(ctx context.Context, sector models.Sector, cols models.ColumnMap, src Source) Outcome {
	out := Outcome{Sector: sector}

	resp, err := src.FetchTable(ctx, sector)
	if err != nil {
		out.Err = NewSectorError(sector.ID, StageFetch, err)
		return out
	}
	if resp.Failed() {
		out.Err = NewSectorError(sector.ID, StageFetch, &ServerError{Message: resp.Error})
		return out
	}

	series := parser.ParseTable(resp.Table(), cols)
	if len(series) == 0 {
		out.Err = NewSectorError(sector.ID, StageParse, ErrNoData)
		return out
	}

	out.Series = series
	out.RowCount = len(series)
	if resp.RowCount != nil {
		out.RowCount = *resp.RowCount
	}
	return out
}
