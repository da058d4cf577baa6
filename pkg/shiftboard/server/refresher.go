package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard"
	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/config"
	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/telemetry"
)

// Refresher re-fetches every sector on a fixed interval and publishes the result.
type Refresher struct {
	Dashboard *config.Dashboard
	Source    shiftboard.Source
	Board     *shiftboard.Board
	Hub       *Hub
	Options   shiftboard.Options
}

// Run refreshes immediately and then on every tick until ctx is done.
func (r *Refresher) Run(ctx context.Context) error {
	r.RefreshOnce(ctx)

	ticker := time.NewTicker(r.Dashboard.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.RefreshOnce(ctx)
		}
	}
}

// RefreshOnce runs one refresh cycle, applies it to the board and broadcasts
// the resulting dashboard.
func (r *Refresher) RefreshOnce(ctx context.Context) {
	res := shiftboard.Refresh(ctx, r.Dashboard.Sectors, r.Dashboard.Columns, r.Source, r.Options)
	if ctx.Err() != nil {
		return
	}
	r.Board.Apply(res)

	d := r.Board.Dashboard(r.now())
	r.recorder().RecordSummary(ctx, d.Summary)

	if r.Hub == nil {
		return
	}
	payload, err := json.Marshal(d)
	if err != nil {
		r.logger().Error(fmt.Sprintf("[%s] encode dashboard: %v", res.ID, err))
		return
	}
	r.Hub.Broadcast(payload)
}

func (r *Refresher) now() time.Time {
	if r.Options.Now != nil {
		return r.Options.Now()
	}
	return time.Now()
}

func (r *Refresher) recorder() telemetry.Recorder {
	if r.Options.Recorder != nil {
		return r.Options.Recorder
	}
	return telemetry.Noop{}
}

func (r *Refresher) logger() shiftboard.Logger {
	if r.Options.Logger != nil {
		return r.Options.Logger
	}
	return shiftboard.NopLogger{}
}
