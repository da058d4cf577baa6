// Package telemetry records refresh metrics.
package telemetry

import (
	"context"
	"time"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
)

// Outcomes of a sector fetch.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Recorder receives refresh metrics.
type Recorder interface {
	RecordFetch(ctx context.Context, sectorID string, elapsed time.Duration, err error)
	RecordSummary(ctx context.Context, summary models.Summary)
}

// Noop is a Recorder that does nothing. Used when telemetry is disabled.
type Noop struct{}

func (Noop) RecordFetch(context.Context, string, time.Duration, error) {}
func (Noop) RecordSummary(context.Context, models.Summary)             {}

// Shutdown is a no-op.
func (Noop) Shutdown(context.Context) error { return nil }

// Outcome returns the outcome label for err.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
