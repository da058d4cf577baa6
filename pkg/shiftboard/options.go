// Package shiftboard refreshes production tables for every configured sector
// and keeps the dashboard state they feed.
package shiftboard

import (
	"time"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/telemetry"
)

// DefaultConcurrency is the number of sectors fetched at the same time.
const DefaultConcurrency = 4

// Options configures refresh behavior.
type Options struct {
	// Concurrency bounds parallel sector fetches. Zero or less uses DefaultConcurrency.
	Concurrency int
	// Now returns the reference clock. If nil, time.Now is used.
	Now func() time.Time
	// Logger receives per-sector outcomes. If nil, nothing is logged.
	Logger Logger
	// Recorder receives fetch metrics. If nil, a no-op recorder is used.
	Recorder telemetry.Recorder
}

// DefaultOptions returns default refresh options.
func DefaultOptions() Options {
	return Options{
		Concurrency: DefaultConcurrency,
	}
}

func (o Options) concurrency() int {
	if o.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return o.Concurrency
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) logger() Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return NopLogger{}
}

func (o Options) recorder() telemetry.Recorder {
	if o.Recorder != nil {
		return o.Recorder
	}
	return telemetry.Noop{}
}
