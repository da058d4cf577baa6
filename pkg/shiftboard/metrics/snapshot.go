// Package metrics selects per-sector snapshots and rolls them up into a fleet summary.
package metrics

import (
	"time"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
)

// PickTodayOrLatest returns the record dated on the calendar day of now.
// Without one it returns the first record, since series arrive newest first.
// It reports false only for an empty series.
func PickTodayOrLatest(series models.Series, now time.Time) (models.DayRecord, bool) {
	if len(series) == 0 {
		return models.DayRecord{}, false
	}

	today := models.DateOf(now)
	for _, rec := range series {
		if rec.Date != nil && rec.Date.Equal(today) {
			return rec, true
		}
	}
	return series[0], true
}

// SectorSnapshot selects the current record of a sector. A sector without
// records yields a zero snapshot with nil rates rather than being omitted.
func SectorSnapshot(sector models.SectorSeries, now time.Time) models.SectorSnapshot {
	snap := models.SectorSnapshot{ID: sector.ID, Name: sector.Name}

	rec, ok := PickTodayOrLatest(sector.Series, now)
	if !ok {
		return snap
	}

	snap.HasData = true
	snap.Pieces = rec.Pieces
	snap.RunningHours = rec.RunningHours
	snap.StoppedHours = rec.StoppedHours
	snap.TotalHours = rec.RunningHours + rec.StoppedHours
	snap.UtilizationPercent = rec.UtilizationPercent
	snap.TargetUtilizationPercent = rec.TargetUtilizationPercent
	snap.MinUtilizationPercent = rec.MinUtilizationPercent
	snap.TcMedioMinPerPiece = rec.TcMedioMinPerPiece
	snap.DateStr = rec.DateStr
	return snap
}
