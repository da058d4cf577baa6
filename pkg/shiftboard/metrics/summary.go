package metrics

import (
	"math"
	"time"

	"github.com/ukaji3/shiftboard-go/pkg/shiftboard/models"
)

// weighted accumulates a weighted mean; sum and weight stay zero until a
// contribution arrives so that "no data" differs from a measured zero.
type weighted struct {
	sum    float64
	weight float64
}

func (w *weighted) add(value *float64, weight float64) {
	if value == nil || weight <= 0 {
		return
	}
	w.sum += *value * weight
	w.weight += weight
}

func (w weighted) mean() *float64 {
	if w.weight <= 0 {
		return nil
	}
	return round1(w.sum / w.weight)
}

// ComputeSummary rolls every sector's snapshot into a fleet summary.
// Totals are plain sums. Utilization, target and minimum rates are weighted by
// each sector's total hours, and the cycle time is an unweighted mean.
// Every sector appears in PerSector, with or without data.
func ComputeSummary(sectors []models.SectorSeries, now time.Time) models.Summary {
	summary := models.Summary{PerSector: make([]models.SectorSnapshot, 0, len(sectors))}

	var util, target, minimum weighted
	var tcSum float64
	var tcCount int

	for _, sector := range sectors {
		snap := SectorSnapshot(sector, now)
		summary.PerSector = append(summary.PerSector, snap)

		summary.Totals.Pieces += snap.Pieces
		summary.Totals.RunningHours += snap.RunningHours
		summary.Totals.StoppedHours += snap.StoppedHours
		summary.Totals.TotalHours += snap.TotalHours

		util.add(snap.UtilizationPercent, snap.TotalHours)
		target.add(snap.TargetUtilizationPercent, snap.TotalHours)
		minimum.add(snap.MinUtilizationPercent, snap.TotalHours)

		if snap.TcMedioMinPerPiece != nil {
			tcSum += *snap.TcMedioMinPerPiece
			tcCount++
		}

		if summary.DateStr == "" && snap.DateStr != "" {
			summary.DateStr = snap.DateStr
		}
	}

	summary.UtilizationPercent = util.mean()
	summary.TargetUtilizationPercent = target.mean()
	summary.MinUtilizationPercent = minimum.mean()
	if tcCount > 0 {
		summary.TcMedioAvgMinPerPiece = round1(tcSum / float64(tcCount))
	}

	return summary
}

// round1 rounds to one decimal place.
func round1(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	r := math.Round(v*10) / 10
	return &r
}
