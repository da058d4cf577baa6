package models

// ChartPoint is the projection of a DayRecord consumed by chart renderers.
type ChartPoint struct {
	// Label is the x-axis label ("dd/mm").
	Label string `json:"label"`
	// Pieces is the number of pieces produced.
	Pieces float64 `json:"pieces"`
	// RunningHours is the stacked running bar.
	RunningHours float64 `json:"runningHours"`
	// StoppedHours is the stacked stopped bar.
	StoppedHours float64 `json:"stoppedHours"`
	// UtilizationPercent is the utilization line (nil leaves a gap).
	UtilizationPercent *float64 `json:"utilizationPercent"`
	// TcMedioMinPerPiece is the cycle time line (nil leaves a gap).
	TcMedioMinPerPiece *float64 `json:"tcMedioMinPerPiece"`
}

// ChartPoints returns the chart projection of every record, in series order.
func (s Series) ChartPoints() []ChartPoint {
	points := make([]ChartPoint, 0, len(s))
	for _, r := range s {
		points = append(points, ChartPoint{
			Label:              r.Label,
			Pieces:             r.Pieces,
			RunningHours:       r.RunningHours,
			StoppedHours:       r.StoppedHours,
			UtilizationPercent: r.UtilizationPercent,
			TcMedioMinPerPiece: r.TcMedioMinPerPiece,
		})
	}
	return points
}
