package models

// SectorSnapshot is the record selected to represent a sector right now.
type SectorSnapshot struct {
	ID                       string   `json:"id"`
	Name                     string   `json:"name"`
	Pieces                   float64  `json:"pieces"`
	RunningHours             float64  `json:"runningHours"`
	StoppedHours             float64  `json:"stoppedHours"`
	TotalHours               float64  `json:"totalHours"`
	UtilizationPercent       *float64 `json:"utilizationPercent"`
	TargetUtilizationPercent *float64 `json:"targetUtilizationPercent"`
	MinUtilizationPercent    *float64 `json:"minUtilizationPercent"`
	TcMedioMinPerPiece       *float64 `json:"tcMedioMinPerPiece"`
	DateStr                  string   `json:"dateStr"`
	// HasData is false when the sector had no record to select.
	HasData bool `json:"hasData"`
}

// Totals holds the additive fleet totals.
type Totals struct {
	Pieces       float64 `json:"pieces"`
	RunningHours float64 `json:"runningHours"`
	StoppedHours float64 `json:"stoppedHours"`
	TotalHours   float64 `json:"totalHours"`
}

// Summary is the fleet-level roll-up of every sector's snapshot.
// Aggregated rates are nil when no sector contributes to them.
type Summary struct {
	PerSector                []SectorSnapshot `json:"perSector"`
	Totals                   Totals           `json:"totals"`
	UtilizationPercent       *float64         `json:"utilizationPercent"`
	TargetUtilizationPercent *float64         `json:"targetUtilizationPercent"`
	MinUtilizationPercent    *float64         `json:"minUtilizationPercent"`
	TcMedioAvgMinPerPiece    *float64         `json:"tcMedioAvgMinPerPiece"`
	DateStr                  string           `json:"dateStr"`
}
