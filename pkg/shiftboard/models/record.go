package models

// DayRecord is the canonical form of one table row.
type DayRecord struct {
	// Date is the parsed calendar date (nil if unparseable).
	Date *Date `json:"date"`
	// DateStr is the original date cell as text ("" if absent).
	DateStr string `json:"dateStr"`
	// Label is the short display label, the first 5 characters of DateStr.
	Label string `json:"label"`
	// Pieces is the number of pieces produced.
	Pieces float64 `json:"pieces"`
	// RunningHours is the time the equipment was running, in hours.
	RunningHours float64 `json:"runningHours"`
	// StoppedHours is the time the equipment was stopped, in hours.
	StoppedHours float64 `json:"stoppedHours"`
	// WorkingHours is the configured shift length (nil if not tracked).
	WorkingHours *float64 `json:"workingHours"`
	// UtilizationPercent is the machine utilization in percent.
	UtilizationPercent *float64 `json:"utilizationPercent"`
	// TargetUtilizationPercent is the target (maximum) utilization in percent.
	TargetUtilizationPercent *float64 `json:"targetUtilizationPercent"`
	// MinUtilizationPercent is the minimum acceptable utilization in percent.
	MinUtilizationPercent *float64 `json:"minUtilizationPercent"`
	// TcMedioMinPerPiece is the average cycle time in minutes per piece.
	TcMedioMinPerPiece *float64 `json:"tcMedioMinPerPiece"`
}

// Series is the ordered list of day records of one sector, in sheet order.
type Series []DayRecord
