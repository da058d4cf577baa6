package models

// ColumnKey identifies a logical column of the production table.
type ColumnKey string

const (
	ColumnDate               ColumnKey = "date"
	ColumnPieces             ColumnKey = "pieces"
	ColumnRunning            ColumnKey = "running"
	ColumnStopped            ColumnKey = "stopped"
	ColumnUtilization        ColumnKey = "utilization"
	ColumnTargetUtilization  ColumnKey = "targetUtilization"
	ColumnMaximumUtilization ColumnKey = "maximumUtilization"
	ColumnMinimumUtilization ColumnKey = "minimumUtilization"
	ColumnTcMedio            ColumnKey = "tcMedio"
	ColumnWorkingHours       ColumnKey = "workingHours"
)

// ColumnKeys lists every logical column in resolution order.
var ColumnKeys = []ColumnKey{
	ColumnDate,
	ColumnPieces,
	ColumnRunning,
	ColumnStopped,
	ColumnUtilization,
	ColumnTargetUtilization,
	ColumnMaximumUtilization,
	ColumnMinimumUtilization,
	ColumnTcMedio,
	ColumnWorkingHours,
}

// ColumnMap maps a logical column to the header configured for a tenant.
// A missing key means the field is not tracked for that tenant.
type ColumnMap map[ColumnKey]string

// Header returns the configured header for key and whether it is tracked.
func (m ColumnMap) Header(key ColumnKey) (string, bool) {
	h, ok := m[key]
	return h, ok
}
