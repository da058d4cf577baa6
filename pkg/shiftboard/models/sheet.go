package models

// TableResponse is the JSON document returned by a display-table endpoint.
type TableResponse struct {
	// Headers is the ordered header row.
	Headers []string `json:"headers"`
	// Rows holds the data rows.
	Rows [][]Cell `json:"rows"`
	// RowCount is the number of rows reported by the server (optional).
	RowCount *int `json:"rowCount,omitempty"`
	// OK is false when the server reports a failure (optional).
	OK *bool `json:"ok,omitempty"`
	// Error carries the server-side failure message (optional).
	Error string `json:"error,omitempty"`
}

// Failed reports whether the response signals a sector-level failure.
func (r TableResponse) Failed() bool {
	return (r.OK != nil && !*r.OK) || r.Error != ""
}

// Table returns the headers and rows as a RawTable.
func (r TableResponse) Table() RawTable {
	return RawTable{Headers: r.Headers, Rows: r.Rows}
}
