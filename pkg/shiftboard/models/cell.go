// Package models defines data structures for production dashboards.
package models

// Cell is one raw spreadsheet cell as delivered by a table source.
// It is a string, a number (float64, json.Number, int kinds) or nil.
type Cell = any

// RawTable represents one fetched table: a header row plus data rows.
type RawTable struct {
	// Headers is the ordered header row.
	Headers []string `json:"headers"`
	// Rows holds the data rows. A row may be shorter or longer than Headers.
	Rows [][]Cell `json:"rows"`
}

// CellAt returns the cell at index i of row, or nil when i is out of range.
func CellAt(row []Cell, i int) Cell {
	if i < 0 || i >= len(row) {
		return nil
	}
	return row[i]
}
