package models

import "time"

// Sector is one configured factory area and where its table comes from.
type Sector struct {
	// ID is the unique sector identifier.
	ID string `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// APIURL is the display-table endpoint (optional when Workbook is set).
	APIURL string `json:"apiUrl,omitempty"`
	// Token is the access token appended to APIURL.
	Token string `json:"token,omitempty"`
	// Workbook is a local .xlsx path used instead of APIURL.
	Workbook string `json:"workbook,omitempty"`
	// Sheet is the worksheet name inside Workbook (default: first sheet).
	Sheet string `json:"sheet,omitempty"`
	// Range restricts the table to a reference like 'Sheet'!$A$1:$H$40.
	Range string `json:"range,omitempty"`
}

// SectorSeries is the aggregation input for one sector.
type SectorSeries struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Series Series `json:"series"`
}

// SectorState is the last known state of one sector across refreshes.
type SectorState struct {
	// ID is the sector identifier.
	ID string `json:"id"`
	// Name is the display name.
	Name string `json:"name"`
	// Series is the last successfully parsed series.
	Series Series `json:"series"`
	// HasError is true when the latest refresh of this sector failed.
	HasError bool `json:"hasError"`
	// ErrorMsg is the failure message of the latest refresh.
	ErrorMsg string `json:"errorMsg"`
	// UpdatedAt is when the sector was last refreshed (nil before the first refresh).
	UpdatedAt *time.Time `json:"updatedAt"`
	// RowCount is the number of records reported for the series.
	RowCount int `json:"rowCount"`
}
