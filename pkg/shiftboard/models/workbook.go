package models

import "time"

// Dashboard is the dashboard-level container with per-sector state and the summary.
type Dashboard struct {
	// Title is the tenant dashboard title.
	Title string `json:"title"`
	// RefreshID identifies the refresh cycle that produced the sector states.
	RefreshID string `json:"refreshId,omitempty"`
	// RefreshedAt is when the last refresh finished (nil before the first one).
	RefreshedAt *time.Time `json:"refreshedAt"`
	// Sectors holds the state of every configured sector, in configuration order.
	Sectors []SectorState `json:"sectors"`
	// Summary is computed against the reference clock at read time.
	Summary Summary `json:"summary"`
}
