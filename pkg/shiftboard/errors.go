package shiftboard

import (
	"errors"
	"fmt"
)

// ErrNoData indicates a sector table parsed into an empty series.
var ErrNoData = errors.New("Nenhum dado disponível")

// DefaultServerError is the message used when a server reports a failure without one.
const DefaultServerError = "server_error"

// Stages of a sector refresh.
const (
	StageFetch = "fetch"
	StageParse = "parse"
)

// ServerError is a failure reported by the table endpoint itself (ok:false or error).
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return DefaultServerError
	}
	return e.Message
}

// SectorError represents an error while refreshing one sector.
type SectorError struct {
	SectorID string
	Stage    string // "fetch", "parse"
	Err      error
}

func (e *SectorError) Error() string {
	return fmt.Sprintf("sector %q (%s): %v", e.SectorID, e.Stage, e.Err)
}

func (e *SectorError) Unwrap() error {
	return e.Err
}

// NewSectorError creates a new SectorError.
func NewSectorError(sectorID, stage string, err error) *SectorError {
	return &SectorError{
		SectorID: sectorID,
		Stage:    stage,
		Err:      err,
	}
}

// DisplayMessage returns the message shown for a failed sector: the
// underlying cause without the sector/stage prefix.
func DisplayMessage(err error) string {
	var se *SectorError
	if errors.As(err, &se) && se.Err != nil {
		return se.Err.Error()
	}
	return err.Error()
}
