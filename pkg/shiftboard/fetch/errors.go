package fetch

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrTimeout matches every TimeoutError.
var ErrTimeout = errors.New("request timed out")

// ErrNoSource indicates a sector has neither an API URL nor a workbook.
var ErrNoSource = errors.New("sector has no apiUrl or workbook")

// TimeoutError is returned when a request exceeds its time limit.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("Tempo limite excedido (%ds)", int(math.Round(e.Timeout.Seconds())))
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Erro HTTP: %d", e.Code)
}
