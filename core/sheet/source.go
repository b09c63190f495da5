package sheet

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

var ErrEmptyGrid = &EmptyGridError{}

// Source reads a Grid for a range such as "Lectures!A:M".
type Source interface {
	Values(ctx context.Context, rng string) (Grid, error)
}

// Fetch reads the range from src and materializes it.
func Fetch(ctx context.Context, src Source, rng string) ([]Record, error) {
	grid, err := src.Values(ctx, rng)
	if err != nil {
		return nil, err
	}
	records, err := Materialize(grid)
	if err == ErrEmptyGrid {
		return nil, &EmptyGridError{Range: rng}
	}
	return records, err
}

// EmptyGridError means the table has no header row.
type EmptyGridError struct {
	Range string
}

func (err *EmptyGridError) Error() string {
	if err.Range == "" {
		return "sheet: grid has no header row"
	}
	return fmt.Sprintf("sheet: %s has no header row", err.Range)
}

// TransportError is a non-2xx response or a network failure while reading a range.
type TransportError struct {
	Range      string
	StatusCode int // 0 on network failure
	Err        error
}

func NewTransportError(rng string, status int, cause error) *TransportError {
	return &TransportError{Range: rng, StatusCode: status, Err: cause}
}

func (err *TransportError) Error() string {
	if err.StatusCode != 0 {
		return fmt.Sprintf("sheet: %s fetch failed: %d %s", err.Range, err.StatusCode, http.StatusText(err.StatusCode))
	}
	if err.Err != nil {
		return fmt.Sprintf("sheet: %s fetch failed: %v", err.Range, err.Err)
	}
	return fmt.Sprintf("sheet: %s fetch failed", err.Range)
}

func (err *TransportError) Unwrap() error { return err.Err }

// IsTransport reports whether err (or its cause chain) is a TransportError.
func IsTransport(err error) bool {
	var terr *TransportError
	return errors.As(err, &terr)
}

// IsEmptyGrid reports whether err (or its cause chain) is an EmptyGridError.
func IsEmptyGrid(err error) bool {
	var eerr *EmptyGridError
	return errors.As(err, &eerr)
}
