// Package memory provides an in-memory TrackerReader for tests.
package memory

import (
	"context"

	"fundtrack/internal/sheets"
)

// Reader serves configured rows, keyed by spreadsheet ID.
type Reader struct {
	Rows map[string][][]string
	Err  error
}

var _ sheets.TrackerReader = (*Reader)(nil)

func (r *Reader) ReadRows(_ context.Context, spreadsheetID, _ string) ([][]string, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Rows[spreadsheetID], nil
}
