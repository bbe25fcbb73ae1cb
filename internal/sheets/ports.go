// Package sheets defines the tracker spreadsheet port. The funding dataset
// originates in a spreadsheet tracker; the import pipeline reads raw rows
// through this port.
package sheets

import "context"

// TrackerReader reads raw cell rows from a tracker spreadsheet. The first
// row is expected to be the header row with canonical column names.
type TrackerReader interface {
	ReadRows(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
}
