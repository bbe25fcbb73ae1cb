// Package records provides read access to the funding-round record set.
package records

import (
	"context"

	"fundtrack/internal/core"
)

// Source is the record store port. Implementations perform a full read on
// every call and return records in canonical descending-date order (records
// without a parseable date last); callers must not cache results across
// requests.
type Source interface {
	LoadRecords(ctx context.Context) ([]core.FundingRecord, error)
}
