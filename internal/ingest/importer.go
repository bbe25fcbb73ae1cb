// Package ingest imports funding rounds from tracker spreadsheets into the
// JSON record store, deduplicating on record fingerprints.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"fundtrack/internal/core"
	"fundtrack/internal/records"
	"fundtrack/internal/sheets"
)

// SyncPublisher announces newly imported records so downstream mirrors can
// pick them up.
type SyncPublisher interface {
	PublishRecordSync(ctx context.Context, fingerprint string) error
}

// Importer pulls rows from tracker spreadsheets, appends the ones not seen
// before to the record store, and publishes a sync message per new record.
type Importer struct {
	store  *records.FileStore
	reader sheets.TrackerReader
	pub    SyncPublisher
	logger *slog.Logger
}

// NewImporter creates an Importer. pub may be nil, in which case no sync
// messages are published.
func NewImporter(store *records.FileStore, reader sheets.TrackerReader, pub SyncPublisher, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{store: store, reader: reader, pub: pub, logger: logger}
}

// Run imports every configured tracker. A tracker that fails to read is
// logged and skipped so one broken spreadsheet does not block the rest.
// It returns the number of records added and the total in the store after
// the import.
func (im *Importer) Run(ctx context.Context, sources Sources) (added, total int, err error) {
	existing, err := im.store.LoadRecords(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("load record store: %w", err)
	}

	seen := make(map[string]struct{}, len(existing))
	for _, rec := range existing {
		seen[RecordFingerprint(rec)] = struct{}{}
	}

	var newRecs []core.FundingRecord
	for _, src := range sources.Trackers {
		rows, err := im.reader.ReadRows(ctx, src.SpreadsheetID, src.ReadRange())
		if err != nil {
			im.logger.Warn("Tracker read failed, skipping",
				"spreadsheet_id", src.SpreadsheetID, "range", src.ReadRange(), "error", err)
			continue
		}

		recs := RecordsFromRows(rows)
		for _, rec := range recs {
			fp := RecordFingerprint(rec)
			if _, ok := seen[fp]; ok {
				continue
			}
			seen[fp] = struct{}{}
			newRecs = append(newRecs, rec)
		}
		im.logger.Info("Tracker imported",
			"spreadsheet_id", src.SpreadsheetID, "rows", len(recs))
	}

	total = len(existing) + len(newRecs)
	if len(newRecs) == 0 {
		im.logger.Info("No new funding records", "total", total)
		return 0, total, nil
	}

	all := append(existing, newRecs...)
	if err := im.store.Save(ctx, all); err != nil {
		return 0, len(existing), fmt.Errorf("save record store: %w", err)
	}

	if im.pub != nil {
		for _, rec := range newRecs {
			fp := RecordFingerprint(rec)
			if err := im.pub.PublishRecordSync(ctx, fp); err != nil {
				im.logger.Warn("Failed to publish record sync", "fingerprint", fp, "error", err)
			}
		}
	}

	im.logger.Info("Import complete", "added", len(newRecs), "total", total)
	return len(newRecs), total, nil
}

// RecordsFromRows converts a spreadsheet value range into records. The first
// row is the header; columns are matched to canonical field keys by exact
// header text. Rows with no company and no date are skipped. Funding dates
// are normalized to ISO form when they parse; unparseable text is kept as-is.
func RecordsFromRows(rows [][]string) []core.FundingRecord {
	if len(rows) < 2 {
		return nil
	}

	index := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		index[strings.TrimSpace(header)] = i
	}

	cell := func(row []string, key string) string {
		i, ok := index[key]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var recs []core.FundingRecord
	for _, row := range rows[1:] {
		rec := core.FundingRecord{
			Company:             cell(row, core.KeyCompany),
			FundingDate:         cell(row, core.KeyFundingDate),
			FundingRound:        cell(row, core.KeyFundingRound),
			FundingAmount:       cell(row, core.KeyFundingAmount),
			Investors:           cell(row, core.KeyInvestors),
			Description:         cell(row, core.KeyDescription),
			TherapeuticArea:     cell(row, core.KeyTherapeuticArea),
			TherapeuticModality: cell(row, core.KeyTherapeuticModality),
			LeadClinicalStage:   cell(row, core.KeyLeadClinicalStage),
			SmallMoleculeRaw:    cell(row, core.KeySmallMolecule),
			HQCity:              cell(row, core.KeyHQCity),
			HQStateRegion:       cell(row, core.KeyHQStateRegion),
		}
		if rec.Company == "" && rec.FundingDate == "" {
			continue
		}
		if d, ok := core.ParseDate(rec.FundingDate); ok {
			rec.FundingDate = d.String()
		}
		recs = append(recs, rec)
	}
	return recs
}
