// Package worker mirrors the JSON record store into the SQLite database.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"fundtrack/internal/amqp"
	"fundtrack/internal/ingest"
	"fundtrack/internal/records"
	"fundtrack/internal/storage"
)

// MirrorWorker keeps the SQLite mirror in step with the JSON record store.
// The store stays the source of truth; the mirror is a queryable copy.
type MirrorWorker struct {
	source *records.FileStore
	repo   *storage.SQLiteRepository
}

func NewMirrorWorker(source *records.FileStore, repo *storage.SQLiteRepository) *MirrorWorker {
	return &MirrorWorker{source: source, repo: repo}
}

// HandleSyncMessage mirrors the single record named by the message. A record
// that has disappeared from the store since the message was published is
// logged and skipped, not retried.
func (w *MirrorWorker) HandleSyncMessage(ctx context.Context, msg *amqp.RecordSyncMessage) error {
	slog.InfoContext(ctx, "Processing record sync message",
		"fingerprint", msg.Fingerprint)

	recs, err := w.source.LoadRecords(ctx)
	if err != nil {
		return fmt.Errorf("load record store: %w", err)
	}

	for _, rec := range recs {
		if ingest.RecordFingerprint(rec) == msg.Fingerprint {
			if err := w.repo.Upsert(ctx, msg.Fingerprint, rec); err != nil {
				return fmt.Errorf("upsert record %s: %w", msg.Fingerprint, err)
			}
			return nil
		}
	}

	slog.WarnContext(ctx, "Record no longer in store, skipping mirror",
		"fingerprint", msg.Fingerprint)
	return nil
}

// MirrorAll upserts every record in the store into the mirror. Used at worker
// startup and on the periodic re-mirror tick to catch missed messages.
func (w *MirrorWorker) MirrorAll(ctx context.Context) (int, error) {
	recs, err := w.source.LoadRecords(ctx)
	if err != nil {
		return 0, fmt.Errorf("load record store: %w", err)
	}

	for i, rec := range recs {
		if err := w.repo.Upsert(ctx, ingest.RecordFingerprint(rec), rec); err != nil {
			return i, fmt.Errorf("upsert record: %w", err)
		}
	}

	slog.InfoContext(ctx, "Full mirror complete", "records", len(recs))
	return len(recs), nil
}
