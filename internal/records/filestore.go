package records

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"fundtrack/internal/core"
)

// FileStore reads and writes the JSON funding data file. Every load is a
// fresh read of the file, so a request always observes the current contents;
// an external updater writing between requests needs no coordination here.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// LoadRecords implements Source. A missing or undecodable data file yields
// an empty record set rather than an error; the query pipeline stays up even
// when the backing file is gone.
func (s *FileStore) LoadRecords(ctx context.Context) ([]core.FundingRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.WarnContext(ctx, "Failed to read funding data file", "path", s.path, "error", err)
		}
		return []core.FundingRecord{}, nil
	}
	var recs []core.FundingRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		slog.WarnContext(ctx, "Funding data file is not valid JSON", "path", s.path, "error", err)
		return []core.FundingRecord{}, nil
	}
	SortByDateDesc(recs)
	return recs, nil
}

// Save writes the record set back to the data file, newest first, using a
// temp-file rename so readers never observe a partial write from this
// process.
func (s *FileStore) Save(ctx context.Context, recs []core.FundingRecord) error {
	sorted := append([]core.FundingRecord(nil), recs...)
	SortByDateDesc(sorted)

	data, err := json.MarshalIndent(sorted, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal funding data: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "funding_data-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace data file: %w", err)
	}

	slog.InfoContext(ctx, "Funding data file saved", "path", s.path, "records", len(sorted))
	return nil
}

// SortByDateDesc orders records newest first. Records without a parseable
// funding date sort last; the sort is stable so ties keep their input order.
func SortByDateDesc(recs []core.FundingRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		di, oki := recs[i].Date()
		dj, okj := recs[j].Date()
		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}
		return di.After(dj.Time)
	})
}
