package records

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fundtrack/internal/core"
)

func TestFileStore_MissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

	recs, err := store.LoadRecords(context.Background())
	if err != nil {
		t.Fatalf("LoadRecords() error = %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("missing file should yield empty set, got %d records", len(recs))
	}
}

func TestFileStore_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	recs, err := NewFileStore(path).LoadRecords(context.Background())
	if err != nil {
		t.Fatalf("LoadRecords() error = %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("invalid JSON should yield empty set, got %d records", len(recs))
	}
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funding_data.json")
	store := NewFileStore(path)
	ctx := context.Background()

	in := []core.FundingRecord{
		{Company: "Old", FundingDate: "2023-05-01"},
		{Company: "Dateless", FundingDate: "sometime"},
		{Company: "New", FundingDate: "2024-02-01"},
	}
	if err := store.Save(ctx, in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, err := store.LoadRecords(ctx)
	if err != nil {
		t.Fatalf("LoadRecords() error = %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d records, want 3", len(out))
	}
	// Newest first, unparseable dates last.
	if out[0].Company != "New" || out[1].Company != "Old" || out[2].Company != "Dateless" {
		t.Errorf("unexpected order: %s, %s, %s", out[0].Company, out[1].Company, out[2].Company)
	}
}

func TestFileStore_SeesExternalWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funding_data.json")
	store := NewFileStore(path)
	ctx := context.Background()

	if err := store.Save(ctx, []core.FundingRecord{{Company: "First", FundingDate: "2024-01-01"}}); err != nil {
		t.Fatal(err)
	}
	if recs, _ := store.LoadRecords(ctx); len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}

	// Another process rewrites the file between requests.
	external := `[{"Company": "Second", "Funding date": "2024-02-01"}]`
	if err := os.WriteFile(path, []byte(external), 0644); err != nil {
		t.Fatal(err)
	}

	recs, err := store.LoadRecords(ctx)
	if err != nil {
		t.Fatalf("LoadRecords() error = %v", err)
	}
	if len(recs) != 1 || recs[0].Company != "Second" {
		t.Errorf("load should reflect the rewritten file, got %+v", recs)
	}
}

func TestSortByDateDesc_Stable(t *testing.T) {
	recs := []core.FundingRecord{
		{Company: "A", FundingDate: "2024-01-01"},
		{Company: "B", FundingDate: "2024-01-01"},
		{Company: "C", FundingDate: "2024-03-01"},
	}
	SortByDateDesc(recs)
	if recs[0].Company != "C" || recs[1].Company != "A" || recs[2].Company != "B" {
		t.Errorf("unexpected order: %s, %s, %s", recs[0].Company, recs[1].Company, recs[2].Company)
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(
		core.FundingRecord{Company: "A", FundingDate: "2024-01-01"},
	)
	store.Add(core.FundingRecord{Company: "B", FundingDate: "2024-02-01"})

	recs, err := store.LoadRecords(context.Background())
	if err != nil {
		t.Fatalf("LoadRecords() error = %v", err)
	}
	if len(recs) != 2 || recs[0].Company != "B" {
		t.Errorf("got %+v, want B first", recs)
	}
}
