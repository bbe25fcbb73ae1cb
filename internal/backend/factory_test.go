package backend

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fundtrack/internal/config"
)

func TestType_IsValid(t *testing.T) {
	tests := []struct {
		t    Type
		want bool
	}{
		{JSONBackend, true},
		{SQLiteBackend, true},
		{MemoryBackend, true},
		{Type("postgres"), false},
		{Type(""), false},
	}
	for _, tt := range tests {
		if got := tt.t.IsValid(); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestFromAppConfig(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg, err := FromAppConfig(&config.Config{
			DataBackend:  "json",
			DataFile:     "/tmp/data.json",
			SQLiteDBPath: "/tmp/db.sqlite",
		})
		if err != nil {
			t.Fatalf("FromAppConfig() error = %v", err)
		}
		if cfg.Type != JSONBackend || cfg.DataFile != "/tmp/data.json" {
			t.Errorf("got %+v", cfg)
		}
	})

	t.Run("nil config", func(t *testing.T) {
		if _, err := FromAppConfig(nil); err == nil {
			t.Error("FromAppConfig(nil) should fail")
		}
	})

	t.Run("invalid backend", func(t *testing.T) {
		if _, err := FromAppConfig(&config.Config{DataBackend: "redis"}); err == nil {
			t.Error("invalid backend type should fail")
		}
	})
}

func TestFactory_CreateSource(t *testing.T) {
	ctx := context.Background()
	factory := NewFactory(nil)

	t.Run("json", func(t *testing.T) {
		result, err := factory.CreateSource(ctx, Config{
			Type:     JSONBackend,
			DataFile: filepath.Join(t.TempDir(), "data.json"),
		})
		if err != nil {
			t.Fatalf("CreateSource() error = %v", err)
		}
		if result.Source == nil {
			t.Fatal("Source is nil")
		}
		recs, err := result.Source.LoadRecords(ctx)
		if err != nil || len(recs) != 0 {
			t.Errorf("empty store load = (%v, %v)", recs, err)
		}
	})

	t.Run("memory seeds from data file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.json")
		seed := `[{"Company": "Acme Bio", "Funding date": "2024-01-15"}]`
		if err := os.WriteFile(path, []byte(seed), 0644); err != nil {
			t.Fatal(err)
		}

		result, err := factory.CreateSource(ctx, Config{Type: MemoryBackend, DataFile: path})
		if err != nil {
			t.Fatalf("CreateSource() error = %v", err)
		}
		recs, err := result.Source.LoadRecords(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(recs) != 1 || recs[0].Company != "Acme Bio" {
			t.Errorf("got %+v", recs)
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		result, err := factory.CreateSource(ctx, Config{
			Type:         SQLiteBackend,
			SQLiteDBPath: filepath.Join(t.TempDir(), "fundtrack.db"),
		})
		if err != nil {
			t.Fatalf("CreateSource() error = %v", err)
		}
		if result.Cleanup == nil {
			t.Fatal("sqlite backend should provide a cleanup function")
		}
		defer result.Cleanup()

		recs, err := result.Source.LoadRecords(ctx)
		if err != nil || len(recs) != 0 {
			t.Errorf("fresh mirror load = (%v, %v)", recs, err)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		if _, err := factory.CreateSource(ctx, Config{Type: Type("redis")}); err == nil {
			t.Error("unsupported backend should fail")
		}
	})
}
