package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"fundtrack/internal/core"
	"fundtrack/internal/records"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the durable mirror of the JSON record store. The
// mirror worker upserts records keyed by fingerprint; with
// DATA_BACKEND=sqlite it also serves queries as a records.Source.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Upsert inserts or refreshes the mirrored copy of one record.
func (r *SQLiteRepository) Upsert(ctx context.Context, fingerprint string, rec core.FundingRecord) error {
	const q = `
		INSERT INTO funding_records (
			fingerprint, company, funding_date, funding_round, funding_amount,
			investors, description, therapeutic_area, therapeutic_modality,
			lead_clinical_stage, small_molecule_modality, hq_city, hq_state_region
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(fingerprint) DO UPDATE SET
			company = excluded.company,
			funding_date = excluded.funding_date,
			funding_round = excluded.funding_round,
			funding_amount = excluded.funding_amount,
			investors = excluded.investors,
			description = excluded.description,
			therapeutic_area = excluded.therapeutic_area,
			therapeutic_modality = excluded.therapeutic_modality,
			lead_clinical_stage = excluded.lead_clinical_stage,
			small_molecule_modality = excluded.small_molecule_modality,
			hq_city = excluded.hq_city,
			hq_state_region = excluded.hq_state_region,
			updated_at = CURRENT_TIMESTAMP`

	_, err := r.db.ExecContext(ctx, q,
		fingerprint, rec.Company, rec.FundingDate, rec.FundingRound, rec.FundingAmount,
		rec.Investors, rec.Description, rec.TherapeuticArea, rec.TherapeuticModality,
		rec.LeadClinicalStage, rec.SmallMoleculeRaw, rec.HQCity, rec.HQStateRegion)
	if err != nil {
		return fmt.Errorf("upsert funding record: %w", err)
	}

	slog.DebugContext(ctx, "Funding record mirrored to SQLite",
		"fingerprint", fingerprint,
		"company", rec.Company)

	return nil
}

// LoadRecords implements records.Source: newest funding date first, records
// without a date last. Dates are stored as ISO strings so lexical order is
// chronological order.
func (r *SQLiteRepository) LoadRecords(ctx context.Context) ([]core.FundingRecord, error) {
	const q = `
		SELECT company, funding_date, funding_round, funding_amount,
			investors, description, therapeutic_area, therapeutic_modality,
			lead_clinical_stage, small_molecule_modality, hq_city, hq_state_region
		FROM funding_records
		ORDER BY CASE WHEN funding_date = '' THEN 1 ELSE 0 END, funding_date DESC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query funding records: %w", err)
	}
	defer rows.Close()

	recs := []core.FundingRecord{}
	for rows.Next() {
		var rec core.FundingRecord
		if err := rows.Scan(
			&rec.Company, &rec.FundingDate, &rec.FundingRound, &rec.FundingAmount,
			&rec.Investors, &rec.Description, &rec.TherapeuticArea, &rec.TherapeuticModality,
			&rec.LeadClinicalStage, &rec.SmallMoleculeRaw, &rec.HQCity, &rec.HQStateRegion,
		); err != nil {
			return nil, fmt.Errorf("scan funding record: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate funding records: %w", err)
	}

	// Lexical SQL order is only right for ISO dates; re-sort so records
	// carrying non-ISO date text still land in canonical order.
	records.SortByDateDesc(recs)
	return recs, nil
}

// Count returns the number of mirrored records.
func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM funding_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count funding records: %w", err)
	}
	return n, nil
}
