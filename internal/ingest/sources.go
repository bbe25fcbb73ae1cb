package ingest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TrackerSource points at one spreadsheet tab holding funding rows.
type TrackerSource struct {
	SpreadsheetID string `yaml:"spreadsheet_id"`
	Sheet         string `yaml:"sheet"`
	Range         string `yaml:"range"`
}

// Sources is the on-disk list of tracker spreadsheets to import.
type Sources struct {
	Trackers []TrackerSource `yaml:"trackers"`
}

const defaultRange = "A1:L"

// ReadRange returns the A1-notation range for this source, including the
// sheet prefix when one is configured.
func (t TrackerSource) ReadRange() string {
	r := t.Range
	if r == "" {
		r = defaultRange
	}
	if t.Sheet != "" {
		return fmt.Sprintf("%s!%s", t.Sheet, r)
	}
	return r
}

// LoadSources reads the tracker list from a YAML file. A missing file is
// not an error: it yields an empty source list.
func LoadSources(path string) (Sources, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Sources{}, nil
		}
		return Sources{}, fmt.Errorf("read sources file: %w", err)
	}

	var s Sources
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Sources{}, fmt.Errorf("parse sources file: %w", err)
	}
	return s, nil
}
