package core

import (
	"reflect"
	"testing"
)

func testRecords() []FundingRecord {
	return []FundingRecord{
		{Company: "Acme Bio", FundingDate: "2024-01-15", FundingRound: "Series A", FundingAmount: "$45M", SmallMoleculeRaw: "Yes", HQCity: "Boston", HQStateRegion: "MA"},
		{Company: "Beta Therapeutics", FundingDate: "2024-02-01", FundingRound: "Seed", FundingAmount: "$1.2B", SmallMoleculeRaw: "No", HQCity: "San Diego", HQStateRegion: "CA"},
		{Company: "Gamma Pharma", FundingDate: "soon", FundingRound: "Series B", FundingAmount: "$30M", HQCity: "Cambridge", HQStateRegion: "MA"},
	}
}

func TestFilter_EmptyPlanIsIdentity(t *testing.T) {
	recs := testRecords()
	got := Filter(recs, FilterPlan{})
	if !reflect.DeepEqual(got, recs) {
		t.Errorf("empty plan should return all records in order, got %d of %d", len(got), len(recs))
	}
}

func TestFilter_DateBounds(t *testing.T) {
	recs := testRecords()

	t.Run("inclusive bounds", func(t *testing.T) {
		plan := FilterPlan{FromDate: NewDate(2024, 1, 15), ToDate: NewDate(2024, 2, 1)}
		got := Filter(recs, plan)
		if len(got) != 2 {
			t.Fatalf("got %d records, want 2", len(got))
		}
		if got[0].Company != "Acme Bio" || got[1].Company != "Beta Therapeutics" {
			t.Errorf("unexpected matches: %v, %v", got[0].Company, got[1].Company)
		}
	})

	t.Run("from bound excludes earlier", func(t *testing.T) {
		plan := FilterPlan{FromDate: NewDate(2024, 1, 16)}
		got := Filter(recs, plan)
		if len(got) != 1 || got[0].Company != "Beta Therapeutics" {
			t.Errorf("got %v, want only Beta Therapeutics", companies(got))
		}
	})

	t.Run("unparseable date excluded when bound set", func(t *testing.T) {
		plan := FilterPlan{FromDate: NewDate(2020, 1, 1)}
		for _, rec := range Filter(recs, plan) {
			if rec.Company == "Gamma Pharma" {
				t.Error("record with unparseable date should not match a date-bounded plan")
			}
		}
	})

	t.Run("unparseable date passes without bounds", func(t *testing.T) {
		got := Filter(recs, FilterPlan{Round: "Series B"})
		if len(got) != 1 || got[0].Company != "Gamma Pharma" {
			t.Errorf("got %v, want Gamma Pharma", companies(got))
		}
	})
}

func TestFilter_TextFields(t *testing.T) {
	recs := testRecords()

	tests := []struct {
		name string
		plan FilterPlan
		want []string
	}{
		{"company substring", FilterPlan{Company: "acme"}, []string{"Acme Bio"}},
		{"round case insensitive", FilterPlan{Round: "series a"}, []string{"Acme Bio"}},
		{"state", FilterPlan{HQState: "MA"}, []string{"Acme Bio", "Gamma Pharma"}},
		{"city substring", FilterPlan{HQCity: "diego"}, []string{"Beta Therapeutics"}},
		{"no match", FilterPlan{Company: "nonexistent"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := companies(Filter(recs, tt.plan))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_SmallMolecule(t *testing.T) {
	recs := []FundingRecord{
		{Company: "Yes Co", SmallMoleculeRaw: "Yes"},
		{Company: "No Co", SmallMoleculeRaw: "No"},
		{Company: "Blank Co"},
	}

	t.Run("yes is strict", func(t *testing.T) {
		got := companies(Filter(recs, FilterPlan{SmallMolecule: TriYes}))
		if !reflect.DeepEqual(got, []string{"Yes Co"}) {
			t.Errorf("got %v, want [Yes Co]", got)
		}
	})

	t.Run("no keeps blank and unknown", func(t *testing.T) {
		got := companies(Filter(recs, FilterPlan{SmallMolecule: TriNo}))
		if !reflect.DeepEqual(got, []string{"No Co", "Blank Co"}) {
			t.Errorf("got %v, want [No Co, Blank Co]", got)
		}
	})

	t.Run("unknown is unset", func(t *testing.T) {
		got := Filter(recs, FilterPlan{SmallMolecule: TriUnknown})
		if len(got) != 3 {
			t.Errorf("got %d records, want all 3", len(got))
		}
	})
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	recs := testRecords()
	got := Filter(recs, FilterPlan{HQState: "MA"})
	if len(got) != 2 || got[0].Company != "Acme Bio" || got[1].Company != "Gamma Pharma" {
		t.Errorf("filter must preserve input order, got %v", companies(got))
	}
}

func companies(recs []FundingRecord) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Company)
	}
	return out
}
