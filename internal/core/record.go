package core

import "strings"

// Canonical field keys used in the persisted JSON data files and in the
// tracker spreadsheet headers. These must be preserved exactly for
// compatibility with existing data.
const (
	KeyCompany             = "Company"
	KeyFundingDate         = "Funding date"
	KeyFundingRound        = "Funding round"
	KeyFundingAmount       = "Funding amount"
	KeyInvestors           = "Investors"
	KeyDescription         = "Description"
	KeyTherapeuticArea     = "Therapeutic Area"
	KeyTherapeuticModality = "Therapeutic Modality"
	KeyLeadClinicalStage   = "Lead Clinical Stage"
	KeySmallMolecule       = "Small molecule modality?"
	KeyHQCity              = "HQ City"
	KeyHQStateRegion       = "HQ State/Region"
)

// CanonicalKeys lists every record field key in tracker column order.
var CanonicalKeys = []string{
	KeyCompany, KeyFundingDate, KeyFundingRound, KeyFundingAmount,
	KeyInvestors, KeyDescription, KeyTherapeuticArea, KeyTherapeuticModality,
	KeyLeadClinicalStage, KeySmallMolecule, KeyHQCity, KeyHQStateRegion,
}

// FundingRecord is one funding event. All fields are free text as extracted
// from the source tracker; missing fields are empty strings. Records are
// immutable once loaded for the duration of a request.
type FundingRecord struct {
	Company             string `json:"Company"`
	FundingDate         string `json:"Funding date"`
	FundingRound        string `json:"Funding round"`
	FundingAmount       string `json:"Funding amount"`
	Investors           string `json:"Investors"`
	Description         string `json:"Description"`
	TherapeuticArea     string `json:"Therapeutic Area"`
	TherapeuticModality string `json:"Therapeutic Modality"`
	LeadClinicalStage   string `json:"Lead Clinical Stage"`
	SmallMoleculeRaw    string `json:"Small molecule modality?"`
	HQCity              string `json:"HQ City"`
	HQStateRegion       string `json:"HQ State/Region"`
}

// Date parses the funding date. ok is false when the stored text is empty or
// unparseable; such records are treated as having no date (excluded from any
// date-bounded filter, sorted as oldest).
func (r FundingRecord) Date() (Date, bool) {
	return ParseDate(r.FundingDate)
}

// Amount parses the funding amount. ok is false when the text carries no
// recognized magnitude suffix; the summarizer ranks such records as zero.
func (r FundingRecord) Amount() (float64, bool) {
	return ParseAmount(r.FundingAmount)
}

// TriState is the small-molecule modality classification.
type TriState string

const (
	TriUnknown TriState = ""
	TriYes     TriState = "yes"
	TriNo      TriState = "no"
)

// SmallMolecule maps the free-text modality flag onto the tri-state enum:
// "yes"/"y"/"true" (any casing, trimmed) is Yes, blank is Unknown, everything
// else is No.
func (r FundingRecord) SmallMolecule() TriState {
	switch strings.ToLower(strings.TrimSpace(r.SmallMoleculeRaw)) {
	case "":
		return TriUnknown
	case "yes", "y", "true":
		return TriYes
	default:
		return TriNo
	}
}

// ParseTriState maps user-facing filter text onto a TriState. Anything that
// is not recognizably yes or no leaves the filter unset.
func ParseTriState(s string) TriState {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return TriUnknown
	case strings.HasPrefix(v, "y") || v == "true":
		return TriYes
	case strings.HasPrefix(v, "n") || v == "false":
		return TriNo
	default:
		return TriUnknown
	}
}
