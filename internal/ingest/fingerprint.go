package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"fundtrack/internal/core"
)

// Fingerprint derives a stable short identity for a funding round from the
// fields that make it unique. Case differences do not change the result.
func Fingerprint(company, date, amount, round string) string {
	basis := strings.ToLower(fmt.Sprintf("%s|%s|%s|%s", company, date, amount, round))
	sum := sha256.Sum256([]byte(basis))
	return hex.EncodeToString(sum[:])[:16]
}

// RecordFingerprint fingerprints a full record.
func RecordFingerprint(rec core.FundingRecord) string {
	return Fingerprint(rec.Company, rec.FundingDate, rec.FundingAmount, rec.FundingRound)
}
