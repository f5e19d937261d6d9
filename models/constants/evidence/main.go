package evidence

import (
	"charger/models/constants"
)

// Evidence module codes. ACMG codes follow the standards-body naming;
// the *C1 codes are the CharGer-only ClinVar concordance modules.
const (
	PVS1 constants.EvidenceCode = "PVS1"
	PS1  constants.EvidenceCode = "PS1"
	PM1  constants.EvidenceCode = "PM1"
	PM2  constants.EvidenceCode = "PM2"
	PP2  constants.EvidenceCode = "PP2"
	BP1  constants.EvidenceCode = "BP1"
	BS1  constants.EvidenceCode = "BS1"
	BA1  constants.EvidenceCode = "BA1"

	PSC1 constants.EvidenceCode = "PSC1"
	PMC1 constants.EvidenceCode = "PMC1"
	BMC1 constants.EvidenceCode = "BMC1"
	BSC1 constants.EvidenceCode = "BSC1"
)

// Evaluation outcome of a single module against a single variant.
const (
	NotMet constants.EvidenceStatus = iota
	Met
	SkippedMissingResource
	SkippedMalformedData
	// Suppressed marks modules superseded by the
	// database-annotation override for a given variant
	Suppressed
)

// Scheme membership of a fired call. ACMG modules contribute to both
// aggregates; CharGer-only modules contribute to the CharGer aggregate only.
const (
	SchemeBoth constants.Scheme = iota
	SchemeCharger
)

func StatusToString(status constants.EvidenceStatus) string {
	switch status {
	case Met:
		return "MET"
	case NotMet:
		return "NOT_MET"
	case SkippedMissingResource:
		return "SKIPPED_MISSING_RESOURCE"
	case SkippedMalformedData:
		return "SKIPPED_MALFORMED_DATA"
	case Suppressed:
		return "SUPPRESSED"
	default:
		return "UNKNOWN"
	}
}

// AllCodes lists every code any module can produce. Score tables are
// validated against this list; both tables carry every code.
func AllCodes() []constants.EvidenceCode {
	return []constants.EvidenceCode{
		PVS1, PS1, PM1, PM2, PP2, BP1, BS1, BA1,
		PSC1, PMC1, BMC1, BSC1,
	}
}

func IsKnownCode(code constants.EvidenceCode) bool {
	for _, c := range AllCodes() {
		if c == code {
			return true
		}
	}
	return false
}
