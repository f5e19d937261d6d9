package classification

import (
	"strings"

	"charger/models/constants"
)

const (
	Uncertain constants.Classification = iota
	Benign
	LikelyBenign
	LikelyPathogenic
	Pathogenic
)

func ClassificationToString(cls constants.Classification) string {
	switch cls {
	case Pathogenic:
		return "PATHOGENIC"
	case LikelyPathogenic:
		return "LIKELY_PATHOGENIC"
	case LikelyBenign:
		return "LIKELY_BENIGN"
	case Benign:
		return "BENIGN"
	default:
		return "UNCERTAIN_SIGNIFICANCE"
	}
}

// FromAssertion maps a free-text clinical significance assertion
// (as found in ClinVar exports) onto a classification tier. Anything
// unrecognized, conflicting or uncertain stays Uncertain.
func FromAssertion(text string) constants.Classification {
	normalized := strings.ToLower(strings.TrimSpace(text))
	normalized = strings.ReplaceAll(normalized, "_", " ")

	switch normalized {
	case "pathogenic":
		return Pathogenic
	case "likely pathogenic", "pathogenic/likely pathogenic":
		return LikelyPathogenic
	case "likely benign", "benign/likely benign":
		return LikelyBenign
	case "benign":
		return Benign
	default:
		return Uncertain
	}
}
