package scoring

import (
	"fmt"

	"charger/models"
	"charger/models/constants"
	cls "charger/models/constants/classification"
	e "charger/models/constants/evidence"
)

// Thresholds are the classification score boundaries plus the allele
// frequency boundaries, validated once before any variant is processed.
type Thresholds struct {
	MinPathogenic       int
	MinLikelyPathogenic int
	MaxLikelyBenign     int
	MaxBenign           int

	Rare   float64
	Common float64
}

func ThresholdsFromConfig(cfg *models.Config) Thresholds {
	return Thresholds{
		MinPathogenic:       cfg.MinPathogenicScore,
		MinLikelyPathogenic: cfg.MinLikelyPathogenicScore,
		MaxLikelyBenign:     cfg.MaxLikelyBenignScore,
		MaxBenign:           cfg.MaxBenignScore,
		Rare:                cfg.RareThreshold,
		Common:              cfg.CommonThreshold,
	}
}

// Validate enforces
//
//	min pathogenic >= min likely pathogenic > max likely benign >= max benign
//	rare <= common
//
// A violating threshold set is rejected outright, never normalized.
func (t Thresholds) Validate() error {
	if t.MinPathogenic < t.MinLikelyPathogenic {
		return fmt.Errorf("min pathogenic score (%d) must be >= min likely pathogenic score (%d)", t.MinPathogenic, t.MinLikelyPathogenic)
	}
	if t.MinLikelyPathogenic <= t.MaxLikelyBenign {
		return fmt.Errorf("min likely pathogenic score (%d) must be > max likely benign score (%d)", t.MinLikelyPathogenic, t.MaxLikelyBenign)
	}
	if t.MaxLikelyBenign < t.MaxBenign {
		return fmt.Errorf("max likely benign score (%d) must be >= max benign score (%d)", t.MaxLikelyBenign, t.MaxBenign)
	}
	if t.Rare > t.Common {
		return fmt.Errorf("rare threshold (%g) must be <= common threshold (%g)", t.Rare, t.Common)
	}
	return nil
}

// DefaultAcmgScores is the standards-body score table. Positive points
// lean pathogenic, negative points lean benign.
func DefaultAcmgScores() map[constants.EvidenceCode]int {
	return map[constants.EvidenceCode]int{
		e.PVS1: 8,
		e.PS1:  4,
		e.PM1:  2,
		e.PM2:  2,
		e.PP2:  1,
		e.BP1:  -1,
		e.BS1:  -4,
		e.BA1:  -8,

		// concordance codes reach the standards-body aggregate only via
		// the database-annotation override
		e.PSC1: 4,
		e.PMC1: 2,
		e.BMC1: -2,
		e.BSC1: -4,
	}
}

// DefaultChargerScores is the extended score table. Strong evidence
// carries more weight here than in the standards-body table.
func DefaultChargerScores() map[constants.EvidenceCode]int {
	return map[constants.EvidenceCode]int{
		e.PVS1: 8,
		e.PS1:  7,
		e.PM1:  2,
		e.PM2:  2,
		e.PP2:  1,
		e.BP1:  -1,
		e.BS1:  -4,
		e.BA1:  -8,

		e.PSC1: 7,
		e.PMC1: 2,
		e.BMC1: -2,
		e.BSC1: -4,
	}
}

// ApplyOverrides folds a partial user override mapping into a score
// table. Referencing an evidence code outside the module catalogue is
// a configuration error.
func ApplyOverrides(table map[constants.EvidenceCode]int, overrides map[string]int) error {
	for rawCode, score := range overrides {
		code := constants.EvidenceCode(rawCode)
		if !e.IsKnownCode(code) {
			return fmt.Errorf("score override references unknown evidence code '%s'", rawCode)
		}
		table[code] = score
	}
	return nil
}

// AcmgAggregate sums the stamped standards-body points of every met
// call belonging to the standards-body scheme. Pure sum, so module
// evaluation order never matters.
func AcmgAggregate(calls []*models.EvidenceCall) int {
	total := 0
	for _, call := range calls {
		if call.Status == e.Met && call.Scheme == e.SchemeBoth {
			total += call.AcmgPoints
		}
	}
	return total
}

// ChargerAggregate sums the stamped extended points of every met call;
// the extended scheme counts the standards-body evidence plus its own
// modules.
func ChargerAggregate(calls []*models.EvidenceCall) int {
	total := 0
	for _, call := range calls {
		if call.Status == e.Met {
			total += call.ChargerPoints
		}
	}
	return total
}

// Classify maps an aggregate score onto a classification tier.
// Ordered chain, first match wins; total over all integers.
func Classify(score int, t Thresholds) constants.Classification {
	switch {
	case score >= t.MinPathogenic:
		return cls.Pathogenic
	case score >= t.MinLikelyPathogenic:
		return cls.LikelyPathogenic
	case score <= t.MaxBenign:
		return cls.Benign
	case score <= t.MaxLikelyBenign:
		return cls.LikelyBenign
	default:
		return cls.Uncertain
	}
}
