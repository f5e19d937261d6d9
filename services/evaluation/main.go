package evaluation

import (
	"fmt"

	"charger/models"
	"charger/models/constants"
	cls "charger/models/constants/classification"
	"charger/models/constants/consequence"
	e "charger/models/constants/evidence"
	"charger/repositories/resources"
)

// standaloneBenignFrequency is the fixed BA1 stand-alone cutoff.
const standaloneBenignFrequency = 0.05

// Module is one independently invocable evidence rule. Evaluate is a
// pure function of the record, the shared read-only resources and the
// run configuration; it returns the outcome status plus an optional
// audit note. Modules never see each other's output.
type Module struct {
	Code     constants.EvidenceCode
	Scheme   constants.Scheme
	Evaluate func(v *models.VariantRecord, res *resources.ResourceSet, cfg *models.Config) (constants.EvidenceStatus, string)
}

// AcmgModules is the standards-body module catalogue, in reporting order.
func AcmgModules() []Module {
	return []Module{
		{Code: e.PVS1, Scheme: e.SchemeBoth, Evaluate: evaluatePVS1},
		{Code: e.PS1, Scheme: e.SchemeBoth, Evaluate: evaluatePS1},
		{Code: e.PM1, Scheme: e.SchemeBoth, Evaluate: evaluatePM1},
		{Code: e.PM2, Scheme: e.SchemeBoth, Evaluate: evaluatePM2},
		{Code: e.PP2, Scheme: e.SchemeBoth, Evaluate: evaluatePP2},
		{Code: e.BP1, Scheme: e.SchemeBoth, Evaluate: evaluateBP1},
		{Code: e.BS1, Scheme: e.SchemeBoth, Evaluate: evaluateBS1},
		{Code: e.BA1, Scheme: e.SchemeBoth, Evaluate: evaluateBA1},
	}
}

// ChargerModules is the extended-only catalogue: ClinVar concordance
// at four strengths. The extended aggregate additionally reuses every
// standards-body call, it never re-derives them.
func ChargerModules() []Module {
	return []Module{
		{Code: e.PSC1, Scheme: e.SchemeCharger, Evaluate: concordanceEvaluator(cls.Pathogenic)},
		{Code: e.PMC1, Scheme: e.SchemeCharger, Evaluate: concordanceEvaluator(cls.LikelyPathogenic)},
		{Code: e.BMC1, Scheme: e.SchemeCharger, Evaluate: concordanceEvaluator(cls.LikelyBenign)},
		{Code: e.BSC1, Scheme: e.SchemeCharger, Evaluate: concordanceEvaluator(cls.Benign)},
	}
}

// Registry indexes every module by its evidence code.
func Registry() map[constants.EvidenceCode]Module {
	registry := map[constants.EvidenceCode]Module{}
	for _, module := range AcmgModules() {
		registry[module.Code] = module
	}
	for _, module := range ChargerModules() {
		registry[module.Code] = module
	}
	return registry
}

// SupersededByOverride reports whether the database-annotation
// override replaces this module's contribution (the frequency and
// hotspot modules).
func SupersededByOverride(code constants.EvidenceCode) bool {
	switch code {
	case e.PM1, e.PM2, e.BS1, e.BA1:
		return true
	}
	return false
}

// ConcordanceCodeFor maps a database-asserted classification onto the
// evidence code the override synthesizes. Uncertain assertions
// synthesize nothing.
func ConcordanceCodeFor(class constants.Classification) (constants.EvidenceCode, bool) {
	switch class {
	case cls.Pathogenic:
		return e.PSC1, true
	case cls.LikelyPathogenic:
		return e.PMC1, true
	case cls.LikelyBenign:
		return e.BMC1, true
	case cls.Benign:
		return e.BSC1, true
	}
	return "", false
}

// PVS1: null (truncating) variant in a gene where loss of function is
// a known disease mechanism per the inheritance gene table.
func evaluatePVS1(v *models.VariantRecord, res *resources.ResourceSet, cfg *models.Config) (constants.EvidenceStatus, string) {
	if res.InheritanceGenes == nil {
		return e.SkippedMissingResource, "inheritance gene table not supplied"
	}
	if v.GeneSymbol == "" {
		return e.SkippedMalformedData, "record has no gene symbol"
	}
	if !consequence.IsTruncating(v.Consequence) {
		return e.NotMet, ""
	}
	if res.InheritanceGenes.LossOfFunctionGene(v.GeneSymbol, cfg.DiseaseSpecific, cfg.Disease) {
		return e.Met, fmt.Sprintf("truncating call in loss-of-function gene %s", v.GeneSymbol)
	}
	return e.NotMet, ""
}

// PS1: exact match in the known pathogenic variant set.
func evaluatePS1(v *models.VariantRecord, res *resources.ResourceSet, cfg *models.Config) (constants.EvidenceStatus, string) {
	if res.PathogenicVariants == nil {
		return e.SkippedMissingResource, "known pathogenic variants not supplied"
	}
	if res.PathogenicVariants.Contains(v.Key()) {
		return e.Met, "exact match in known pathogenic set"
	}
	return e.NotMet, ""
}

// PM1: position inside a mutational hotspot cluster.
func evaluatePM1(v *models.VariantRecord, res *resources.ResourceSet, cfg *models.Config) (constants.EvidenceStatus, string) {
	if res.HotspotClusters == nil {
		return e.SkippedMissingResource, "hotspot clusters not supplied"
	}
	if cluster, ok := res.HotspotClusters.Cluster(v.Chrom, v.Pos); ok {
		return e.Met, fmt.Sprintf("position in hotspot cluster %s", cluster)
	}
	return e.NotMet, ""
}

// PM2: reported population frequency below the rare threshold. An
// absent frequency is never inferred to be rare.
func evaluatePM2(v *models.VariantRecord, res *resources.ResourceSet, cfg *models.Config) (constants.EvidenceStatus, string) {
	if v.AlleleFrequency == nil {
		return e.NotMet, "no population frequency reported"
	}
	if *v.AlleleFrequency < cfg.RareThreshold {
		return e.Met, fmt.Sprintf("allele frequency %g below rare threshold %g", *v.AlleleFrequency, cfg.RareThreshold)
	}
	return e.NotMet, ""
}

// PP2: gene membership in the supporting-pathogenic gene list.
func evaluatePP2(v *models.VariantRecord, res *resources.ResourceSet, cfg *models.Config) (constants.EvidenceStatus, string) {
	if res.PP2Genes == nil {
		return e.SkippedMissingResource, "PP2 gene list not supplied"
	}
	if v.GeneSymbol == "" {
		return e.SkippedMalformedData, "record has no gene symbol"
	}
	if res.PP2Genes.Contains(v.GeneSymbol) {
		return e.Met, fmt.Sprintf("%s in PP2 gene list", v.GeneSymbol)
	}
	return e.NotMet, ""
}

// BP1: gene membership in the supporting-benign gene list.
func evaluateBP1(v *models.VariantRecord, res *resources.ResourceSet, cfg *models.Config) (constants.EvidenceStatus, string) {
	if res.BP1Genes == nil {
		return e.SkippedMissingResource, "BP1 gene list not supplied"
	}
	if v.GeneSymbol == "" {
		return e.SkippedMalformedData, "record has no gene symbol"
	}
	if res.BP1Genes.Contains(v.GeneSymbol) {
		return e.Met, fmt.Sprintf("%s in BP1 gene list", v.GeneSymbol)
	}
	return e.NotMet, ""
}

// BS1: frequency at or above the common threshold but below the BA1
// stand-alone cutoff. A frequency strictly between the rare and common
// thresholds fires no frequency evidence at all.
func evaluateBS1(v *models.VariantRecord, res *resources.ResourceSet, cfg *models.Config) (constants.EvidenceStatus, string) {
	if v.AlleleFrequency == nil {
		return e.NotMet, "no population frequency reported"
	}
	af := *v.AlleleFrequency
	if af >= cfg.CommonThreshold && af < standaloneBenignFrequency {
		return e.Met, fmt.Sprintf("allele frequency %g above common threshold %g", af, cfg.CommonThreshold)
	}
	return e.NotMet, ""
}

// BA1: frequency at or above the fixed stand-alone benign cutoff.
func evaluateBA1(v *models.VariantRecord, res *resources.ResourceSet, cfg *models.Config) (constants.EvidenceStatus, string) {
	if v.AlleleFrequency == nil {
		return e.NotMet, "no population frequency reported"
	}
	if *v.AlleleFrequency >= standaloneBenignFrequency {
		return e.Met, fmt.Sprintf("allele frequency %g at or above stand-alone cutoff %g", *v.AlleleFrequency, standaloneBenignFrequency)
	}
	return e.NotMet, ""
}

// concordanceEvaluator builds a ClinVar concordance evaluator firing
// when the table asserts exactly the target classification.
func concordanceEvaluator(target constants.Classification) func(*models.VariantRecord, *resources.ResourceSet, *models.Config) (constants.EvidenceStatus, string) {
	return func(v *models.VariantRecord, res *resources.ResourceSet, cfg *models.Config) (constants.EvidenceStatus, string) {
		if res.ClinVar == nil {
			return e.SkippedMissingResource, "ClinVar table not supplied"
		}

		class, found, err := res.ClinVar.Lookup(v.Chrom, v.Pos, v.Ref, v.Alt)
		if err != nil {
			return e.SkippedMalformedData, fmt.Sprintf("ClinVar lookup failed: %v", err)
		}
		if !found {
			return e.NotMet, ""
		}
		if class == target {
			return e.Met, fmt.Sprintf("ClinVar asserts %s", cls.ClassificationToString(class))
		}
		return e.NotMet, ""
	}
}
