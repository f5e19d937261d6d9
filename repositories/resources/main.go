package resources

import (
	"fmt"
	"time"

	"charger/models"
)

// ResourceSet holds every optional reference resource for a run.
// A nil handle means the resource is unavailable, which is distinct
// from a supplied-but-empty resource; modules that depend on a nil
// handle report "skipped", never "not met".
type ResourceSet struct {
	PathogenicVariants *PathogenicSet
	HotspotClusters    *HotspotTable
	InheritanceGenes   *InheritanceTable
	PP2Genes           *GeneList
	BP1Genes           *GeneList
	ClinVar            *ClinVarTable

	// LoadFailures records supplied resources that could not be
	// parsed, keyed by resource name. A load failure disables the
	// dependent modules but never aborts the run.
	LoadFailures map[string]string
}

// LoadAll builds every resource named in the config. Absent paths are
// simply left nil. A supplied path that fails to parse is logged and
// recorded in LoadFailures, leaving the handle nil so the dependent
// modules skip.
func LoadAll(cfg *models.Config) *ResourceSet {
	set := &ResourceSet{LoadFailures: map[string]string{}}

	if cfg.PathogenicVariantPath != "" {
		fmt.Printf("[%s] - Loading known pathogenic variants from %s\n", time.Now(), cfg.PathogenicVariantPath)
		if pathogenic, err := LoadPathogenicSet(cfg.PathogenicVariantPath); err != nil {
			set.recordFailure("pathogenic-variant", err)
		} else {
			set.PathogenicVariants = pathogenic
		}
	}

	if cfg.HotspotClusterPath != "" {
		fmt.Printf("[%s] - Loading hotspot clusters from %s\n", time.Now(), cfg.HotspotClusterPath)
		if hotspots, err := LoadHotspotTable(cfg.HotspotClusterPath); err != nil {
			set.recordFailure("hotspot3d-cluster", err)
		} else {
			set.HotspotClusters = hotspots
		}
	}

	if cfg.InheritanceGeneTablePath != "" {
		fmt.Printf("[%s] - Loading inheritance gene table from %s\n", time.Now(), cfg.InheritanceGeneTablePath)
		if inheritanceTable, err := LoadInheritanceTable(cfg.InheritanceGeneTablePath); err != nil {
			set.recordFailure("inheritance-gene-table", err)
		} else {
			set.InheritanceGenes = inheritanceTable
		}
	}

	if cfg.PP2GeneListPath != "" {
		if pp2, err := LoadGeneList(cfg.PP2GeneListPath); err != nil {
			set.recordFailure("PP2-gene-list", err)
		} else {
			set.PP2Genes = pp2
		}
	}

	if cfg.BP1GeneListPath != "" {
		if bp1, err := LoadGeneList(cfg.BP1GeneListPath); err != nil {
			set.recordFailure("BP1-gene-list", err)
		} else {
			set.BP1Genes = bp1
		}
	}

	if cfg.ClinVarTablePath != "" {
		fmt.Printf("[%s] - Opening ClinVar table %s\n", time.Now(), cfg.ClinVarTablePath)
		if clinvar, err := OpenClinVarTable(cfg.ClinVarTablePath); err != nil {
			set.recordFailure("clinvar-table", err)
		} else {
			set.ClinVar = clinvar
		}
	}

	return set
}

func (rs *ResourceSet) recordFailure(name string, err error) {
	rs.LoadFailures[name] = err.Error()
	fmt.Printf("[%s] - WARNING - %s could not be loaded, dependent modules will be skipped: %v\n", time.Now(), name, err)
}

// Close releases resources backed by open handles (the ClinVar table).
func (rs *ResourceSet) Close() {
	if rs.ClinVar != nil {
		rs.ClinVar.Close()
	}
}
