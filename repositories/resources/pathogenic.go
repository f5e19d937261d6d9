package resources

import (
	"charger/repositories/vcf"
)

// PathogenicSet is the set of known pathogenic variant keys
// (chrom:pos:ref>alt), built once from a VCF and read-only afterwards.
type PathogenicSet struct {
	keys map[string]bool
}

func LoadPathogenicSet(filePath string) (*PathogenicSet, error) {
	records, err := vcf.ReadAnnotatedVcf(filePath)
	if err != nil {
		return nil, err
	}

	set := &PathogenicSet{keys: map[string]bool{}}
	for _, record := range records {
		set.keys[record.Key()] = true
	}
	return set, nil
}

func (ps *PathogenicSet) Contains(key string) bool {
	return ps.keys[key]
}

func (ps *PathogenicSet) Size() int {
	return len(ps.keys)
}
