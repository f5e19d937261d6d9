package models

type Config struct {
	Debug bool `envconfig:"CHARGER_DEBUG" yaml:"debug"`

	Input  string `envconfig:"CHARGER_INPUT" yaml:"input"`
	Output string `envconfig:"CHARGER_OUTPUT" yaml:"output"`

	// optional reference resources; empty string means "not supplied"
	PathogenicVariantPath    string `envconfig:"CHARGER_PATHOGENIC_VARIANT" yaml:"pathogenic_variant"`
	HotspotClusterPath       string `envconfig:"CHARGER_HOTSPOT_CLUSTER" yaml:"hotspot_cluster"`
	InheritanceGeneTablePath string `envconfig:"CHARGER_INHERITANCE_GENE_TABLE" yaml:"inheritance_gene_table"`
	PP2GeneListPath          string `envconfig:"CHARGER_PP2_GENE_LIST" yaml:"pp2_gene_list"`
	BP1GeneListPath          string `envconfig:"CHARGER_BP1_GENE_LIST" yaml:"bp1_gene_list"`
	ClinVarTablePath         string `envconfig:"CHARGER_CLINVAR_TABLE" yaml:"clinvar_table"`

	// feature flags
	OverrideVariantInfo bool   `envconfig:"CHARGER_OVERRIDE_VARIANT_INFO" yaml:"override_variant_info"`
	DiseaseSpecific     bool   `envconfig:"CHARGER_DISEASE_SPECIFIC" yaml:"disease_specific"`
	Disease             string `envconfig:"CHARGER_DISEASE" yaml:"disease"`
	IncludeVcfDetails   bool   `envconfig:"CHARGER_INCLUDE_VCF_DETAILS" yaml:"include_vcf_details"`

	// allele frequency thresholds
	RareThreshold   float64 `envconfig:"CHARGER_RARE_THRESHOLD" default:"0.0005" yaml:"rare_threshold"`
	CommonThreshold float64 `envconfig:"CHARGER_COMMON_THRESHOLD" default:"0.005" yaml:"common_threshold"`

	// classification score thresholds
	MinPathogenicScore       int `envconfig:"CHARGER_MIN_PATHOGENIC_SCORE" default:"9" yaml:"min_pathogenic_score"`
	MinLikelyPathogenicScore int `envconfig:"CHARGER_MIN_LIKELY_PATHOGENIC_SCORE" default:"5" yaml:"min_likely_pathogenic_score"`
	MaxLikelyBenignScore     int `envconfig:"CHARGER_MAX_LIKELY_BENIGN_SCORE" default:"-4" yaml:"max_likely_benign_score"`
	MaxBenignScore           int `envconfig:"CHARGER_MAX_BENIGN_SCORE" default:"-8" yaml:"max_benign_score"`

	// partial evidence-code -> points overrides, validated at setup
	AcmgScoreOverrides    map[string]int `yaml:"acmg_score_overrides"`
	ChargerScoreOverrides map[string]int `yaml:"charger_score_overrides"`

	// per-variant evaluation fan-out
	Workers int `envconfig:"CHARGER_WORKERS" default:"4" yaml:"workers"`
}
