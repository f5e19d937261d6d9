package main

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"charger/models"
	"charger/services/output"
	"charger/services/runner"
	"charger/utils"
)

const version = "0.1.0"

const description = `CharGer (Characterization of Germline variants) interprets and predicts
the clinical pathogenicity of germline variants by evaluating ACMG and
CharGer evidence modules against an annotated VCF.`

func main() {
	// Gather environment variable defaults first; the optional config
	// file and the console flags override them in that order.
	var cfg models.Config
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	var (
		flagCfg              models.Config
		configPath           string
		acmgScoreOverride    string
		chargerScoreOverride string
	)

	cmd := &cobra.Command{
		Use:          "charger",
		Short:        "Classify germline variant pathogenicity",
		Long:         description,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := applyConfigFile(configPath, &cfg); err != nil {
					return err
				}
			}
			if err := applyChangedFlags(cmd, &flagCfg, &cfg); err != nil {
				return err
			}

			if cmd.Flags().Changed("override-acmg-score") {
				overrides, err := utils.ParseModuleScoreOverrides(acmgScoreOverride)
				if err != nil {
					return err
				}
				cfg.AcmgScoreOverrides = overrides
			}
			if cmd.Flags().Changed("override-charger-score") {
				overrides, err := utils.ParseModuleScoreOverrides(chargerScoreOverride)
				if err != nil {
					return err
				}
				cfg.ChargerScoreOverrides = overrides
			}

			if cfg.Input == "" {
				return fmt.Errorf("no input VCF configured (use --input)")
			}

			return run(&cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "Path to a YAML run configuration file")
	flags.StringVar(&flagCfg.Input, "input", "", "Path to the input VCF to be classified")
	flags.StringVar(&flagCfg.Output, "output", "", "Path to the CharGer output TSV (stdout when omitted)")

	flags.StringVar(&flagCfg.PathogenicVariantPath, "pathogenic-variant", "", "Path to the known pathogenic variants VCF")
	flags.StringVar(&flagCfg.HotspotClusterPath, "hotspot3d-cluster", "", "Path to the HotSpot3D clusters TSV")
	flags.BoolVar(&flagCfg.OverrideVariantInfo, "override-variant-info", false, "Override the variant info using the ClinVar description")
	flags.BoolVar(&flagCfg.IncludeVcfDetails, "include-vcf-details", false, "Include the VCF details in the output")

	flags.StringVar(&flagCfg.InheritanceGeneTablePath, "inheritance-gene-table", "",
		"Path to the inheritance gene table (columns: gene, disease, mode_of_inheritance); enables the PVS1 module")
	flags.BoolVar(&flagCfg.DiseaseSpecific, "disease-specific", false, "Enable disease specific inheritance-gene-table detection")
	flags.StringVar(&flagCfg.Disease, "disease", "", "Disease name for disease specific detection")
	flags.StringVar(&flagCfg.PP2GeneListPath, "PP2-gene-list", "", "Path to the PP2 gene list (one gene symbol per line)")
	flags.StringVar(&flagCfg.BP1GeneListPath, "BP1-gene-list", "", "Path to the BP1 gene list (one gene symbol per line)")
	flags.StringVar(&flagCfg.ClinVarTablePath, "clinvar-table", "", "Path to the SQLite indexed ClinVar table")

	flags.StringVar(&acmgScoreOverride, "override-acmg-score", "", "Override the default scoring of ACMG modules ('MODULE=SCORE MODULE=SCORE ...')")
	flags.StringVar(&chargerScoreOverride, "override-charger-score", "", "Override the default scoring of CharGer modules ('MODULE=SCORE MODULE=SCORE ...')")

	flags.Float64Var(&flagCfg.RareThreshold, "rare-threshold", cfg.RareThreshold, "Maximal allele frequency to be a rare variant")
	flags.Float64Var(&flagCfg.CommonThreshold, "common-threshold", cfg.CommonThreshold, "Minimal allele frequency to be a common variant")

	flags.IntVar(&flagCfg.MinPathogenicScore, "min-pathogenic-score", cfg.MinPathogenicScore, "Minimal total score for a variant to be pathogenic")
	flags.IntVar(&flagCfg.MinLikelyPathogenicScore, "min-likely-pathogenic-score", cfg.MinLikelyPathogenicScore, "Minimal total score for a variant to be likely pathogenic")
	flags.IntVar(&flagCfg.MaxLikelyBenignScore, "max-likely-benign-score", cfg.MaxLikelyBenignScore, "Maximal total score for a variant to be likely benign")
	flags.IntVar(&flagCfg.MaxBenignScore, "max-benign-score", cfg.MaxBenignScore, "Maximal total score for a variant to be benign")

	flags.IntVar(&flagCfg.Workers, "workers", cfg.Workers, "Concurrent variant evaluation workers")
	flags.BoolVar(&flagCfg.Debug, "debug", false, "Enable debug output")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// applyConfigFile overlays a YAML run configuration file onto the
// config. The file is decoded to a generic map first so only the keys
// it actually sets are applied.
func applyConfigFile(configPath string, cfg *models.Config) error {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("error reading config file %s: %v", configPath, err)
	}

	var values map[string]interface{}
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return fmt.Errorf("error parsing config file %s: %v", configPath, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "yaml",
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("error applying config file %s: %v", configPath, err)
	}
	return nil
}

// applyChangedFlags copies only the console flags the user actually
// set onto the config, so flags beat both the environment and the
// config file without clobbering either.
func applyChangedFlags(cmd *cobra.Command, flagCfg, cfg *models.Config) error {
	apply := map[string]func(){
		"input":                       func() { cfg.Input = flagCfg.Input },
		"output":                      func() { cfg.Output = flagCfg.Output },
		"pathogenic-variant":          func() { cfg.PathogenicVariantPath = flagCfg.PathogenicVariantPath },
		"hotspot3d-cluster":           func() { cfg.HotspotClusterPath = flagCfg.HotspotClusterPath },
		"override-variant-info":       func() { cfg.OverrideVariantInfo = flagCfg.OverrideVariantInfo },
		"include-vcf-details":         func() { cfg.IncludeVcfDetails = flagCfg.IncludeVcfDetails },
		"inheritance-gene-table":      func() { cfg.InheritanceGeneTablePath = flagCfg.InheritanceGeneTablePath },
		"disease-specific":            func() { cfg.DiseaseSpecific = flagCfg.DiseaseSpecific },
		"disease":                     func() { cfg.Disease = flagCfg.Disease },
		"PP2-gene-list":               func() { cfg.PP2GeneListPath = flagCfg.PP2GeneListPath },
		"BP1-gene-list":               func() { cfg.BP1GeneListPath = flagCfg.BP1GeneListPath },
		"clinvar-table":               func() { cfg.ClinVarTablePath = flagCfg.ClinVarTablePath },
		"rare-threshold":              func() { cfg.RareThreshold = flagCfg.RareThreshold },
		"common-threshold":            func() { cfg.CommonThreshold = flagCfg.CommonThreshold },
		"min-pathogenic-score":        func() { cfg.MinPathogenicScore = flagCfg.MinPathogenicScore },
		"min-likely-pathogenic-score": func() { cfg.MinLikelyPathogenicScore = flagCfg.MinLikelyPathogenicScore },
		"max-likely-benign-score":     func() { cfg.MaxLikelyBenignScore = flagCfg.MaxLikelyBenignScore },
		"max-benign-score":            func() { cfg.MaxBenignScore = flagCfg.MaxBenignScore },
		"workers":                     func() { cfg.Workers = flagCfg.Workers },
		"debug":                       func() { cfg.Debug = flagCfg.Debug },
	}

	for name, applyFlag := range apply {
		if cmd.Flags().Changed(name) {
			applyFlag()
		}
	}
	return nil
}

func run(cfg *models.Config) error {
	charger := runner.New(cfg)

	if err := charger.Setup(); err != nil {
		return err
	}
	defer charger.Resources.Close()

	if err := charger.RunAcmgModules(); err != nil {
		return err
	}
	if err := charger.RunChargerModules(); err != nil {
		return err
	}
	if err := charger.Score(); err != nil {
		return err
	}

	records, err := charger.Results()
	if err != nil {
		return err
	}

	if err := output.WriteResultsFile(cfg.Output, records, cfg.IncludeVcfDetails); err != nil {
		return err
	}
	output.PrintSummary(records)
	return nil
}
