package resources

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"charger/models/constants"
	"charger/models/constants/chromosome"
	"charger/models/constants/classification"
)

// ClinVarTable is the indexed pathogenicity annotation table, backed
// by a SQLite database with a `clinvar` table keyed by exact variant
// identity: (chrom, pos, ref, alt, clinical_significance).
type ClinVarTable struct {
	db     *sql.DB
	lookup *sql.Stmt
}

func OpenClinVarTable(dbPath string) (*ClinVarTable, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening ClinVar table %s: %v", dbPath, err)
	}

	// verify the expected table exists up front, before any variant
	// is processed
	var ignored string
	err = db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'clinvar'",
	).Scan(&ignored)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%s has no 'clinvar' table: %v", dbPath, err)
	}

	lookup, err := db.Prepare(
		"SELECT clinical_significance FROM clinvar WHERE chrom = ? AND pos = ? AND ref = ? AND alt = ?",
	)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &ClinVarTable{db: db, lookup: lookup}, nil
}

// Lookup returns the asserted classification for the exact variant.
// The second return is false when the table has no row for it.
func (ct *ClinVarTable) Lookup(chrom string, pos int, ref, alt string) (constants.Classification, bool, error) {
	var significance string
	err := ct.lookup.QueryRow(chromosome.Normalize(chrom), pos, ref, alt).Scan(&significance)
	if err == sql.ErrNoRows {
		return classification.Uncertain, false, nil
	}
	if err != nil {
		return classification.Uncertain, false, err
	}
	return classification.FromAssertion(significance), true, nil
}

func (ct *ClinVarTable) Close() {
	if ct.lookup != nil {
		ct.lookup.Close()
	}
	if ct.db != nil {
		ct.db.Close()
	}
}
