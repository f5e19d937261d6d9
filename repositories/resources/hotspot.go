package resources

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"charger/models/constants/chromosome"
)

// HotspotTable maps chrom:pos positions onto their hotspot cluster id.
type HotspotTable struct {
	positions map[string]string
}

// LoadHotspotTable parses a hotspot cluster TSV with columns:
// cluster, gene, chromosome, position. A header row is detected by a
// non-numeric position column and skipped.
func LoadHotspotTable(filePath string) (*HotspotTable, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %v", filePath, err)
	}
	defer f.Close()

	table := &HotspotTable{positions: map[string]string{}}

	scanner := bufio.NewScanner(f)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		columns := strings.Split(line, "\t")
		if len(columns) < 4 {
			return nil, fmt.Errorf("%s line %d: expected 4 columns (cluster, gene, chromosome, position), got %d", filePath, lineNumber, len(columns))
		}

		pos, posErr := strconv.Atoi(strings.TrimSpace(columns[3]))
		if posErr != nil {
			if lineNumber == 1 {
				// header row
				continue
			}
			return nil, fmt.Errorf("%s line %d: invalid position '%s'", filePath, lineNumber, columns[3])
		}

		chrom := chromosome.Normalize(columns[2])
		table.positions[positionKey(chrom, pos)] = strings.TrimSpace(columns[0])
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, scanErr
	}

	return table, nil
}

// Cluster returns the cluster id covering the position, if any.
func (ht *HotspotTable) Cluster(chrom string, pos int) (string, bool) {
	cluster, ok := ht.positions[positionKey(chromosome.Normalize(chrom), pos)]
	return cluster, ok
}

func (ht *HotspotTable) Size() int {
	return len(ht.positions)
}

func positionKey(chrom string, pos int) string {
	return fmt.Sprintf("%s:%d", chrom, pos)
}
