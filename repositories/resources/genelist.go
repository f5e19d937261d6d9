package resources

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// GeneList is a set of gene symbols, one symbol per line on disk.
type GeneList struct {
	symbols map[string]bool
}

func LoadGeneList(filePath string) (*GeneList, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %v", filePath, err)
	}
	defer f.Close()

	list := &GeneList{symbols: map[string]bool{}}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		symbol := strings.TrimSpace(scanner.Text())
		if symbol == "" || strings.HasPrefix(symbol, "#") {
			continue
		}
		list.symbols[symbol] = true
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, scanErr
	}

	return list, nil
}

func (gl *GeneList) Contains(symbol string) bool {
	return gl.symbols[symbol]
}

func (gl *GeneList) Size() int {
	return len(gl.symbols)
}
