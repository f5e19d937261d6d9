package zygosity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromGenotype(t *testing.T) {
	assert.Equal(t, Heterozygous, FromGenotype("0/1"))
	assert.Equal(t, Heterozygous, FromGenotype("1|0"))
	assert.Equal(t, HomozygousAlternate, FromGenotype("1/1"))
	assert.Equal(t, HomozygousAlternate, FromGenotype("2|2"))
	assert.Equal(t, HomozygousReference, FromGenotype("0/0"))
	assert.Equal(t, Reference, FromGenotype("0"))
	assert.Equal(t, Alternate, FromGenotype("1"))
	assert.Equal(t, Unknown, FromGenotype("./."))
	assert.Equal(t, Unknown, FromGenotype(""))
}
