package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromAssertion(t *testing.T) {
	assert.Equal(t, Pathogenic, FromAssertion("Pathogenic"))
	assert.Equal(t, LikelyPathogenic, FromAssertion("Likely_pathogenic"))
	assert.Equal(t, LikelyPathogenic, FromAssertion("likely pathogenic"))
	assert.Equal(t, LikelyBenign, FromAssertion("Likely benign"))
	assert.Equal(t, Benign, FromAssertion("benign"))
	assert.Equal(t, Uncertain, FromAssertion("Uncertain_significance"))
	assert.Equal(t, Uncertain, FromAssertion("Conflicting_interpretations_of_pathogenicity"))
	assert.Equal(t, Uncertain, FromAssertion(""))
}

func TestClassificationToString(t *testing.T) {
	assert.Equal(t, "PATHOGENIC", ClassificationToString(Pathogenic))
	assert.Equal(t, "UNCERTAIN_SIGNIFICANCE", ClassificationToString(Uncertain))
}
