package consequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromAnnotation(t *testing.T) {
	assert.Equal(t, Truncating, FromAnnotation("stop_gained"))
	assert.Equal(t, Truncating, FromAnnotation("frameshift_variant"))
	assert.Equal(t, Missense, FromAnnotation("missense_variant"))
	assert.Equal(t, Synonymous, FromAnnotation("synonymous_variant"))
	assert.Equal(t, Noncoding, FromAnnotation("intron_variant"))
	assert.Equal(t, Unknown, FromAnnotation(""))
	assert.Equal(t, Unknown, FromAnnotation("something_new"))
}

func TestFromAnnotationMultipleTerms(t *testing.T) {
	// only the leading (most severe) term decides
	assert.Equal(t, Truncating, FromAnnotation("stop_gained&splice_region_variant"))
	assert.Equal(t, Splice, FromAnnotation("splice_region_variant&intron_variant"))
}

func TestIsTruncating(t *testing.T) {
	assert.True(t, IsTruncating(Truncating))
	assert.False(t, IsTruncating(Missense))
	assert.False(t, IsTruncating(Unknown))
}
