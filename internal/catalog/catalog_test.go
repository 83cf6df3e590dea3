package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityOf(t *testing.T) {
	// Polarity-based correction outranks everything; the anatomically-guided
	// fallback always comes last.
	ranks := map[string]int{
		TypeEPI:       0,
		TypeFieldmap:  1,
		TypePhaseDiff: 2,
		TypeSyn:       3,
	}
	for tag, want := range ranks {
		rank, ok := PriorityOf(tag)
		require.True(t, ok, "tag %q must be known", tag)
		assert.Equal(t, want, rank, "tag %q", tag)
	}

	_, ok := PriorityOf("unsupported")
	assert.False(t, ok)
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown(TypeEPI))
	assert.True(t, IsKnown(TypeSyn))
	assert.False(t, IsKnown(""))
	assert.False(t, IsKnown("t2w"))
}

func TestRequiredInputs(t *testing.T) {
	assert.Equal(t, []string{"epi"}, RequiredInputs(TypeEPI))
	assert.Equal(t, []string{"fieldmap", "magnitude"}, RequiredInputs(TypeFieldmap))
	assert.Equal(t, []string{"phasediff"}, RequiredInputs(TypePhaseDiff))
	assert.Empty(t, RequiredInputs(TypeSyn), "the fallback needs no acquisition of its own")
	assert.Empty(t, RequiredInputs("unsupported"))
}
