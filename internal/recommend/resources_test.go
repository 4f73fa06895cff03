package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCurated(t *testing.T) {
	bundle := Lookup("Python")

	assert.Equal(t, "Python", bundle.Skill, "bundle carries the caller's spelling")
	assert.Equal(t, "Programming Languages", bundle.Category)
	require.NotEmpty(t, bundle.Resources)
	for _, r := range bundle.Resources {
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.URL)
	}
}

func TestLookupNormalizesSpelling(t *testing.T) {
	// "Node.JS" and "NodeJS" normalize to the same catalog key.
	a := Lookup("Node.JS")
	b := Lookup("NodeJS")

	assert.Equal(t, "Web Technologies", a.Category)
	assert.Equal(t, a.Resources, b.Resources)
}

func TestLookupUnknownSkillFallsBack(t *testing.T) {
	bundle := Lookup("COBOL")

	assert.Equal(t, "COBOL", bundle.Skill)
	assert.Equal(t, "General", bundle.Category)
	require.Len(t, bundle.Resources, 2)
	assert.Contains(t, bundle.Resources[0].URL, "google.com/search")
	assert.Contains(t, bundle.Resources[0].URL, "COBOL+tutorial")
	assert.True(t, bundle.Resources[0].Free)
}

func TestLookupFallbackEscapesQuery(t *testing.T) {
	bundle := Lookup("c++ templates")
	assert.NotContains(t, bundle.Resources[0].URL, " ")
	assert.Contains(t, bundle.Resources[0].URL, "c%2B%2B")
}
