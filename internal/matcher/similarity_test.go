package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLCSRatio(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"identical", "python", "python", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "python", "", 0.0},
		{"disjoint", "aws", "python", 0.0},
		{"exactly at threshold", "abcde", "abcdx", 0.8},
		{"close spellings", "postgresql", "postgres", 2.0 * 8 / 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, lcsRatio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestLCSRatioIsOrderSensitive(t *testing.T) {
	// Same character multiset, different order: far from identical.
	assert.Less(t, lcsRatio("abc", "cba"), 0.5)
}

func TestContainsEitherWay(t *testing.T) {
	assert.True(t, containsEitherWay("javascript", "java"))
	assert.True(t, containsEitherWay("java", "javascript"))
	assert.False(t, containsEitherWay("python", "ruby"))
}
