package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSeed_KnownValues(t *testing.T) {
	// First 16 hex chars of sha256("lj-ai-maths-v1:<age>:<year>:<n>").
	cases := []struct {
		age, year, n int
		want         string
	}{
		{8, 3, 10, "a620172f7d3d6563"},
		{7, 2, 10, "5a3cfb7cb250785a"},
		{8, 3, 5, "1e6d871284baa836"},
		{9, 4, 10, "b41e11f99da1cb53"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ComputeSeed(tc.age, tc.year, tc.n))
	}
}

func TestComputeSeed_Deterministic(t *testing.T) {
	first := ComputeSeed(6, 1, 10)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ComputeSeed(6, 1, 10))
	}
	assert.Len(t, first, 16)
}

func TestComputeSeed_InputSensitivity(t *testing.T) {
	base := ComputeSeed(8, 3, 10)
	assert.NotEqual(t, base, ComputeSeed(9, 3, 10))
	assert.NotEqual(t, base, ComputeSeed(8, 4, 10))
	assert.NotEqual(t, base, ComputeSeed(8, 3, 11))
}
