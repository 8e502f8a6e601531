package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_SameSeedSameDraws(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntRange(1000, 9999), b.IntRange(1000, 9999))
		assert.Equal(t, a.Uniform(0.8, 1.4), b.Uniform(0.8, 1.4))
	}
}

func TestSource_Ranges(t *testing.T) {
	s := New(7)

	for i := 0; i < 1000; i++ {
		n := s.IntRange(2, 5)
		assert.GreaterOrEqual(t, n, 2)
		assert.LessOrEqual(t, n, 5)

		f := s.Uniform(-0.2, 0.3)
		assert.GreaterOrEqual(t, f, -0.2)
		assert.Less(t, f, 0.3)
	}

	assert.Equal(t, 3, s.IntRange(3, 3))
}

func TestSample(t *testing.T) {
	s := New(1)
	items := []string{"a", "b", "c", "d", "e", "f"}

	got := Sample(s, items, 4)
	assert.Len(t, got, 4)

	seen := map[string]bool{}
	for _, v := range got {
		assert.Contains(t, items, v)
		assert.False(t, seen[v], "duplicate %s", v)
		seen[v] = true
	}

	assert.Len(t, Sample(s, items, 10), len(items))
}

func TestChance_Extremes(t *testing.T) {
	s := New(3)
	for i := 0; i < 50; i++ {
		assert.False(t, s.Chance(0))
		assert.True(t, s.Chance(1))
	}
}
