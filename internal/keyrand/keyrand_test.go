package keyrand

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormal_Deterministic(t *testing.T) {
	key := New(42)
	a := Normal(key, 100)
	b := Normal(key, 100)
	assert.Equal(t, a, b, "same key must produce identical data")
}

func TestNormal_DifferentKeys(t *testing.T) {
	a := Normal(New(1), 100)
	b := Normal(New(2), 100)
	assert.NotEqual(t, a, b, "different keys must produce different data")
}

func TestNormal_OddLength(t *testing.T) {
	data := Normal(New(7), 5)
	require.Len(t, data, 5)
	for i, v := range data {
		assert.False(t, math.IsNaN(v), "data[%d] is NaN", i)
		assert.False(t, math.IsInf(v, 0), "data[%d] is Inf", i)
	}
}

func TestNormal_Moments(t *testing.T) {
	// Rough sanity check on mean and variance of a large sample.
	const n = 100000
	data := Normal(New(123), n)

	var sum float64
	for _, v := range data {
		sum += v
	}
	mean := sum / n

	var ss float64
	for _, v := range data {
		ss += (v - mean) * (v - mean)
	}
	variance := ss / n

	assert.InDelta(t, 0.0, mean, 0.02)
	assert.InDelta(t, 1.0, variance, 0.05)
}

func TestSplit_Independent(t *testing.T) {
	key := New(42)
	subs := key.Split(3)
	require.Len(t, subs, 3)

	seen := map[Key]bool{key: true}
	for _, s := range subs {
		assert.False(t, seen[s], "subkey %v collides", s)
		seen[s] = true
	}

	// Splitting again yields the same subkeys.
	assert.Equal(t, subs, key.Split(3))
}

func TestNormalVec_NormalMat(t *testing.T) {
	key := New(11)
	keys := key.Split(2)

	v := NormalVec(keys[0], 5)
	require.Equal(t, 5, v.Len())

	m := NormalMat(keys[1], 3, 4)
	r, c := m.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)

	// Vector and matrix streams come from different subkeys.
	assert.NotEqual(t, v.AtVec(0), m.At(0, 0))
}
