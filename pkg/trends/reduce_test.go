package trends

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceDimensions_Shape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	vectors := blob(rng, 20, center(16, 5), 1.0)

	reduced := ReduceDimensions(vectors, reduceConfig{Dims: 5, NeighborCount: 4, Seed: 42})
	require.Len(t, reduced, 20)
	for _, row := range reduced {
		assert.Len(t, row, 5)
	}
}

func TestReduceDimensions_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	vectors := blob(rng, 15, center(12, 3), 1.0)

	first := ReduceDimensions(vectors, reduceConfig{Dims: 4, NeighborCount: 5, Seed: 7})
	second := ReduceDimensions(vectors, reduceConfig{Dims: 4, NeighborCount: 5, Seed: 7})
	assert.Equal(t, first, second, "same seed must reproduce the projection")
}

func TestReduceDimensions_DimsClampedToInput(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	vectors := blob(rng, 10, center(3, 1), 0.5)

	reduced := ReduceDimensions(vectors, reduceConfig{Dims: 8, NeighborCount: 3, Seed: 1})
	require.Len(t, reduced, 10)
	for _, row := range reduced {
		assert.Len(t, row, 3, "target dims cannot exceed the input dimensionality")
	}
}

func TestReduceDimensions_PreservesSeparation(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	vectors := append(
		blob(rng, 10, axisVec(0, 20), 0.2),
		blob(rng, 10, axisVec(1, 20), 0.2)...,
	)

	reduced := ReduceDimensions(vectors, reduceConfig{Dims: 2, NeighborCount: 5, Seed: 42})

	// Every within-blob distance stays below every cross-blob distance.
	var maxWithin, minAcross float64
	minAcross = -1
	for i := 0; i < 20; i++ {
		for j := i + 1; j < 20; j++ {
			d := euclideanSq(reduced[i], reduced[j])
			sameBlob := (i < 10) == (j < 10)
			if sameBlob && d > maxWithin {
				maxWithin = d
			}
			if !sameBlob && (minAcross < 0 || d < minAcross) {
				minAcross = d
			}
		}
	}
	assert.Less(t, maxWithin, minAcross)
}

func TestReduceDimensions_Empty(t *testing.T) {
	assert.Nil(t, ReduceDimensions(nil, reduceConfig{Dims: 5}))
}
