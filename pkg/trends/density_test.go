package trends

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDensityCluster_TwoGroupsAndNoise(t *testing.T) {
	// Two tight 2D groups far apart, plus one isolated point.
	points := [][]float64{
		// group around (0, 0) — 5 points
		{0, 0}, {0.1, 0}, {0, 0.1}, {0.1, 0.1}, {0.05, 0.05},
		// group around (10, 10) — 6 points
		{10, 10}, {10.1, 10}, {10, 10.1}, {10.1, 10.1}, {9.9, 10}, {10, 9.9},
		// isolated
		{50, 50},
	}

	labels := DensityCluster(points, 3)

	// Largest group gets label 0 after renumbering.
	for i := 5; i < 11; i++ {
		assert.Equal(t, 0, labels[i], "point %d should be in the larger cluster", i)
	}
	for i := 0; i < 5; i++ {
		assert.Equal(t, 1, labels[i], "point %d should be in the smaller cluster", i)
	}
	assert.Equal(t, Noise, labels[11], "isolated point should be noise")
}

func TestDensityCluster_CoincidentPoints(t *testing.T) {
	points := [][]float64{{1, 1}, {1, 1}, {1, 1}, {1, 1}}
	labels := DensityCluster(points, 2)
	for i, l := range labels {
		assert.Equal(t, 0, l, "coincident point %d should share one cluster", i)
	}
}

func TestDensityCluster_Empty(t *testing.T) {
	assert.Empty(t, DensityCluster(nil, 5))
}

func TestDensityCluster_DissolvesSmallGroups(t *testing.T) {
	// A pair of close points cannot reach minClusterSize 3: noise.
	points := [][]float64{
		{0, 0}, {0.1, 0},
		{20, 20}, {20.1, 20}, {20, 20.1}, {20.1, 20.1},
	}
	labels := DensityCluster(points, 3)

	assert.Equal(t, Noise, labels[0])
	assert.Equal(t, Noise, labels[1])
	for i := 2; i < 6; i++ {
		assert.Equal(t, 0, labels[i])
	}
}
