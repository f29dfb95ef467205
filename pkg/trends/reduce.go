package trends

import (
	"math"
	"math/rand"
	"sort"
)

// reduceConfig controls the neighborhood-preserving projection.
type reduceConfig struct {
	Dims          int
	NeighborCount int
	Iterations    int
	Seed          int64
}

// ReduceDimensions projects high-dimensional embeddings down to cfg.Dims
// while preserving local neighborhoods: a PCA initialization followed by
// nearest-neighbor attraction iterations. Deterministic for a fixed seed.
func ReduceDimensions(embeddings [][]float32, cfg reduceConfig) [][]float64 {
	n := len(embeddings)
	if n == 0 {
		return nil
	}
	dims := cfg.Dims
	if dims <= 0 {
		dims = 5
	}
	if dims > len(embeddings[0]) {
		dims = len(embeddings[0])
	}

	matrix := toFloat64(embeddings)
	projected := pcaProject(matrix, dims, cfg.Seed)

	k := cfg.NeighborCount
	if k <= 0 {
		k = 15
	}
	if k >= n {
		k = n - 1
	}
	if k < 1 {
		return projected
	}

	neighbors := nearestNeighbors(matrix, k)

	iterations := cfg.Iterations
	if iterations <= 0 {
		iterations = 50
	}

	// Attraction passes: pull each point toward the centroid of its
	// original-space neighbors, with a decaying step size.
	for iter := 0; iter < iterations; iter++ {
		step := 0.1 * (1.0 - float64(iter)/float64(iterations))
		next := make([][]float64, n)
		for i := range projected {
			target := make([]float64, dims)
			for _, j := range neighbors[i] {
				for d := 0; d < dims; d++ {
					target[d] += projected[j][d]
				}
			}
			point := make([]float64, dims)
			for d := 0; d < dims; d++ {
				mean := target[d] / float64(k)
				point[d] = projected[i][d] + step*(mean-projected[i][d])
			}
			next[i] = point
		}
		projected = next
	}
	return projected
}

func toFloat64(embeddings [][]float32) [][]float64 {
	out := make([][]float64, len(embeddings))
	for i, vec := range embeddings {
		row := make([]float64, len(vec))
		for j, v := range vec {
			row[j] = float64(v)
		}
		out[i] = row
	}
	return out
}

// pcaProject computes the top-k principal components by power iteration
// with deflation and projects the centered data onto them.
func pcaProject(matrix [][]float64, k int, seed int64) [][]float64 {
	n := len(matrix)
	d := len(matrix[0])
	rng := rand.New(rand.NewSource(seed))

	// Center.
	mean := make([]float64, d)
	for _, row := range matrix {
		for j, v := range row {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= float64(n)
	}
	centered := make([][]float64, n)
	for i, row := range matrix {
		c := make([]float64, d)
		for j, v := range row {
			c[j] = v - mean[j]
		}
		centered[i] = c
	}

	components := make([][]float64, 0, k)
	work := make([][]float64, n)
	for i := range centered {
		work[i] = append([]float64(nil), centered[i]...)
	}

	for comp := 0; comp < k; comp++ {
		vec := make([]float64, d)
		for j := range vec {
			vec[j] = rng.NormFloat64()
		}
		normalizeInPlace(vec)

		for iter := 0; iter < 30; iter++ {
			// v ← Xᵀ X v
			scores := make([]float64, n)
			for i, row := range work {
				scores[i] = dot(row, vec)
			}
			next := make([]float64, d)
			for i, row := range work {
				for j, v := range row {
					next[j] += scores[i] * v
				}
			}
			if normalizeInPlace(next) == 0 {
				break
			}
			vec = next
		}
		components = append(components, vec)

		// Deflate.
		for i, row := range work {
			score := dot(row, vec)
			for j := range row {
				work[i][j] -= score * vec[j]
			}
		}
	}

	projected := make([][]float64, n)
	for i, row := range centered {
		p := make([]float64, len(components))
		for c, comp := range components {
			p[c] = dot(row, comp)
		}
		projected[i] = p
	}
	return projected
}

// nearestNeighbors returns the k nearest neighbor indices of each row by
// Euclidean distance. Quadratic, bounded by max_articles upstream.
func nearestNeighbors(matrix [][]float64, k int) [][]int {
	n := len(matrix)
	neighbors := make([][]int, n)
	type distIdx struct {
		dist float64
		idx  int
	}
	for i := range matrix {
		dists := make([]distIdx, 0, n-1)
		for j := range matrix {
			if i == j {
				continue
			}
			dists = append(dists, distIdx{euclideanSq(matrix[i], matrix[j]), j})
		}
		sort.Slice(dists, func(a, b int) bool { return dists[a].dist < dists[b].dist })
		idxs := make([]int, 0, k)
		for _, di := range dists[:k] {
			idxs = append(idxs, di.idx)
		}
		neighbors[i] = idxs
	}
	return neighbors
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func euclideanSq(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func normalizeInPlace(vec []float64) float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return 0
	}
	for i := range vec {
		vec[i] /= norm
	}
	return norm
}
