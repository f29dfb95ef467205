package trends

import (
	"math"
	"sort"
)

// Noise is the label assigned to sub-density points.
const Noise = -1

// DensityCluster labels points by density reachability. minClusterSize is
// both the core-point threshold and the minimum size a cluster must reach;
// smaller groups are dissolved into noise. The radius is derived from the
// k-distance distribution so callers never tune an epsilon by hand.
// Labels are renumbered 0..K-1 in descending cluster-size order.
func DensityCluster(points [][]float64, minClusterSize int) []int {
	n := len(points)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = Noise
	}
	if n == 0 {
		return labels
	}
	if minClusterSize < 2 {
		minClusterSize = 2
	}

	eps := estimateRadius(points, minClusterSize)
	if eps == 0 {
		// All points coincide: one cluster.
		for i := range labels {
			labels[i] = 0
		}
		return labels
	}

	epsSq := eps * eps
	adjacency := buildAdjacency(points, epsSq)

	// Core points have at least minClusterSize points (incl. self) in range.
	core := make([]bool, n)
	for i := range points {
		core[i] = len(adjacency[i])+1 >= minClusterSize
	}

	// Expand clusters from unvisited core points.
	next := 0
	visited := make([]bool, n)
	for i := range points {
		if visited[i] || !core[i] {
			continue
		}
		queue := []int{i}
		visited[i] = true
		labels[i] = next
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			if !core[p] {
				continue
			}
			for _, q := range adjacency[p] {
				if labels[q] == Noise {
					labels[q] = next
				}
				if !visited[q] {
					visited[q] = true
					queue = append(queue, q)
				}
			}
		}
		next++
	}

	dissolveSmall(labels, minClusterSize)
	renumberBySize(labels)
	return labels
}

// estimateRadius derives the density radius from the distribution of
// k-nearest-neighbor distances: the median k-distance scaled up slightly so
// genuinely dense regions connect.
func estimateRadius(points [][]float64, k int) float64 {
	n := len(points)
	if k >= n {
		k = n - 1
	}
	if k < 1 {
		return 0
	}

	kDists := make([]float64, 0, n)
	for i := range points {
		dists := make([]float64, 0, n-1)
		for j := range points {
			if i == j {
				continue
			}
			dists = append(dists, euclideanSq(points[i], points[j]))
		}
		sort.Float64s(dists)
		kDists = append(kDists, math.Sqrt(dists[k-1]))
	}
	sort.Float64s(kDists)
	return kDists[len(kDists)/2] * 1.2
}

func buildAdjacency(points [][]float64, epsSq float64) [][]int {
	n := len(points)
	adjacency := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if euclideanSq(points[i], points[j]) <= epsSq {
				adjacency[i] = append(adjacency[i], j)
				adjacency[j] = append(adjacency[j], i)
			}
		}
	}
	return adjacency
}

func dissolveSmall(labels []int, minClusterSize int) {
	sizes := map[int]int{}
	for _, l := range labels {
		if l != Noise {
			sizes[l]++
		}
	}
	for i, l := range labels {
		if l != Noise && sizes[l] < minClusterSize {
			labels[i] = Noise
		}
	}
}

// renumberBySize relabels clusters 0..K-1 by descending size, ties broken by
// the original label for determinism.
func renumberBySize(labels []int) {
	sizes := map[int]int{}
	for _, l := range labels {
		if l != Noise {
			sizes[l]++
		}
	}
	old := make([]int, 0, len(sizes))
	for l := range sizes {
		old = append(old, l)
	}
	sort.Slice(old, func(a, b int) bool {
		if sizes[old[a]] != sizes[old[b]] {
			return sizes[old[a]] > sizes[old[b]]
		}
		return old[a] < old[b]
	})
	remap := make(map[int]int, len(old))
	for newLabel, oldLabel := range old {
		remap[oldLabel] = newLabel
	}
	for i, l := range labels {
		if l != Noise {
			labels[i] = remap[l]
		}
	}
}
