package trends

import (
	"fmt"
	"math"
	"sort"

	"github.com/trendscope/trendscope/pkg/embeddings"
)

// ErrNotEnoughArticles is returned when the corpus is below the clustering
// minimum. No cluster rows are written in that case.
type ErrNotEnoughArticles struct {
	Got     int
	Minimum int
}

func (e *ErrNotEnoughArticles) Error() string {
	return fmt.Sprintf("Not enough articles (%d). Minimum: %d", e.Got, e.Minimum)
}

// ClustererConfig controls one clustering run.
type ClustererConfig struct {
	MinArticles        int
	MaxArticles        int
	MinClusterSize     int
	ReducedDims        int
	NeighborCount      int
	TopTerms           int
	Seed               int64
	NormalizeCentroids bool
}

// Cluster is one discovered topic.
type Cluster struct {
	TopicID        int
	Label          string
	TopTerms       []TermWeight
	Size           int
	MemberIndices  []int
	MemberIDs      []string
	Centroid       []float32
	CoherenceScore float64
}

// Outlier is one sub-density document.
type Outlier struct {
	Index             int
	DocumentID        string
	NearestTopicID    int
	EmbeddingDistance float64
	PotentialCategory string
}

// ClusteringResult is the full Stage 1 output.
type ClusteringResult struct {
	Clusters   []Cluster
	Outliers   []Outlier
	Labels     []int
	DroppedNaN int
}

// Clusterer runs the reduction + density clustering + term extraction block.
// It is pure CPU work; callers offload it to the compute pool.
type Clusterer struct {
	cfg ClustererConfig
}

// NewClusterer creates a Clusterer.
func NewClusterer(cfg ClustererConfig) *Clusterer {
	if cfg.MinArticles <= 0 {
		cfg.MinArticles = 30
	}
	if cfg.MinClusterSize < 2 {
		cfg.MinClusterSize = 5
	}
	if cfg.TopTerms <= 0 {
		cfg.TopTerms = 10
	}
	return &Clusterer{cfg: cfg}
}

// Cluster runs the full Stage 1 computation. vectors, payloads and ids are
// parallel slices.
func (c *Clusterer) Cluster(vectors [][]float32, payloads []embeddings.ArticlePayload, ids []string) (*ClusteringResult, error) {
	vectors, payloads, ids, dropped := dropNaNRows(vectors, payloads, ids)

	if len(vectors) < c.cfg.MinArticles {
		return nil, &ErrNotEnoughArticles{Got: len(vectors), Minimum: c.cfg.MinArticles}
	}
	if c.cfg.MaxArticles > 0 && len(vectors) > c.cfg.MaxArticles {
		vectors = vectors[:c.cfg.MaxArticles]
		payloads = payloads[:c.cfg.MaxArticles]
		ids = ids[:c.cfg.MaxArticles]
	}

	reduced := ReduceDimensions(vectors, reduceConfig{
		Dims:          c.cfg.ReducedDims,
		NeighborCount: c.cfg.NeighborCount,
		Seed:          c.cfg.Seed,
	})
	labels := DensityCluster(reduced, c.cfg.MinClusterSize)

	texts := make([]string, len(payloads))
	for i, p := range payloads {
		texts[i] = p.Title + " " + p.ContentText
	}
	termsByCluster := TopTermsPerCluster(texts, labels, c.cfg.TopTerms)

	clusters := buildClusters(vectors, ids, labels, termsByCluster, c.cfg.NormalizeCentroids)
	resolveLabelTies(clusters)

	outliers := detectOutliers(vectors, texts, ids, labels, clusters)

	return &ClusteringResult{
		Clusters:   clusters,
		Outliers:   outliers,
		Labels:     labels,
		DroppedNaN: dropped,
	}, nil
}

func dropNaNRows(vectors [][]float32, payloads []embeddings.ArticlePayload, ids []string) ([][]float32, []embeddings.ArticlePayload, []string, int) {
	keptV := vectors[:0:0]
	keptP := payloads[:0:0]
	keptI := ids[:0:0]
	dropped := 0
outer:
	for i, vec := range vectors {
		for _, v := range vec {
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				dropped++
				continue outer
			}
		}
		keptV = append(keptV, vec)
		keptP = append(keptP, payloads[i])
		keptI = append(keptI, ids[i])
	}
	return keptV, keptP, keptI, dropped
}

func buildClusters(vectors [][]float32, ids []string, labels []int, terms map[int][]TermWeight, normalizeCentroids bool) []Cluster {
	members := map[int][]int{}
	for i, l := range labels {
		if l != Noise {
			members[l] = append(members[l], i)
		}
	}

	topicIDs := make([]int, 0, len(members))
	for id := range members {
		topicIDs = append(topicIDs, id)
	}
	sort.Ints(topicIDs)

	clusters := make([]Cluster, 0, len(topicIDs))
	for _, topicID := range topicIDs {
		idxs := members[topicID]
		memberIDs := make([]string, len(idxs))
		for j, idx := range idxs {
			memberIDs[j] = ids[idx]
		}

		centroid := meanVector(vectors, idxs)
		if normalizeCentroids {
			centroid = embeddings.L2Normalize(centroid)
		}

		clusterTerms := terms[topicID]
		clusters = append(clusters, Cluster{
			TopicID:        topicID,
			Label:          LabelFromTerms(clusterTerms),
			TopTerms:       clusterTerms,
			Size:           len(idxs),
			MemberIndices:  idxs,
			MemberIDs:      memberIDs,
			Centroid:       centroid,
			CoherenceScore: coherence(vectors, idxs),
		})
	}
	return clusters
}

// resolveLabelTies disambiguates clusters that produced identical labels:
// the cluster with higher coherence (then lower topic_id) keeps the label,
// the others extend theirs with their next distinguishing term.
func resolveLabelTies(clusters []Cluster) {
	byLabel := map[string][]int{}
	for i, c := range clusters {
		byLabel[c.Label] = append(byLabel[c.Label], i)
	}
	for _, idxs := range byLabel {
		if len(idxs) < 2 {
			continue
		}
		sort.Slice(idxs, func(a, b int) bool {
			ca, cb := clusters[idxs[a]], clusters[idxs[b]]
			if ca.CoherenceScore != cb.CoherenceScore {
				return ca.CoherenceScore > cb.CoherenceScore
			}
			return ca.TopicID < cb.TopicID
		})
		for rank, i := range idxs[1:] {
			c := &clusters[i]
			next := 3 + rank
			if next < len(c.TopTerms) {
				c.Label = c.Label + " / " + c.TopTerms[next].Term
			} else {
				c.Label = fmt.Sprintf("%s (%d)", c.Label, c.TopicID)
			}
		}
	}
}

func detectOutliers(vectors [][]float32, texts, ids []string, labels []int, clusters []Cluster) []Outlier {
	var outliers []Outlier
	for i, l := range labels {
		if l != Noise {
			continue
		}
		nearest, dist := nearestCentroid(vectors[i], clusters)
		outliers = append(outliers, Outlier{
			Index:             i,
			DocumentID:        ids[i],
			NearestTopicID:    nearest,
			EmbeddingDistance: dist,
			PotentialCategory: CategorizeText(texts[i]),
		})
	}
	return outliers
}

func nearestCentroid(vec []float32, clusters []Cluster) (topicID int, distance float64) {
	topicID = Noise
	distance = math.Inf(1)
	for _, c := range clusters {
		d := euclideanDistance32(vec, c.Centroid)
		if d < distance {
			distance = d
			topicID = c.TopicID
		}
	}
	if math.IsInf(distance, 1) {
		distance = 0
	}
	return topicID, distance
}

func meanVector(vectors [][]float32, idxs []int) []float32 {
	if len(idxs) == 0 {
		return nil
	}
	dim := len(vectors[idxs[0]])
	sum := make([]float64, dim)
	for _, idx := range idxs {
		for j, v := range vectors[idx] {
			sum[j] += float64(v)
		}
	}
	mean := make([]float32, dim)
	for j := range sum {
		mean[j] = float32(sum[j] / float64(len(idxs)))
	}
	return mean
}

// coherence maps the mean pairwise cosine similarity of cluster members
// into [0,1]. Large clusters are sampled to keep the pass quadratic-bounded.
func coherence(vectors [][]float32, idxs []int) float64 {
	const sampleCap = 200
	if len(idxs) < 2 {
		return 1.0
	}
	if len(idxs) > sampleCap {
		idxs = idxs[:sampleCap]
	}

	var sum float64
	var pairs int
	for a := 0; a < len(idxs); a++ {
		for b := a + 1; b < len(idxs); b++ {
			sum += CosineSimilarity32(vectors[idxs[a]], vectors[idxs[b]])
			pairs++
		}
	}
	mean := sum / float64(pairs)
	return (mean + 1) / 2
}

// CosineSimilarity32 computes cosine similarity between two float32 vectors.
func CosineSimilarity32(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func euclideanDistance32(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
