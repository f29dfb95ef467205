package trends

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendscope/trendscope/pkg/embeddings"
)

const testDim = 8

// blob generates n points around a center with small gaussian noise.
func blob(rng *rand.Rand, n int, center []float32, noise float64) [][]float32 {
	points := make([][]float32, n)
	for i := range points {
		vec := make([]float32, len(center))
		for j, c := range center {
			vec[j] = c + float32(rng.NormFloat64()*noise)
		}
		points[i] = vec
	}
	return points
}

func center(dim int, first float32) []float32 {
	c := make([]float32, dim)
	c[0] = first
	return c
}

func axisVec(axis int, val float32) []float32 {
	c := make([]float32, testDim)
	c[axis] = val
	return c
}

// twoTopicCorpus builds two well-separated topic blobs with matching texts.
// Both centers sit away from the origin so within-blob cosine similarity is
// meaningful.
func twoTopicCorpus(sizeA, sizeB int) ([][]float32, []embeddings.ArticlePayload, []string) {
	rng := rand.New(rand.NewSource(7))
	vectors := append(
		blob(rng, sizeA, axisVec(1, 10), 0.1),
		blob(rng, sizeB, axisVec(0, 10), 0.1)...,
	)

	payloads := make([]embeddings.ArticlePayload, 0, sizeA+sizeB)
	ids := make([]string, 0, sizeA+sizeB)
	for i := 0; i < sizeA; i++ {
		payloads = append(payloads, embeddings.ArticlePayload{
			Domain:      "health.example.com",
			Title:       "vaccine clinical trial",
			ContentText: "hospital patient treatment vaccine",
		})
		ids = append(ids, fmt.Sprintf("health-%d", i))
	}
	for i := 0; i < sizeB; i++ {
		payloads = append(payloads, embeddings.ArticlePayload{
			Domain:      "tech.example.com",
			Title:       "startup funding round",
			ContentText: "venture capital startup software",
		})
		ids = append(ids, fmt.Sprintf("tech-%d", i))
	}
	return vectors, payloads, ids
}

func testClusterer() *Clusterer {
	return NewClusterer(ClustererConfig{
		MinArticles:        30,
		MinClusterSize:     5,
		ReducedDims:        5,
		NeighborCount:      10,
		TopTerms:           10,
		Seed:               42,
		NormalizeCentroids: true,
	})
}

func TestClusterer_NotEnoughArticles(t *testing.T) {
	vectors, payloads, ids := twoTopicCorpus(15, 14)

	_, err := testClusterer().Cluster(vectors, payloads, ids)
	require.Error(t, err)

	var notEnough *ErrNotEnoughArticles
	require.ErrorAs(t, err, &notEnough)
	assert.Equal(t, 29, notEnough.Got)
	assert.Equal(t, "Not enough articles (29). Minimum: 30", err.Error())
}

func TestClusterer_NaNRowsDroppedBeforeMinimumCheck(t *testing.T) {
	vectors, payloads, ids := twoTopicCorpus(15, 15)
	vectors[3][2] = float32(math.NaN())

	_, err := testClusterer().Cluster(vectors, payloads, ids)
	var notEnough *ErrNotEnoughArticles
	require.ErrorAs(t, err, &notEnough)
	assert.Equal(t, 29, notEnough.Got, "NaN row must be excluded from the count")
}

func TestClusterer_TwoTopics(t *testing.T) {
	vectors, payloads, ids := twoTopicCorpus(25, 20)

	result, err := testClusterer().Cluster(vectors, payloads, ids)
	require.NoError(t, err)
	require.Len(t, result.Clusters, 2)
	assert.Zero(t, result.DroppedNaN)

	// Labels are renumbered by descending size: the 25-member health blob
	// is topic 0.
	c0, c1 := result.Clusters[0], result.Clusters[1]
	assert.Equal(t, 0, c0.TopicID)
	assert.Equal(t, 25, c0.Size)
	assert.Equal(t, 1, c1.TopicID)
	assert.Equal(t, 20, c1.Size)

	assert.Contains(t, c0.MemberIDs, "health-0")
	assert.Contains(t, c1.MemberIDs, "tech-0")
	assert.Len(t, c0.MemberIDs, c0.Size)

	// Labels come from the class-distinguishing terms.
	assert.NotEqual(t, c0.Label, c1.Label)
	assert.NotEmpty(t, c0.TopTerms)

	// Normalized centroids have unit length.
	for _, c := range result.Clusters {
		var sum float64
		for _, v := range c.Centroid {
			sum += float64(v) * float64(v)
		}
		assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-5)
	}

	// Coherence of a tight blob is close to 1.
	assert.Greater(t, c0.CoherenceScore, 0.8)
	assert.LessOrEqual(t, c0.CoherenceScore, 1.0)

	assert.Len(t, result.Labels, 45)
}

func TestClusterer_MaxArticlesTruncates(t *testing.T) {
	vectors, payloads, ids := twoTopicCorpus(25, 20)

	clusterer := NewClusterer(ClustererConfig{
		MinArticles:    30,
		MaxArticles:    40,
		MinClusterSize: 5,
		ReducedDims:    5,
		NeighborCount:  10,
		Seed:           42,
	})
	result, err := clusterer.Cluster(vectors, payloads, ids)
	require.NoError(t, err)
	assert.Len(t, result.Labels, 40)
}

func TestNearestCentroid(t *testing.T) {
	clusters := []Cluster{
		{TopicID: 0, Centroid: center(testDim, 0)},
		{TopicID: 1, Centroid: center(testDim, 10)},
	}

	topicID, dist := nearestCentroid(center(testDim, 8), clusters)
	assert.Equal(t, 1, topicID)
	assert.InDelta(t, 2.0, dist, 1e-9)

	t.Run("no clusters", func(t *testing.T) {
		topicID, dist := nearestCentroid(center(testDim, 8), nil)
		assert.Equal(t, Noise, topicID)
		assert.Zero(t, dist)
	})
}

func TestDetectOutliers(t *testing.T) {
	vectors := [][]float32{
		center(testDim, 0),
		center(testDim, 10),
		center(testDim, 9),
	}
	texts := []string{
		"",
		"",
		"software ai cloud data startup",
	}
	ids := []string{"a", "b", "c"}
	labels := []int{0, 1, Noise}
	clusters := []Cluster{
		{TopicID: 0, Centroid: center(testDim, 0)},
		{TopicID: 1, Centroid: center(testDim, 10)},
	}

	outliers := detectOutliers(vectors, texts, ids, labels, clusters)
	require.Len(t, outliers, 1)

	o := outliers[0]
	assert.Equal(t, 2, o.Index)
	assert.Equal(t, "c", o.DocumentID)
	assert.Equal(t, 1, o.NearestTopicID)
	assert.InDelta(t, 1.0, o.EmbeddingDistance, 1e-9)
	assert.Equal(t, "technology", o.PotentialCategory)
}

func TestResolveLabelTies(t *testing.T) {
	terms := []TermWeight{
		{Term: "energy"}, {Term: "solar"}, {Term: "wind"},
		{Term: "grid"}, {Term: "storage"},
	}
	clusters := []Cluster{
		{TopicID: 0, Label: "energy / solar / wind", TopTerms: terms, CoherenceScore: 0.9},
		{TopicID: 1, Label: "energy / solar / wind", TopTerms: terms, CoherenceScore: 0.7},
	}

	resolveLabelTies(clusters)

	// Higher coherence keeps the label; the other extends with its next term.
	assert.Equal(t, "energy / solar / wind", clusters[0].Label)
	assert.Equal(t, "energy / solar / wind / grid", clusters[1].Label)
}

func TestCosineSimilarity32(t *testing.T) {
	a := []float32{1, 0, 0}
	b := []float32{0, 1, 0}
	assert.InDelta(t, 0.0, CosineSimilarity32(a, b), 1e-9)
	assert.InDelta(t, 1.0, CosineSimilarity32(a, a), 1e-9)
	assert.Zero(t, CosineSimilarity32(a, []float32{0, 0, 0}))
}
