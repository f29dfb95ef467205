package trends

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Run("lowercases and drops short tokens", func(t *testing.T) {
		tokens := Tokenize("Go AI Kubernetes is BIG")
		assert.Equal(t, []string{"kubernetes", "big"}, tokens)
	})

	t.Run("drops stopwords in both languages", func(t *testing.T) {
		tokens := Tokenize("the market and les startups dans the cloud")
		assert.Equal(t, []string{"market", "startups", "cloud"}, tokens)
	})

	t.Run("keeps accented words", func(t *testing.T) {
		tokens := Tokenize("économie européenne")
		assert.Equal(t, []string{"économie", "européenne"}, tokens)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Tokenize(""))
	})
}

func TestTopTermsPerCluster(t *testing.T) {
	texts := []string{
		"vaccine vaccine clinical hospital",
		"vaccine treatment clinical patient",
		"startup funding venture capital",
		"startup revenue venture market",
		"random noise document text",
	}
	labels := []int{0, 0, 1, 1, Noise}

	terms := TopTermsPerCluster(texts, labels, 3)
	require.Len(t, terms, 2, "noise must not form a class")

	// The distinguishing term of each class ranks first.
	require.NotEmpty(t, terms[0])
	assert.Equal(t, "vaccine", terms[0][0].Term)
	require.NotEmpty(t, terms[1])
	assert.Equal(t, "startup", terms[1][0].Term)

	for _, tw := range terms[0] {
		assert.Greater(t, tw.Weight, 0.0)
	}
	assert.LessOrEqual(t, len(terms[0]), 3)
}

func TestTopTermsPerCluster_AllNoise(t *testing.T) {
	terms := TopTermsPerCluster([]string{"one text", "another text"}, []int{Noise, Noise}, 5)
	assert.Nil(t, terms)
}

func TestLabelFromTerms(t *testing.T) {
	t.Run("joins top three terms", func(t *testing.T) {
		label := LabelFromTerms([]TermWeight{
			{Term: "vaccine", Weight: 3},
			{Term: "clinical", Weight: 2},
			{Term: "hospital", Weight: 1},
			{Term: "patient", Weight: 0.5},
		})
		assert.Equal(t, "vaccine / clinical / hospital", label)
	})

	t.Run("fewer than three terms", func(t *testing.T) {
		label := LabelFromTerms([]TermWeight{{Term: "vaccine", Weight: 1}})
		assert.Equal(t, "vaccine", label)
	})

	t.Run("no terms", func(t *testing.T) {
		assert.Equal(t, "unlabeled", LabelFromTerms(nil))
	})
}
