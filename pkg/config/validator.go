package config

import (
	"errors"
	"fmt"
)

// validate checks cross-field consistency of the merged configuration.
func (c *Config) validate() error {
	var errs []error

	if c.Trends.MinArticles <= 0 {
		errs = append(errs, fmt.Errorf("trends.min_articles must be positive, got %d", c.Trends.MinArticles))
	}
	if c.Trends.MaxArticles < c.Trends.MinArticles {
		errs = append(errs, fmt.Errorf("trends.max_articles (%d) must be >= trends.min_articles (%d)",
			c.Trends.MaxArticles, c.Trends.MinArticles))
	}
	if c.Trends.MinClusterSize < 2 {
		errs = append(errs, fmt.Errorf("trends.min_cluster_size must be >= 2, got %d", c.Trends.MinClusterSize))
	}
	if c.Trends.ReducedDims < 2 || c.Trends.ReducedDims > 50 {
		errs = append(errs, fmt.Errorf("trends.reduced_dims must be in [2, 50], got %d", c.Trends.ReducedDims))
	}
	if len(c.Trends.WindowsDays) == 0 {
		errs = append(errs, errors.New("trends.windows_days must not be empty"))
	}
	if c.Trends.MaxRoadmapItems <= 0 {
		errs = append(errs, fmt.Errorf("trends.max_roadmap_items must be positive, got %d", c.Trends.MaxRoadmapItems))
	}

	var effortTotal float64
	for _, share := range c.Trends.EffortDistribution {
		if share < 0 {
			errs = append(errs, errors.New("trends.effort_distribution shares must be non-negative"))
		}
		effortTotal += share
	}
	if effortTotal > 0 && (effortTotal < 0.99 || effortTotal > 1.01) {
		errs = append(errs, fmt.Errorf("trends.effort_distribution must sum to 1.0, got %.2f", effortTotal))
	}

	if c.Audit.MinClientArticles < 0 || c.Audit.MinCompetitorArticles < 0 {
		errs = append(errs, errors.New("audit thresholds must be non-negative"))
	}
	if c.Audit.MaxCompetitors < 3 || c.Audit.MaxCompetitors > 100 {
		errs = append(errs, fmt.Errorf("audit.max_competitors must be in [3, 100], got %d", c.Audit.MaxCompetitors))
	}

	if c.LLM.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("llm.concurrency must be >= 1, got %d", c.LLM.Concurrency))
	}
	if c.LLM.ModelCacheSize < 1 {
		errs = append(errs, fmt.Errorf("llm.model_cache_size must be >= 1, got %d", c.LLM.ModelCacheSize))
	}

	return errors.Join(errs...)
}
