package config

import (
	"os"
	"strconv"
)

// applyEnvOverrides applies well-known environment variables on top of file
// configuration. These are the operational knobs documented for deployment;
// everything else goes through trendscope.yaml.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("LLM_BACKEND_URL"); v != "" {
		cfg.LLM.BackendURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("VECTOR_STORE_URL"); v != "" {
		cfg.Vector.URL = v
	}
	if v := os.Getenv("VECTOR_STORE_API_KEY"); v != "" {
		cfg.Vector.APIKey = v
	}
	if v := os.Getenv("SCRAPER_URL"); v != "" {
		cfg.Collab.ScraperURL = v
	}
	if v := os.Getenv("ANALYSIS_URL"); v != "" {
		cfg.Collab.AnalysisURL = v
	}
	if v := os.Getenv("COMPETITOR_SEARCH_URL"); v != "" {
		cfg.Collab.CompetitorSearchURL = v
	}
	if n, ok := envInt("MIN_CLIENT_ARTICLES_FOR_AUDIT"); ok {
		cfg.Audit.MinClientArticles = n
	}
	if n, ok := envInt("MIN_COMPETITOR_ARTICLES_FOR_AUDIT"); ok {
		cfg.Audit.MinCompetitorArticles = n
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
