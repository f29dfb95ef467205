package models

import "time"

// TrainingAnalyzeRequest asks for publication patterns over a domain's
// stored articles.
type TrainingAnalyzeRequest struct {
	Domain      string `json:"domain"`
	MaxArticles int    `json:"max_articles,omitempty"`
}

// KeywordCountResponse is one keyword with its article frequency.
type KeywordCountResponse struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// AuthorCountResponse is one author with their article count.
type AuthorCountResponse struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

// TrainingPatternsResponse summarizes the editorial habits of a domain's
// historical articles.
type TrainingPatternsResponse struct {
	Domain           string                 `json:"domain"`
	ArticlesAnalyzed int                    `json:"articles_analyzed"`
	AvgWordCount     float64                `json:"avg_word_count"`
	ArticlesPerWeek  float64                `json:"articles_per_week"`
	TopKeywords      []KeywordCountResponse `json:"top_keywords,omitempty"`
	TopAuthors       []AuthorCountResponse  `json:"top_authors,omitempty"`
	EarliestArticle  *time.Time             `json:"earliest_article,omitempty"`
	LatestArticle    *time.Time             `json:"latest_article,omitempty"`
}
