package trends

import "strings"

// categoryKeywords drives the rule-based potential_category of outliers.
// Checked in order; the first category with two keyword hits wins, then the
// first with one hit.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"technology", []string{"software", "ai", "artificial intelligence", "cloud", "startup", "app", "digital", "cyber", "data", "algorithm", "robot"}},
	{"business", []string{"market", "revenue", "investment", "acquisition", "company", "finance", "economy", "stock", "profit", "merger"}},
	{"health", []string{"health", "medical", "disease", "treatment", "patient", "vaccine", "clinical", "hospital", "therapy", "wellness"}},
	{"science", []string{"research", "study", "scientist", "discovery", "experiment", "physics", "biology", "climate", "species", "laboratory"}},
	{"environment", []string{"climate", "carbon", "renewable", "pollution", "sustainability", "emission", "energy", "recycling", "biodiversity"}},
	{"politics", []string{"government", "election", "policy", "parliament", "minister", "senate", "legislation", "regulation", "vote"}},
	{"culture", []string{"film", "music", "art", "festival", "museum", "book", "theater", "exhibition", "culture"}},
	{"sports", []string{"match", "tournament", "championship", "player", "team", "league", "olympic", "coach", "season"}},
}

// CategorizeText assigns a coarse category to an outlier document from
// keyword heuristics over its text.
func CategorizeText(text string) string {
	lowered := strings.ToLower(text)

	best := "general"
	bestHits := 0
	for _, entry := range categoryKeywords {
		hits := 0
		for _, kw := range entry.keywords {
			if strings.Contains(lowered, kw) {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			best = entry.category
		}
	}
	return best
}
