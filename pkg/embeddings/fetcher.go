package embeddings

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/qdrant/go-client/qdrant"

	"github.com/trendscope/trendscope/pkg/vectorstore"
)

const scrollBatchSize = 256

// ArticlePayload is the decoded payload of one article point.
type ArticlePayload struct {
	Domain        string
	URL           string
	Title         string
	ContentText   string
	Author        string
	PublishedDate *time.Time
}

// FetchResult is everything the clusterer needs, in matched order:
// Embeddings[i] belongs to Payloads[i] and IDs[i].
type FetchResult struct {
	Embeddings [][]float32
	Payloads   []ArticlePayload
	IDs        []string

	SkippedNoDate  int
	SkippedTooOld  int
	MissingDomains []string
}

// FetchOptions controls one fetch.
type FetchOptions struct {
	Domains    []string
	MaxAgeDays int // 0 disables date filtering
	Limit      int // 0 means unlimited
	Normalize  bool
}

// Fetcher reads article embeddings from the per-domain collections.
type Fetcher struct {
	store  *vectorstore.Client
	logger *slog.Logger
}

// NewFetcher creates a Fetcher.
func NewFetcher(store *vectorstore.Client, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		store:  store,
		logger: logger.With("component", "embeddings"),
	}
}

// Fetch scrolls every requested domain's collection until exhausted or the
// limit is reached. Articles older than MaxAgeDays are skipped; articles
// without a parseable published date are skipped when filtering is active.
func (f *Fetcher) Fetch(ctx context.Context, opts FetchOptions) (*FetchResult, error) {
	result := &FetchResult{}

	var cutoff time.Time
	if opts.MaxAgeDays > 0 {
		cutoff = time.Now().UTC().AddDate(0, 0, -opts.MaxAgeDays)
	}

	for _, domain := range opts.Domains {
		if opts.Limit > 0 && len(result.IDs) >= opts.Limit {
			break
		}
		collection := vectorstore.CollectionName(domain)
		missing, err := f.fetchDomain(ctx, collection, domain, cutoff, opts, result)
		if err != nil {
			return nil, err
		}
		if missing {
			result.MissingDomains = append(result.MissingDomains, domain)
		}
	}

	if len(result.IDs) == 0 && len(opts.Domains) > 0 {
		f.logAvailableDomains(ctx)
	}

	if opts.Normalize {
		for i, vec := range result.Embeddings {
			result.Embeddings[i] = L2Normalize(vec)
		}
	}

	f.logger.Info("fetched embeddings",
		"domains", len(opts.Domains),
		"points", len(result.IDs),
		"skipped_no_date", result.SkippedNoDate,
		"skipped_too_old", result.SkippedTooOld,
		"missing_collections", len(result.MissingDomains))
	return result, nil
}

func (f *Fetcher) fetchDomain(ctx context.Context, collection, domain string, cutoff time.Time, opts FetchOptions, result *FetchResult) (missing bool, err error) {
	var offset *qdrant.PointId
	for {
		page, err := f.store.Scroll(ctx, collection, nil, scrollBatchSize, offset)
		if err != nil {
			return false, fmt.Errorf("failed to fetch embeddings for %s: %w", domain, err)
		}
		if page.CollectionMissing {
			return true, nil
		}

		for _, point := range page.Points {
			if opts.Limit > 0 && len(result.IDs) >= opts.Limit {
				return false, nil
			}
			if len(point.Vector) == 0 {
				continue
			}

			payload := decodePayload(point.Payload, domain)
			if !cutoff.IsZero() {
				if payload.PublishedDate == nil {
					result.SkippedNoDate++
					continue
				}
				if payload.PublishedDate.Before(cutoff) {
					result.SkippedTooOld++
					continue
				}
			}

			result.Embeddings = append(result.Embeddings, point.Vector)
			result.Payloads = append(result.Payloads, payload)
			result.IDs = append(result.IDs, point.ID)
		}

		if page.NextOffset == nil || len(page.Points) == 0 {
			return false, nil
		}
		offset = page.NextOffset
	}
}

// logAvailableDomains samples collections to help diagnose a zero-hit fetch.
func (f *Fetcher) logAvailableDomains(ctx context.Context) {
	names, err := f.store.ListCollections(ctx)
	if err != nil {
		f.logger.Warn("zero embeddings fetched and collection listing failed", "error", err)
		return
	}
	f.logger.Warn("zero embeddings fetched for requested domains",
		"available_collections", names)
}

func decodePayload(payload map[string]any, fallbackDomain string) ArticlePayload {
	p := ArticlePayload{Domain: fallbackDomain}
	if payload == nil {
		return p
	}
	if v, ok := payload["domain"].(string); ok && v != "" {
		p.Domain = v
	}
	if v, ok := payload["url"].(string); ok {
		p.URL = v
	}
	if v, ok := payload["title"].(string); ok {
		p.Title = v
	}
	if v, ok := payload["content_text"].(string); ok {
		p.ContentText = v
	}
	if v, ok := payload["author"].(string); ok {
		p.Author = v
	}
	if v, ok := payload["published_date"].(string); ok {
		if t, ok := ParseISODate(v); ok {
			p.PublishedDate = &t
		}
	}
	return p
}

// ParseISODate parses the ISO-8601 variants found in article payloads.
// Naive timestamps (no zone) are treated as UTC.
func ParseISODate(s string) (time.Time, bool) {
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Location() == time.Local {
				t = t.UTC()
			}
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// L2Normalize scales a vector to unit length. Zero vectors pass through
// unchanged.
func L2Normalize(vec []float32) []float32 {
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return vec
	}
	norm := math.Sqrt(sum)
	out := make([]float32, len(vec))
	for i, v := range vec {
		out[i] = float32(float64(v) / norm)
	}
	return out
}
