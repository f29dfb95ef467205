package vectorstore

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
)

const (
	// CentroidsCollection holds one point per persisted cluster centroid.
	CentroidsCollection = "centroids"

	articleCollectionPrefix = "articles__"
)

// CollectionName returns the per-domain article collection name. The domain
// is sanitized deterministically so the same domain always maps to the same
// collection.
func CollectionName(domain string) string {
	sanitized := strings.ToLower(strings.TrimSpace(domain))
	replacer := strings.NewReplacer(".", "_", "-", "_", ":", "_", "/", "_")
	return articleCollectionPrefix + replacer.Replace(sanitized)
}

// Config holds vector store connection settings.
type Config struct {
	URL     string
	APIKey  string
}

// Client wraps the qdrant gRPC client with the collection conventions used
// by the trend pipeline. A missing collection is a diagnostic, never fatal:
// read operations return empty results and set the CollectionMissing flag on
// the result.
type Client struct {
	qdrant *qdrant.Client
	logger *slog.Logger
}

// NewClient connects to the vector store at cfg.URL (host:port or a URL).
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	host, port, useTLS, err := parseEndpoint(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid vector store URL %q: %w", cfg.URL, err)
	}

	// Long scrolls over idle periods need keepalives, or the LB drops the
	// stream mid-pipeline.
	qc, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: cfg.APIKey,
		UseTLS: useTLS,
		GrpcOptions: []grpc.DialOption{
			grpc.WithKeepaliveParams(keepalive.ClientParameters{
				Time:                30 * time.Second,
				Timeout:             10 * time.Second,
				PermitWithoutStream: true,
			}),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create vector store client: %w", err)
	}

	return &Client{
		qdrant: qc,
		logger: logger.With("component", "vectorstore"),
	}, nil
}

// parseEndpoint accepts "host:port", "http://host:port" or "https://host".
func parseEndpoint(raw string) (host string, port int, useTLS bool, err error) {
	port = 6334
	if raw == "" {
		return "localhost", port, false, nil
	}

	if strings.Contains(raw, "://") {
		u, perr := url.Parse(raw)
		if perr != nil {
			return "", 0, false, perr
		}
		host = u.Hostname()
		useTLS = u.Scheme == "https"
		if u.Port() != "" {
			port, err = strconv.Atoi(u.Port())
			if err != nil {
				return "", 0, false, err
			}
		} else if useTLS {
			port = 443
		}
		return host, port, useTLS, nil
	}

	host = raw
	if h, p, found := strings.Cut(raw, ":"); found {
		host = h
		port, err = strconv.Atoi(p)
		if err != nil {
			return "", 0, false, err
		}
	}
	return host, port, false, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	return c.qdrant.Close()
}

// CollectionExists reports whether a collection is present.
func (c *Client) CollectionExists(ctx context.Context, name string) (bool, error) {
	exists, err := c.qdrant.CollectionExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to check collection %s: %w", name, err)
	}
	return exists, nil
}

// EnsureCollection creates a cosine-distance collection of the given
// dimension if it does not exist yet.
func (c *Client) EnsureCollection(ctx context.Context, name string, dim int) error {
	exists, err := c.CollectionExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = c.qdrant.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(dim),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection %s: %w", name, err)
	}
	c.logger.Info("created collection", "collection", name, "dim", dim)
	return nil
}

// Point is one vector with its payload, in the shape the pipeline consumes.
type Point struct {
	ID      string
	Vector  []float32
	Payload map[string]any
}

// Upsert writes points into a collection.
func (c *Client) Upsert(ctx context.Context, collection string, points []Point) error {
	if len(points) == 0 {
		return nil
	}

	qpoints := make([]*qdrant.PointStruct, 0, len(points))
	for _, p := range points {
		qpoints = append(qpoints, &qdrant.PointStruct{
			Id:      qdrant.NewID(p.ID),
			Vectors: qdrant.NewVectors(p.Vector...),
			Payload: qdrant.NewValueMap(p.Payload),
		})
	}

	_, err := c.qdrant.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         qpoints,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert %d points into %s: %w", len(points), collection, err)
	}
	return nil
}

// ScrollResult carries one page of a scroll plus diagnostics.
type ScrollResult struct {
	Points            []Point
	NextOffset        *qdrant.PointId
	CollectionMissing bool
}

// Scroll reads one page of points with vectors and payloads. A missing
// collection yields an empty result with CollectionMissing set.
func (c *Client) Scroll(ctx context.Context, collection string, filter *qdrant.Filter, limit uint32, offset *qdrant.PointId) (*ScrollResult, error) {
	exists, err := c.CollectionExists(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !exists {
		c.logger.Warn("collection missing, returning empty scroll", "collection", collection)
		return &ScrollResult{CollectionMissing: true}, nil
	}

	req := &qdrant.ScrollPoints{
		CollectionName: collection,
		Filter:         filter,
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
		WithVectors:    qdrant.NewWithVectors(true),
		Offset:         offset,
	}

	resp, err := c.qdrant.GetPointsClient().Scroll(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to scroll %s: %w", collection, err)
	}

	result := &ScrollResult{
		Points:     make([]Point, 0, len(resp.GetResult())),
		NextOffset: resp.GetNextPageOffset(),
	}
	for _, rp := range resp.GetResult() {
		result.Points = append(result.Points, retrievedToPoint(rp))
	}
	return result, nil
}

// Retrieve fetches specific points by id.
func (c *Client) Retrieve(ctx context.Context, collection string, ids []string) ([]Point, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	exists, err := c.CollectionExists(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	pointIDs := make([]*qdrant.PointId, 0, len(ids))
	for _, id := range ids {
		pointIDs = append(pointIDs, qdrant.NewID(id))
	}

	retrieved, err := c.qdrant.Get(ctx, &qdrant.GetPoints{
		CollectionName: collection,
		Ids:            pointIDs,
		WithPayload:    qdrant.NewWithPayload(true),
		WithVectors:    qdrant.NewWithVectors(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve %d points from %s: %w", len(ids), collection, err)
	}

	points := make([]Point, 0, len(retrieved))
	for _, rp := range retrieved {
		points = append(points, retrievedToPoint(rp))
	}
	return points, nil
}

// SearchHit is one similarity search result.
type SearchHit struct {
	Point
	Score float32
}

// Search runs a similarity query against a collection.
func (c *Client) Search(ctx context.Context, collection string, vector []float32, k uint64, threshold *float32) ([]SearchHit, error) {
	exists, err := c.CollectionExists(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !exists {
		c.logger.Warn("collection missing, returning empty search", "collection", collection)
		return nil, nil
	}

	scored, err := c.qdrant.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &k,
		ScoreThreshold: threshold,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", collection, err)
	}

	hits := make([]SearchHit, 0, len(scored))
	for _, sp := range scored {
		hits = append(hits, SearchHit{
			Point: Point{
				ID:      pointIDString(sp.GetId()),
				Payload: payloadToMap(sp.GetPayload()),
			},
			Score: sp.GetScore(),
		})
	}
	return hits, nil
}

// ListCollections returns all collection names, used for the zero-hit
// diagnostic in the embedding fetcher.
func (c *Client) ListCollections(ctx context.Context) ([]string, error) {
	names, err := c.qdrant.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

func retrievedToPoint(rp *qdrant.RetrievedPoint) Point {
	return Point{
		ID:      pointIDString(rp.GetId()),
		Vector:  rp.GetVectors().GetVector().GetData(),
		Payload: payloadToMap(rp.GetPayload()),
	}
}

func pointIDString(id *qdrant.PointId) string {
	if id == nil {
		return ""
	}
	if uuid := id.GetUuid(); uuid != "" {
		return uuid
	}
	return strconv.FormatUint(id.GetNum(), 10)
}

func payloadToMap(payload map[string]*qdrant.Value) map[string]any {
	if payload == nil {
		return nil
	}
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		out[k] = valueToAny(v)
	}
	return out
}

func valueToAny(v *qdrant.Value) any {
	switch kind := v.GetKind().(type) {
	case *qdrant.Value_StringValue:
		return kind.StringValue
	case *qdrant.Value_IntegerValue:
		return kind.IntegerValue
	case *qdrant.Value_DoubleValue:
		return kind.DoubleValue
	case *qdrant.Value_BoolValue:
		return kind.BoolValue
	case *qdrant.Value_ListValue:
		items := kind.ListValue.GetValues()
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, valueToAny(item))
		}
		return out
	case *qdrant.Value_StructValue:
		return payloadToMap(kind.StructValue.GetFields())
	default:
		return nil
	}
}
