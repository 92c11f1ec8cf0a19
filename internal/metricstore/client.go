package metricstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"

	"github.com/hkpamc/fund-advisor-backend/internal/apperrors"
	"github.com/hkpamc/fund-advisor-backend/internal/model"
)

// vectorDimension is the embedding dimension of the index. Queries send a
// zero vector of this length because only metadata filters matter.
const vectorDimension = 1536

// defaultListTopK caps how many records a list query pulls back.
const defaultListTopK = 100

// Client is an HTTP client for the remote metric index query endpoint.
// Construct it with NewClient and inject it where a Store is needed;
// lifecycle is owned by the caller.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	topK       int
}

// NewClient creates a metric index client for the given query endpoint.
// topK bounds list queries; values below 1 fall back to the default cap.
func NewClient(endpoint, apiKey string, topK int) *Client {
	if topK < 1 {
		topK = defaultListTopK
	}
	return &Client{
		httpClient: &http.Client{},
		endpoint:   endpoint,
		apiKey:     apiKey,
		topK:       topK,
	}
}

// LookupMetric fetches the latest value recorded for a fund/metric pair.
// A pair with no record returns ("", false, nil): missing data is not an
// error. Connectivity and server failures wrap ErrStoreUnavailable.
func (c *Client) LookupMetric(ctx context.Context, fundName, metricKey string) (string, bool, error) {
	result, err := c.query(ctx, map[string]any{
		"fund_name": map[string]any{"$eq": fundName},
		"column":    map[string]any{"$eq": metricKey},
	}, 1)
	if err != nil {
		return "", false, err
	}

	if len(result.Matches) == 0 {
		return "", false, nil
	}
	value := result.Matches[0].Metadata.Value
	if value == nil {
		return "", false, nil
	}
	return stringifyValue(value), true, nil
}

// ListFunds returns fund names tagged with the title-cased risk profile, or
// the universe (every record keyed "Fund Name", deduplicated and sorted
// ascending) when riskProfile is empty.
func (c *Client) ListFunds(ctx context.Context, riskProfile string) ([]string, error) {
	if riskProfile == "" {
		return c.listUniverse(ctx)
	}

	result, err := c.query(ctx, map[string]any{
		"risk_profile": map[string]any{"$eq": model.TitleCase(riskProfile)},
	}, c.topK)
	if err != nil {
		return nil, err
	}

	var names []string
	seen := make(map[string]bool)
	for _, match := range result.Matches {
		name := match.Metadata.FundName
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names, nil
}

// listUniverse collects every distinct fund name in the index.
func (c *Client) listUniverse(ctx context.Context) ([]string, error) {
	result, err := c.query(ctx, map[string]any{
		"column": map[string]any{"$eq": KeyFundName},
	}, c.topK)
	if err != nil {
		return nil, err
	}

	var names []string
	seen := make(map[string]bool)
	for _, match := range result.Matches {
		if match.Metadata.Value == nil {
			continue
		}
		name := stringifyValue(match.Metadata.Value)
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// query is an internal helper that executes one index query. Every query
// sends the zero vector and requests metadata; callers only vary the
// filter and topK.
func (c *Client) query(ctx context.Context, filter map[string]any, topK int) (queryResponse, error) {
	body, err := json.Marshal(queryRequest{
		Vector:          make([]float64, vectorDimension),
		Filter:          filter,
		TopK:            topK,
		IncludeMetadata: true,
	})
	if err != nil {
		return queryResponse{}, fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/query", bytes.NewReader(body))
	if err != nil {
		return queryResponse{}, fmt.Errorf("failed to build query request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return queryResponse{}, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return queryResponse{}, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return queryResponse{}, fmt.Errorf("%w: index returned status %d", apperrors.ErrStoreUnavailable, resp.StatusCode)
	}

	var result queryResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return queryResponse{}, fmt.Errorf("%w: malformed index response: %v", apperrors.ErrStoreUnavailable, err)
	}

	return result, nil
}

// stringifyValue renders a loosely typed metadata value as the string the
// normalizer expects. Numbers are formatted without exponent notation.
func stringifyValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
