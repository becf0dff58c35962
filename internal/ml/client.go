// Package ml provides an HTTP client for the external insight-generation
// service. The service is a black box: this client ships a snapshot of
// transactions and budgets and gets back insight records to store and
// classify, without reinterpreting the model-specific fields.
package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// TransactionRecord is the per-transaction payload the service expects.
type TransactionRecord struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Amount      int64  `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// InsightRequest is the request contract for insight generation.
type InsightRequest struct {
	UserID             string              `json:"user_id"`
	Transactions       []TransactionRecord `json:"transactions"`
	CurrentMonthBudget map[string]int64    `json:"current_month_budget,omitempty"`
}

// InsightRecord is one generated insight as returned by the service.
type InsightRecord struct {
	Type             string `json:"type"`
	Severity         string `json:"severity"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	SuggestedAction  string `json:"suggested_action,omitempty"`
	PotentialSavings *int64 `json:"potential_savings,omitempty"`
	Category         string `json:"category,omitempty"`
}

// TrendAnalysis carries the service's model-level trend summary. It is
// passed through untouched.
type TrendAnalysis struct {
	MonthOverMonthChange float64            `json:"month_over_month_change"`
	CategoryTrends       map[string]float64 `json:"category_trends"`
}

// InsightResponse is the response contract for insight generation.
type InsightResponse struct {
	Insights        []InsightRecord `json:"insights"`
	SpendingPersona string          `json:"spending_persona,omitempty"`
	TrendAnalysis   *TrendAnalysis  `json:"trend_analysis,omitempty"`
}

// Client communicates with the insight-generation service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new insight service client.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GenerateInsights submits a spending snapshot and returns generated
// insights.
func (c *Client) GenerateInsights(ctx context.Context, request InsightRequest) (*InsightResponse, error) {
	jsonBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("marshaling insight request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/insights/generate", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generating insights: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("generating insights: unexpected status %d", resp.StatusCode)
	}

	var result InsightResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding insight response: %w", err)
	}
	return &result, nil
}

// Health checks whether the insight service is reachable.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("checking insight service health: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("insight service unhealthy: status %d", resp.StatusCode)
	}
	return nil
}
