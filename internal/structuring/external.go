package structuring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jonathan/talent-matcher/internal/types"
)

// defaultParserTimeout is deliberately short: the external parser is an
// optimization, not a dependency, and a slow parser must not stall uploads.
const defaultParserTimeout = 10 * time.Second

// ParserService is a client for an external specialized resume-parsing
// service. Any failure (timeout, non-2xx, malformed payload) is reported to
// the structurer, which falls back to the model path without surfacing it.
type ParserService struct {
	baseURL    string
	httpClient *http.Client
}

// NewParserService creates a client for the parser service at baseURL.
func NewParserService(baseURL string) *ParserService {
	return &ParserService{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultParserTimeout},
	}
}

type parseRequest struct {
	Text string `json:"text"`
}

// Parse sends the raw resume text to the external service and decodes the
// structured profile it returns.
func (p *ParserService) Parse(ctx context.Context, rawText string) (*types.StructuredProfile, error) {
	body, err := json.Marshal(parseRequest{Text: rawText})
	if err != nil {
		return nil, fmt.Errorf("failed to encode parse request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/parse", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build parse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("parser service request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("parser service returned status %d", resp.StatusCode)
	}

	var profile types.StructuredProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode parser service response: %w", err)
	}

	return &profile, nil
}
