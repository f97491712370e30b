// Package agent is the HTTP client for the remote agent gateway. The gateway
// runs named agents against a free-text instruction and returns a structured
// envelope; every field of the success payload is optional and callers apply
// their own defaults.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Invoker sends one instruction to one agent.
type Invoker interface {
	Invoke(ctx context.Context, instruction, agentID string) (*Response, error)
}

// Response is the gateway envelope.
type Response struct {
	Success       bool           `json:"success"`
	Response      *Payload       `json:"response,omitempty"`
	ModuleOutputs *ModuleOutputs `json:"module_outputs,omitempty"`
	Error         string         `json:"error,omitempty"`
}

// Payload is the nested result of a successful call. Result's shape is
// agent-specific.
type Payload struct {
	Message string          `json:"message,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
}

// ModuleOutputs carries artifacts produced alongside the result.
type ModuleOutputs struct {
	ArtifactFiles []ArtifactFile `json:"artifact_files,omitempty"`
}

// ArtifactFile is one generated file exposed by URL.
type ArtifactFile struct {
	FileURL string `json:"file_url"`
}

// FirstArtifactURL returns the first artifact file's URL, or nil when the
// list is absent or empty.
func (r *Response) FirstArtifactURL() *string {
	if r.ModuleOutputs == nil || len(r.ModuleOutputs.ArtifactFiles) == 0 {
		return nil
	}
	url := r.ModuleOutputs.ArtifactFiles[0].FileURL
	if url == "" {
		return nil
	}
	return &url
}

// FailureMessage returns the gateway's own error text, falling back to the
// nested message field, then to the given literal.
func (r *Response) FailureMessage(fallback string) string {
	if r.Error != "" {
		return r.Error
	}
	if r.Response != nil && r.Response.Message != "" {
		return r.Response.Message
	}
	return fallback
}

// DecodeResult unmarshals the agent-specific result payload into dest.
// A missing result leaves dest untouched. Gateways occasionally return the
// result as a fenced JSON string instead of an object; both forms decode.
func (r *Response) DecodeResult(dest any) error {
	if r.Response == nil || len(r.Response.Result) == 0 {
		return nil
	}
	raw := r.Response.Result

	// String form: unquote, strip code fences, decode the inner text.
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		raw = []byte(stripFences(inner))
		if len(raw) == 0 {
			return nil
		}
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decoding result payload: %w", err)
	}
	return nil
}

// Client talks to the remote agent gateway over HTTP.
type Client struct {
	BaseURL string
	client  *http.Client
}

// New creates a gateway client. The timeout bounds each call; zero means the
// gateway's default of two minutes.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Invoke sends the instruction to the given agent and decodes the envelope.
// A decodable envelope is returned even when it signals failure; the error
// return is reserved for transport-level problems.
func (c *Client) Invoke(ctx context.Context, instruction, agentID string) (*Response, error) {
	body := map[string]any{
		"message":  instruction,
		"agent_id": agentID,
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/api/v1/agents/execute", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gateway returned %d: %s", resp.StatusCode, string(respBody))
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}
