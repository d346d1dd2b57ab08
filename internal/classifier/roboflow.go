package classifier

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://serverless.roboflow.com"
	defaultTimeout = 30 * time.Second
	maxErrorBody   = 512
)

// RoboflowClient posts images to a Roboflow hosted inference endpoint.
type RoboflowClient struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// NewRoboflowClient returns a client for model (e.g. "palayprotector-project/1") at baseURL.
// timeout <= 0 uses 30s.
func NewRoboflowClient(baseURL, model, apiKey string, timeout time.Duration) *RoboflowClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &RoboflowClient{
		APIKey:     apiKey,
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Model:      strings.Trim(model, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Infer sends image as a base64 form body and decodes the predictions. Does not log the image
// or the API key.
func (c *RoboflowClient) Infer(ctx context.Context, image []byte) (*Result, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("classifier: API key not configured")
	}
	if c.Model == "" {
		return nil, fmt.Errorf("classifier: model not configured")
	}
	endpoint := c.BaseURL + "/" + c.Model + "?" + url.Values{"api_key": {c.APIKey}}.Encode()
	body := base64.StdEncoding.EncodeToString(image)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier: request failed: %w", redact(err, c.APIKey))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("classifier: request failed status=%d body=%s", resp.StatusCode, string(b))
	}
	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("classifier: decode response: %w", err)
	}
	return &result, nil
}

// redact removes the API key from transport errors, which quote the request URL.
func redact(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return fmt.Errorf("%s", strings.ReplaceAll(err.Error(), key, "REDACTED"))
}
