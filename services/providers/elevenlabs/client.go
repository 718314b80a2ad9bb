package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Adwait10-prog/Rian-Audio-Editor2/services/providers"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.elevenlabs.io"
	voicesPath     = "/v2/voices"

	// apiKeyHeader is ElevenLabs' custom authentication header.
	apiKeyHeader = "xi-api-key"
)

// Client implements providers.VoiceLister against the ElevenLabs API.
type Client struct {
	config     providers.ProviderConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new ElevenLabs client
func NewClient(config providers.ProviderConfig, logger *zap.Logger) *Client {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}

	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}
}

// Name returns the provider name
func (c *Client) Name() string {
	return "elevenlabs"
}

// FetchVoices retrieves the provider's voice catalog. The payload is
// treated as opaque: it is validated and compacted to a single line but
// never unmarshaled, so the provider's key order survives.
func (c *Client) FetchVoices(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+voicesPath, nil)
	if err != nil {
		return nil, providers.NewProviderError(c.Name(), providers.KindUnexpected, err.Error(), 0, err)
	}

	req.Header.Set(apiKeyHeader, c.config.APIKey)

	c.logger.Debug("fetching voices", zap.String("url", req.URL.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, providers.NewProviderError(c.Name(), providers.KindTransport, err.Error(), 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		// The body is streamed as part of the exchange; a read failure
		// is a transport failure, same as a broken connection.
		return nil, providers.NewProviderError(c.Name(), providers.KindTransport, err.Error(), 0, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("non-success status",
			zap.Int("status", resp.StatusCode),
			zap.Int("body_bytes", len(body)))
		return nil, providers.NewProviderError(c.Name(), providers.KindStatus, string(body), resp.StatusCode, nil)
	}

	var compacted bytes.Buffer
	if err := json.Compact(&compacted, body); err != nil {
		wrapped := fmt.Errorf("response body is not valid JSON: %w", err)
		return nil, providers.NewProviderError(c.Name(), providers.KindUnexpected, wrapped.Error(), resp.StatusCode, wrapped)
	}

	c.logger.Debug("voices fetched", zap.Int("payload_bytes", compacted.Len()))

	return compacted.Bytes(), nil
}
