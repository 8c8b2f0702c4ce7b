package soap

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/numconv-api/internal/config"
	"github.com/phrazzld/numconv-api/internal/platform/logger"
)

const (
	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 1 << 20
	// maxErrorBodyBytes caps how much of an unexpected body ends up in errors.
	maxErrorBodyBytes = 512
)

// Client calls the Number Conversion service. It is safe for concurrent use;
// all fields are set once in NewClient.
type Client struct {
	endpoint   string
	namespace  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client, e.g. to point tests at an
// httptest server's client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient creates a Client for the endpoint described by cfg. The default
// HTTP client enforces cfg.TimeoutSeconds on every round trip.
func NewClient(cfg config.IntegrationConfig, log *slog.Logger, opts ...Option) (*Client, error) {
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if strings.TrimSpace(cfg.EndpointURL) == "" {
		return nil, fmt.Errorf("%w: endpoint URL cannot be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.Namespace) == "" {
		return nil, fmt.Errorf("%w: namespace cannot be empty", ErrInvalidConfig)
	}
	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive, got %d", ErrInvalidConfig, cfg.TimeoutSeconds)
	}

	c := &Client{
		endpoint:  cfg.EndpointURL,
		namespace: cfg.Namespace,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: log.With("component", "soap_client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the service address the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// NumberToWords calls the NumberToWords operation with the lexical form of an
// integer and returns the words phrase.
func (c *Client) NumberToWords(ctx context.Context, ubiNum string) (string, error) {
	req := NumberToWordsRequest{Xmlns: c.namespace, UbiNum: ubiNum}
	var resp NumberToWordsResponse
	if err := c.Call(ctx, "NumberToWords", req, &resp); err != nil {
		return "", err
	}
	return resp.Result, nil
}

// NumberToDollars calls the NumberToDollars operation with the lexical form of
// a decimal and returns the dollars phrase.
func (c *Client) NumberToDollars(ctx context.Context, dNum string) (string, error) {
	req := NumberToDollarsRequest{Xmlns: c.namespace, DNum: dNum}
	var resp NumberToDollarsResponse
	if err := c.Call(ctx, "NumberToDollars", req, &resp); err != nil {
		return "", err
	}
	return resp.Result, nil
}

// Call performs one SOAP round trip: request is wrapped in an envelope and
// posted, and the body content of the response is decoded into response.
// Any failure is returned as a *CallError.
func (c *Client) Call(ctx context.Context, operation string, request, response interface{}) error {
	log := logger.FromContextOrDefault(ctx, c.logger)

	payload, err := encodeEnvelope(request)
	if err != nil {
		return &CallError{Operation: operation, Stage: StageEncode, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return &CallError{Operation: operation, Stage: StageEncode, Err: err}
	}
	httpReq.Header.Set("Content-Type", "text/xml; charset=utf-8")
	httpReq.Header.Set("Accept", "text/xml")
	httpReq.Header.Set("SOAPAction", `""`)

	log.Debug("sending SOAP request",
		"operation", operation,
		"request_bytes", len(payload))

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &CallError{Operation: operation, Stage: StageTransport, Err: err}
	}
	defer func() {
		if cerr := httpResp.Body.Close(); cerr != nil {
			log.Warn("failed to close SOAP response body", "error", cerr)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return &CallError{Operation: operation, Stage: StageTransport, Err: fmt.Errorf("read response body: %w", err)}
	}

	log.Debug("received SOAP response",
		"operation", operation,
		"status_code", httpResp.StatusCode,
		"response_bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds())

	env, decodeErr := decodeEnvelope(body)

	// SOAP 1.1 services report faults with HTTP 500, but accept them on any status.
	if decodeErr == nil && env.Body.Fault != nil {
		return &CallError{
			Operation: operation,
			Stage:     StageTransport,
			Err:       &FaultError{Fault: *env.Body.Fault, StatusCode: httpResp.StatusCode},
		}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return &CallError{
			Operation: operation,
			Stage:     StageTransport,
			Err:       &HTTPStatusError{StatusCode: httpResp.StatusCode, Body: truncate(string(body), maxErrorBodyBytes)},
		}
	}

	if decodeErr != nil {
		return &CallError{Operation: operation, Stage: StageDecode, Err: decodeErr}
	}

	if len(bytes.TrimSpace(env.Body.Inner)) == 0 {
		return &CallError{Operation: operation, Stage: StageDecode, Err: ErrEmptyBody}
	}

	if err := xml.Unmarshal(env.Body.Inner, response); err != nil {
		return &CallError{Operation: operation, Stage: StageDecode, Err: fmt.Errorf("decode %s response: %w", operation, err)}
	}

	return nil
}

// encodeEnvelope wraps content in a SOAP 1.1 envelope and marshals it with an
// XML declaration.
func encodeEnvelope(content interface{}) ([]byte, error) {
	if content == nil {
		return nil, errors.New("request content cannot be nil")
	}

	env := requestEnvelope{
		SoapNS: EnvelopeNamespace,
		Body:   requestBody{Content: content},
	}

	out, err := xml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

func decodeEnvelope(body []byte) (*responseEnvelope, error) {
	var env responseEnvelope
	if err := xml.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return &env, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
