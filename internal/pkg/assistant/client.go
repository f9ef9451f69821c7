// Package assistant talks to the external conversational assistant bridge.
// The upstream is an opaque JSON endpoint: POST {mensaje, datos}, expect
// {respuesta} on HTTP 200.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	ErrUnavailable    = errors.New("assistant endpoint unavailable")
	ErrMalformedReply = errors.New("assistant reply missing respuesta field")
)

type Client interface {
	Ask(ctx context.Context, mensaje, datos string) (string, error)
}

type askPayload struct {
	Mensaje string `json:"mensaje"`
	Datos   string `json:"datos"`
}

type askReply struct {
	Respuesta *string `json:"respuesta"`
}

type HTTPClient struct {
	endpoint   string
	httpClient *http.Client
}

func NewHTTPClient(endpoint string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Ask performs a single synchronous call. No retries: a failure is the
// caller's to report.
func (c *HTTPClient) Ask(ctx context.Context, mensaje, datos string) (string, error) {
	body, err := json.Marshal(askPayload{Mensaje: mensaje, Datos: datos})
	if err != nil {
		return "", fmt.Errorf("failed to encode assistant request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build assistant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var reply askReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	if reply.Respuesta == nil {
		return "", ErrMalformedReply
	}

	return *reply.Respuesta, nil
}
