package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fiufit/trainings/internal/telemetry/tracing"
)

const (
	credentialsPath = "/auth/credentials"

	MsgMissingHeader      = "Authorization header MUST BE send."
	MsgInvalidCredentials = "Error getting credentials (Maybe token is invalid?)"
	MsgUnreachable        = "Could not reach the credentials service."
	MsgCannotCreate       = "You don't have permission to create trainings."
)

// DeniedError is returned for every failed authorization, upstream failures included.
// Detail is safe to show to the client.
type DeniedError struct {
	Detail any
	Cause  error
}

func (e *DeniedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("access denied: %v: %s", e.Detail, e.Cause)
	}
	return fmt.Sprintf("access denied: %v", e.Detail)
}

func (e *DeniedError) Unwrap() error {
	return e.Cause
}

type credentialsResponse struct {
	Data *Permissions `json:"data"`
}

// Client asks the external auth service for the credentials behind an Authorization header.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(host string, timeout time.Duration) *Client {
	return newClient("http://"+host, &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}

func newClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *Client) Permissions(ctx context.Context, authHeader string) (_ Permissions, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authClient.permissions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if authHeader == "" {
		return Permissions{}, &DeniedError{Detail: MsgMissingHeader}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+credentialsPath, nil)
	if err != nil {
		return Permissions{}, &DeniedError{Detail: MsgUnreachable, Cause: err}
	}
	req.Header.Set("Authorization", authHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("auth client, get credentials: %s", err)
		return Permissions{}, &DeniedError{Detail: MsgUnreachable, Cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Permissions{}, &DeniedError{Detail: MsgInvalidCredentials, Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		log.Debugf("auth client, credentials rejected with status %d", resp.StatusCode)
		return Permissions{}, &DeniedError{
			Detail: upstreamDetail(body),
			Cause:  fmt.Errorf("credentials service status %d", resp.StatusCode),
		}
	}

	var credResp credentialsResponse
	if err := json.Unmarshal(body, &credResp); err != nil || credResp.Data == nil || credResp.Data.Role == "" {
		if err == nil {
			err = fmt.Errorf("no role in credentials: %s", body)
		}
		return Permissions{}, &DeniedError{Detail: MsgInvalidCredentials, Cause: err}
	}

	return *credResp.Data, nil
}

// upstreamDetail surfaces the upstream "detail" field when there is one, the raw body otherwise.
func upstreamDetail(body []byte) any {
	var detailResp struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &detailResp); err == nil && detailResp.Detail != nil {
		return detailResp.Detail
	}
	if len(body) == 0 {
		return MsgInvalidCredentials
	}
	return string(body)
}
