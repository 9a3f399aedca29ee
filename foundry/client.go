// Copyright (c) Microsoft. All rights reserved.

package foundry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

const (
	defaultAPIVersion = "2025-05-01"
	tokenScope        = "https://ai.azure.com/.default"
)

// Client is a typed client for the Foundry agent service. Use [New] to
// create one.
type Client struct {
	tp transport
}

// New creates a Client for the given project endpoint. The credential is
// used to obtain bearer tokens for every request.
//
//	cred, _ := azidentity.NewDefaultAzureCredential(nil)
//	client := foundry.New(os.Getenv("PROJECT_ENDPOINT"), cred)
func New(endpoint string, credential azcore.TokenCredential, opts ...Option) *Client {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}
	return &Client{tp: newHTTPTransport(endpoint, credential, cfg)}
}

// doJSON issues a request and decodes the JSON response body into out.
// A nil out discards the body.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.tp.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response body: %v", ErrService, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: parse response: %v", ErrService, err)
	}
	return nil
}

// transport is an unexported interface for HTTP communication.
// The default implementation uses net/http; tests inject a mock.
type transport interface {
	do(ctx context.Context, method, path string, body any) (*http.Response, error)
}

// httpTransport is the default transport using net/http.
type httpTransport struct {
	client     *http.Client
	endpoint   string
	apiVersion string
	headers    map[string]string
	credential azcore.TokenCredential
}

func newHTTPTransport(endpoint string, credential azcore.TokenCredential, cfg *clientConfig) *httpTransport {
	t := &httpTransport{
		client:     cfg.httpClient,
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiVersion: cfg.apiVersion,
		headers:    cfg.headers,
		credential: credential,
	}
	if t.client == nil {
		t.client = http.DefaultClient
	}
	if t.apiVersion == "" {
		t.apiVersion = defaultAPIVersion
	}
	return t
}

func (t *httpTransport) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	u := t.endpoint + path
	if strings.Contains(u, "?") {
		u += "&api-version=" + url.QueryEscape(t.apiVersion)
	} else {
		u += "?api-version=" + url.QueryEscape(t.apiVersion)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	token, err := t.credential.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{tokenScope},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: get token: %v", ErrAuth, err)
	}
	req.Header.Set("Authorization", "Bearer "+token.Token)

	for k, v := range t.headers {
		req.Header.Set(k, v)
	}

	slog.DebugContext(ctx, "service request", "method", method, "path", path)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		return nil, parseErrorResponse(resp)
	}

	return resp, nil
}

// parseErrorResponse reads an error response body and returns a typed error.
func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var apiErr struct {
		Error struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		} `json:"error"`
	}
	_ = json.Unmarshal(body, &apiErr)

	msg := apiErr.Error.Message
	if msg == "" {
		msg = string(body)
	}

	svcErr := &ServiceError{
		StatusCode: resp.StatusCode,
		Message:    msg,
		Code:       apiErr.Error.Code,
	}

	switch {
	case resp.StatusCode == 401 || resp.StatusCode == 403:
		svcErr.Err = ErrAuth
	case resp.StatusCode == 404:
		svcErr.Err = ErrNotFound
	case resp.StatusCode == 400:
		svcErr.Err = ErrInvalidRequest
	default:
		svcErr.Err = ErrService
	}

	return svcErr
}
