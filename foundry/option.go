// Copyright (c) Microsoft. All rights reserved.

package foundry

import "net/http"

// clientConfig holds resolved configuration for a [Client].
type clientConfig struct {
	httpClient *http.Client
	apiVersion string
	headers    map[string]string
}

// Option configures a [Client].
type Option func(*clientConfig)

// WithHTTPClient provides a custom http.Client for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = client }
}

// WithAPIVersion overrides the api-version query parameter sent on every request.
func WithAPIVersion(version string) Option {
	return func(c *clientConfig) { c.apiVersion = version }
}

// WithHeaders adds custom headers to every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *clientConfig) { c.headers = headers }
}
