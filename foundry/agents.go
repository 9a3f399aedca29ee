// Copyright (c) Microsoft. All rights reserved.

package foundry

import (
	"context"
	"net/http"
	"net/url"
)

// CreateAgent registers an agent definition with the service and returns
// the created agent.
func (c *Client) CreateAgent(ctx context.Context, def AgentDefinition) (*Agent, error) {
	var agent Agent
	if err := c.doJSON(ctx, http.MethodPost, "/agents", def, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// DeleteAgent removes an agent. Deleting an already-deleted agent returns
// a [ErrNotFound]-wrapped error.
func (c *Client) DeleteAgent(ctx context.Context, agentID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/agents/"+url.PathEscape(agentID), nil, nil)
}

// GetConnection looks up a named project connection. A missing connection
// surfaces as an [ErrNotFound]-wrapped error, which callers may treat as an
// optional capability being unavailable.
func (c *Client) GetConnection(ctx context.Context, name string) (*Connection, error) {
	var conn Connection
	if err := c.doJSON(ctx, http.MethodGet, "/connections/"+url.PathEscape(name), nil, &conn); err != nil {
		return nil, err
	}
	return &conn, nil
}
