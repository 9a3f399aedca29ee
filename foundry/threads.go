// Copyright (c) Microsoft. All rights reserved.

package foundry

import (
	"context"
	"net/http"
	"net/url"
)

// CreateThread starts an empty conversation thread.
func (c *Client) CreateThread(ctx context.Context) (*Thread, error) {
	var thread Thread
	if err := c.doJSON(ctx, http.MethodPost, "/threads", struct{}{}, &thread); err != nil {
		return nil, err
	}
	return &thread, nil
}

// DeleteThread removes a thread and its messages.
func (c *Client) DeleteThread(ctx context.Context, threadID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/threads/"+url.PathEscape(threadID), nil, nil)
}

// createMessageRequest is the body for CreateMessage.
type createMessageRequest struct {
	Role    Role     `json:"role"`
	Content Contents `json:"content"`
}

// CreateMessage appends a text message to a thread.
func (c *Client) CreateMessage(ctx context.Context, threadID string, role Role, text string) (*Message, error) {
	body := createMessageRequest{
		Role:    role,
		Content: Contents{&TextContent{Text: text}},
	}
	var msg Message
	path := "/threads/" + url.PathEscape(threadID) + "/messages"
	if err := c.doJSON(ctx, http.MethodPost, path, body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// messageList is the paged wire shape of a message listing.
type messageList struct {
	Data []Message `json:"data"`
}

// ListMessages returns a thread's messages in the given order.
func (c *Client) ListMessages(ctx context.Context, threadID string, order MessageOrder) ([]Message, error) {
	path := "/threads/" + url.PathEscape(threadID) + "/messages"
	if order != "" {
		path += "?order=" + url.QueryEscape(string(order))
	}
	var list messageList
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}
