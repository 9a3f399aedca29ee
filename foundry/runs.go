// Copyright (c) Microsoft. All rights reserved.

package foundry

import (
	"context"
	"net/http"
	"net/url"
)

// createRunRequest is the body for CreateRun.
type createRunRequest struct {
	AgentID string `json:"agent_id"`
}

// CreateRun submits a thread for execution by an agent. The returned run
// starts in [RunStatusQueued]; drive it to a terminal state with
// [Client.WaitForRun].
func (c *Client) CreateRun(ctx context.Context, threadID, agentID string) (*Run, error) {
	var run Run
	path := "/threads/" + url.PathEscape(threadID) + "/runs"
	if err := c.doJSON(ctx, http.MethodPost, path, createRunRequest{AgentID: agentID}, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// GetRun re-fetches a run's current state.
func (c *Client) GetRun(ctx context.Context, threadID, runID string) (*Run, error) {
	var run Run
	path := "/threads/" + url.PathEscape(threadID) + "/runs/" + url.PathEscape(runID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// submitToolApprovalsRequest is the body for SubmitToolApprovals.
type submitToolApprovalsRequest struct {
	ToolApprovals []ToolApproval `json:"tool_approvals"`
}

// SubmitToolApprovals sends decisions for a run's pending tool calls in one
// batch. The service resumes the run and the updated run is returned.
func (c *Client) SubmitToolApprovals(ctx context.Context, threadID, runID string, approvals []ToolApproval) (*Run, error) {
	var run Run
	path := "/threads/" + url.PathEscape(threadID) + "/runs/" + url.PathEscape(runID) + "/submit_tool_approvals"
	if err := c.doJSON(ctx, http.MethodPost, path, submitToolApprovalsRequest{ToolApprovals: approvals}, &run); err != nil {
		return nil, err
	}
	return &run, nil
}
