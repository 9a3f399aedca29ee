// Copyright (c) Microsoft. All rights reserved.

package foundry

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ApprovalPolicy decides whether a pending tool call may proceed.
// It is consulted once per pending call in each requires_action cycle.
type ApprovalPolicy func(ctx context.Context, call ToolCall) (bool, error)

// ApproveAll is an [ApprovalPolicy] that approves every pending tool call.
// It is the default policy; production callers should consider a policy
// that inspects the call before deciding.
func ApproveAll(_ context.Context, _ ToolCall) (bool, error) {
	return true, nil
}

// PollOptions configures [Client.WaitForRun].
// The zero value polls every 500ms at a fixed interval and approves all
// pending tool calls.
type PollOptions struct {
	// Interval is the initial delay between status checks. Default: 500ms.
	Interval time.Duration

	// BackoffMultiplier grows the delay after each empty poll.
	// Values <= 1 keep the interval fixed.
	BackoffMultiplier float64

	// MaxInterval caps the grown delay. Zero means no cap beyond Interval
	// growth. Ignored when BackoffMultiplier <= 1.
	MaxInterval time.Duration

	// Approver decides pending tool calls. Default: [ApproveAll].
	Approver ApprovalPolicy
}

const defaultPollInterval = 500 * time.Millisecond

// WaitForRun polls a run until it reaches a terminal status, deciding
// pending tool calls along the way. Deadlines and cancellation come from
// ctx; without one the poll continues until the run terminates.
//
// On requires_action, every pending tool call receives exactly one decision
// from the approval policy and all decisions are submitted in a single
// batch before the next poll cycle. Every cycle waits out the poll
// interval, including cycles that submit approvals: a run the service keeps
// in requires_action is re-decided at the polling cadence, never in a tight
// loop. A run that is already terminal is returned as-is without touching
// the service.
//
// The returned run carries the terminal status. Terminal statuses other
// than completed additionally yield a [RunFailedError].
func (c *Client) WaitForRun(ctx context.Context, run *Run, opts *PollOptions) (*Run, error) {
	if opts == nil {
		opts = &PollOptions{}
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	approver := opts.Approver
	if approver == nil {
		approver = ApproveAll
	}

	delay := interval
	for !run.Status.IsTerminal() {
		if calls := pendingToolCalls(run); len(calls) > 0 {
			updated, err := c.decideToolCalls(ctx, run, calls, approver)
			if err != nil {
				return run, err
			}
			run = updated
			delay = interval // run is active again
			if run.Status.IsTerminal() {
				break
			}
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return run, ctx.Err()
		case <-timer.C:
		}

		updated, err := c.GetRun(ctx, run.ThreadID, run.ID)
		if err != nil {
			return run, err
		}
		run = updated

		slog.DebugContext(ctx, "run polled",
			"run_id", run.ID,
			"status", run.Status,
			"interval", delay,
		)

		if opts.BackoffMultiplier > 1 {
			delay = time.Duration(float64(delay) * opts.BackoffMultiplier)
			if opts.MaxInterval > 0 && delay > opts.MaxInterval {
				delay = opts.MaxInterval
			}
		}
	}

	if run.Status != RunStatusCompleted {
		return run, &RunFailedError{RunID: run.ID, Status: run.Status, Detail: run.LastError}
	}
	return run, nil
}

// pendingToolCalls returns the tool calls awaiting a decision, if any.
// A requires_action run with no listed calls has nothing to decide; the
// next timed poll reassesses it.
func pendingToolCalls(run *Run) []ToolCall {
	if run.Status != RunStatusRequiresAction {
		return nil
	}
	if run.RequiredAction == nil || run.RequiredAction.SubmitToolApproval == nil {
		return nil
	}
	return run.RequiredAction.SubmitToolApproval.ToolCalls
}

// decideToolCalls collects a decision for every pending tool call and
// submits the batch.
func (c *Client) decideToolCalls(ctx context.Context, run *Run, calls []ToolCall, approver ApprovalPolicy) (*Run, error) {
	approvals := make([]ToolApproval, 0, len(calls))
	for _, call := range calls {
		approve, err := approver(ctx, call)
		if err != nil {
			return nil, fmt.Errorf("%w: tool call %s: %v", ErrApprovalPolicy, call.ID, err)
		}
		approvals = append(approvals, ToolApproval{ToolCallID: call.ID, Approve: approve})
		slog.DebugContext(ctx, "tool call decided",
			"run_id", run.ID,
			"tool_call_id", call.ID,
			"tool", call.Name,
			"approved", approve,
		)
	}

	return c.SubmitToolApprovals(ctx, run.ThreadID, run.ID, approvals)
}
