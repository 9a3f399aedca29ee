// Copyright (c) Microsoft. All rights reserved.

package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/microsoft/workplace-assistant/go/foundry"
)

// Assistant answers workplace questions through a single service-side
// agent. Questions are answered serially: each Ask creates a fresh thread,
// runs the agent to a terminal state, and tears the thread down. Create one
// with [New], attach the agent with [Assistant.Start], and release it with
// [Assistant.Close].
type Assistant struct {
	client          *foundry.Client
	model           string
	name            string
	toolset         ToolsetConfig
	poll            foundry.PollOptions
	agent           *foundry.Agent
	toolsetResolved Toolset
}

// AssistantOption configures an [Assistant] via [New].
type AssistantOption func(*Assistant)

// WithName sets the agent's display name.
func WithName(name string) AssistantOption {
	return func(a *Assistant) { a.name = name }
}

// WithToolset names the optional external resources to attach.
func WithToolset(cfg ToolsetConfig) AssistantOption {
	return func(a *Assistant) { a.toolset = cfg }
}

// WithPollOptions overrides run polling behavior.
func WithPollOptions(opts foundry.PollOptions) AssistantOption {
	return func(a *Assistant) { a.poll = opts }
}

// WithApprovalPolicy sets the decision function for pending tool calls.
func WithApprovalPolicy(policy foundry.ApprovalPolicy) AssistantOption {
	return func(a *Assistant) { a.poll.Approver = policy }
}

// New creates an Assistant bound to a model deployment.
func New(client *foundry.Client, model string, opts ...AssistantOption) *Assistant {
	a := &Assistant{
		client: client,
		model:  model,
		name:   "Modern Workplace Assistant",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start resolves the toolset and creates the service-side agent.
// Unavailable optional tools degrade the toolset; Start fails only when
// agent creation itself fails.
func (a *Assistant) Start(ctx context.Context) error {
	a.toolsetResolved = BuildToolset(ctx, a.client, a.toolset)

	agent, err := a.client.CreateAgent(ctx, foundry.AgentDefinition{
		Name:         a.name,
		Model:        a.model,
		Instructions: a.toolsetResolved.Instructions,
		Tools:        foundry.Tools(a.toolsetResolved.Tools),
	})
	if err != nil {
		return fmt.Errorf("create agent: %w", err)
	}
	a.agent = agent

	slog.InfoContext(ctx, "assistant started",
		"agent_id", agent.ID,
		"grounded", a.toolsetResolved.Grounded,
		"tool_count", len(a.toolsetResolved.Tools),
	)
	return nil
}

// Grounded reports whether SharePoint grounding was attached at Start.
func (a *Assistant) Grounded() bool { return a.toolsetResolved.Grounded }

// AgentID returns the service-side agent identifier, or empty before Start.
func (a *Assistant) AgentID() string {
	if a.agent == nil {
		return ""
	}
	return a.agent.ID
}

// Answer is the outcome of one question-answer exchange.
type Answer struct {
	// Text is the agent's reply. Empty on a completed run means the agent
	// produced no text; callers treat that as a limited response.
	Text string

	// Status is the run's terminal status, or the last status observed
	// before a failure.
	Status foundry.RunStatus
}

// Ask runs one question through the agent and extracts the reply. Every
// question gets its own thread, deleted before returning. Any remote
// failure is reported through the error; the partially filled Answer
// carries the last status observed so batch callers can record it and move
// on to the next question.
func (a *Assistant) Ask(ctx context.Context, question string) (Answer, error) {
	if a.agent == nil {
		return Answer{Status: foundry.RunStatusFailed}, errors.New("assistant not started")
	}

	thread, err := a.client.CreateThread(ctx)
	if err != nil {
		return Answer{Status: foundry.RunStatusFailed}, fmt.Errorf("create thread: %w", err)
	}
	defer func() {
		if derr := a.client.DeleteThread(ctx, thread.ID); derr != nil {
			slog.WarnContext(ctx, "failed to delete thread", "thread_id", thread.ID, "error", derr)
		}
	}()

	if _, err := a.client.CreateMessage(ctx, thread.ID, foundry.RoleUser, question); err != nil {
		return Answer{Status: foundry.RunStatusFailed}, fmt.Errorf("post question: %w", err)
	}

	run, err := a.client.CreateRun(ctx, thread.ID, a.agent.ID)
	if err != nil {
		return Answer{Status: foundry.RunStatusFailed}, fmt.Errorf("submit run: %w", err)
	}

	run, err = a.client.WaitForRun(ctx, run, &a.poll)
	if err != nil {
		status := foundry.RunStatusFailed
		if run != nil && run.Status.IsTerminal() {
			status = run.Status
		}
		return Answer{Status: status}, fmt.Errorf("run %s: %w", run.ID, err)
	}

	messages, err := a.client.ListMessages(ctx, thread.ID, foundry.OrderDescending)
	if err != nil {
		return Answer{Status: run.Status}, fmt.Errorf("list messages: %w", err)
	}

	return Answer{Text: ExtractAnswer(messages), Status: run.Status}, nil
}

// Close deletes the service-side agent. Safe to call when Start failed.
func (a *Assistant) Close(ctx context.Context) error {
	if a.agent == nil {
		return nil
	}
	if err := a.client.DeleteAgent(ctx, a.agent.ID); err != nil {
		return fmt.Errorf("delete agent: %w", err)
	}
	a.agent = nil
	return nil
}
