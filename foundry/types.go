// Copyright (c) Microsoft. All rights reserved.

package foundry

// Role identifies the author of a [Message].
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// RunStatus is the lifecycle state of a [Run].
type RunStatus string

const (
	RunStatusQueued         RunStatus = "queued"
	RunStatusInProgress     RunStatus = "in_progress"
	RunStatusRequiresAction RunStatus = "requires_action"
	RunStatusCompleted      RunStatus = "completed"
	RunStatusFailed         RunStatus = "failed"
	RunStatusCancelled      RunStatus = "cancelled"
	RunStatusExpired        RunStatus = "expired"
)

// IsTerminal reports whether the run has reached a final state and will
// not change on subsequent polls.
func (s RunStatus) IsTerminal() bool {
	switch s {
	case RunStatusCompleted, RunStatusFailed, RunStatusCancelled, RunStatusExpired:
		return true
	}
	return false
}

// Agent is a server-side agent definition: a model deployment, instruction
// text, and a set of tool descriptors.
type Agent struct {
	ID           string `json:"id"`
	Name         string `json:"name,omitempty"`
	Model        string `json:"model"`
	Instructions string `json:"instructions,omitempty"`
	Tools        Tools  `json:"tools,omitempty"`
	CreatedAt    int64  `json:"created_at,omitempty"`
}

// AgentDefinition is the request body for [Client.CreateAgent].
type AgentDefinition struct {
	Name         string `json:"name,omitempty"`
	Model        string `json:"model"`
	Instructions string `json:"instructions,omitempty"`
	Tools        Tools  `json:"tools,omitempty"`
}

// Thread is a server-side conversation: an ordered message history for one
// question-answer exchange.
type Thread struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

// Message is a single entry in a thread. Contents is a closed variant set
// resolved at the JSON boundary; in practice the service returns text.
type Message struct {
	ID        string   `json:"id"`
	ThreadID  string   `json:"thread_id,omitempty"`
	Role      Role     `json:"role"`
	Contents  Contents `json:"content"`
	CreatedAt int64    `json:"created_at,omitempty"`
}

// Run is one asynchronous execution of an agent against a thread.
// Status transitions queued → in_progress → {completed | failed |
// requires_action → in_progress after approval submission}.
type Run struct {
	ID             string          `json:"id"`
	ThreadID       string          `json:"thread_id"`
	AgentID        string          `json:"agent_id"`
	Status         RunStatus       `json:"status"`
	RequiredAction *RequiredAction `json:"required_action,omitempty"`
	LastError      *RunError       `json:"last_error,omitempty"`
	CreatedAt      int64           `json:"created_at,omitempty"`
}

// RunError carries the service's failure detail for a failed run.
type RunError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// RequiredAction is present while a run is in [RunStatusRequiresAction]:
// the service is waiting for the caller to decide pending tool calls.
type RequiredAction struct {
	Type               string              `json:"type"`
	SubmitToolApproval *SubmitToolApproval `json:"submit_tool_approval,omitempty"`
}

// SubmitToolApproval lists the tool calls awaiting a decision.
type SubmitToolApproval struct {
	ToolCalls []ToolCall `json:"tool_calls"`
}

// ToolCall is a pending tool invocation awaiting approval.
type ToolCall struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

// ToolApproval is the caller's decision for one pending [ToolCall].
type ToolApproval struct {
	ToolCallID string `json:"tool_call_id"`
	Approve    bool   `json:"approve"`
}

// Connection is a named project connection to an external resource
// (e.g. a SharePoint site) configured in the project portal.
type Connection struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// MessageOrder controls the sort order of [Client.ListMessages].
type MessageOrder string

const (
	OrderAscending  MessageOrder = "asc"
	OrderDescending MessageOrder = "desc"
)
