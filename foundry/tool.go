// Copyright (c) Microsoft. All rights reserved.

package foundry

import (
	"encoding/json"
	"fmt"
)

// ToolType identifies the kind of a tool descriptor.
type ToolType string

const (
	ToolTypeSharePoint ToolType = "sharepoint_grounding"
	ToolTypeMCP        ToolType = "mcp"
)

// ApprovalRequirement is the service-side approval mode advertised on a tool.
// Regardless of this setting, runs that do enter requires_action are decided
// by the [ApprovalPolicy] given to the poller.
type ApprovalRequirement string

const (
	ApprovalRequirementNever  ApprovalRequirement = "never"
	ApprovalRequirementAlways ApprovalRequirement = "always"
)

// Tool is a sealed interface over the tool descriptor kinds this service
// accepts. Use a type switch to inspect the underlying type.
type Tool interface {
	// ToolType returns the discriminator for this descriptor.
	ToolType() ToolType

	// toolSealed prevents external implementations.
	toolSealed()
}

type toolBase struct{}

func (toolBase) toolSealed() {}

// SharePointTool grounds an agent in documents reachable through a named
// project connection.
type SharePointTool struct {
	toolBase
	ConnectionID string
}

func (t *SharePointTool) ToolType() ToolType { return ToolTypeSharePoint }

// MCPTool attaches an MCP server to an agent. An empty AllowedTools slice
// permits every tool the server exposes.
type MCPTool struct {
	toolBase
	ServerLabel     string
	ServerURL       string
	AllowedTools    []string
	RequireApproval ApprovalRequirement
}

func (t *MCPTool) ToolType() ToolType { return ToolTypeMCP }

// Tools is a typed slice enabling JSON marshal/unmarshal of polymorphic tool
// descriptor arrays using the wire "type" discriminator.
type Tools []Tool

type sharepointEnvelope struct {
	Type                string `json:"type"`
	SharepointGrounding struct {
		Connections []struct {
			ConnectionID string `json:"connection_id"`
		} `json:"connections"`
	} `json:"sharepoint_grounding"`
}

type mcpEnvelope struct {
	Type            string   `json:"type"`
	ServerLabel     string   `json:"server_label"`
	ServerURL       string   `json:"server_url"`
	AllowedTools    []string `json:"allowed_tools"`
	RequireApproval string   `json:"require_approval,omitempty"`
}

// MarshalJSON serializes each tool descriptor with its type discriminator.
func (ts Tools) MarshalJSON() ([]byte, error) {
	items := make([]json.RawMessage, len(ts))
	for i, t := range ts {
		b, err := marshalTool(t)
		if err != nil {
			return nil, fmt.Errorf("marshal tool[%d]: %w", i, err)
		}
		items[i] = b
	}
	return json.Marshal(items)
}

func marshalTool(t Tool) ([]byte, error) {
	switch v := t.(type) {
	case *SharePointTool:
		env := sharepointEnvelope{Type: string(ToolTypeSharePoint)}
		env.SharepointGrounding.Connections = []struct {
			ConnectionID string `json:"connection_id"`
		}{{ConnectionID: v.ConnectionID}}
		return json.Marshal(env)

	case *MCPTool:
		allowed := v.AllowedTools
		if allowed == nil {
			allowed = []string{}
		}
		return json.Marshal(mcpEnvelope{
			Type:            string(ToolTypeMCP),
			ServerLabel:     v.ServerLabel,
			ServerURL:       v.ServerURL,
			AllowedTools:    allowed,
			RequireApproval: string(v.RequireApproval),
		})

	default:
		return nil, fmt.Errorf("unknown tool type: %T", t)
	}
}

// UnmarshalJSON deserializes a JSON array of tool descriptors using the
// "type" discriminator.
func (ts *Tools) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	result := make([]Tool, len(raw))
	for i, r := range raw {
		var disc struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(r, &disc); err != nil {
			return fmt.Errorf("unmarshal tool[%d] envelope: %w", i, err)
		}
		switch ToolType(disc.Type) {
		case ToolTypeSharePoint:
			var env sharepointEnvelope
			if err := json.Unmarshal(r, &env); err != nil {
				return fmt.Errorf("unmarshal tool[%d]: %w", i, err)
			}
			t := &SharePointTool{}
			if len(env.SharepointGrounding.Connections) > 0 {
				t.ConnectionID = env.SharepointGrounding.Connections[0].ConnectionID
			}
			result[i] = t

		case ToolTypeMCP:
			var env mcpEnvelope
			if err := json.Unmarshal(r, &env); err != nil {
				return fmt.Errorf("unmarshal tool[%d]: %w", i, err)
			}
			result[i] = &MCPTool{
				ServerLabel:     env.ServerLabel,
				ServerURL:       env.ServerURL,
				AllowedTools:    env.AllowedTools,
				RequireApproval: ApprovalRequirement(env.RequireApproval),
			}

		default:
			return fmt.Errorf("unmarshal tool[%d]: unknown tool type %q", i, disc.Type)
		}
	}
	*ts = result
	return nil
}
