// Copyright (c) Microsoft. All rights reserved.

package assistant

import (
	"context"
	"log/slog"

	"github.com/microsoft/workplace-assistant/go/foundry"
)

// DefaultMCPServerURL is the Microsoft Learn documentation server used when
// no MCP server is configured.
const DefaultMCPServerURL = "https://learn.microsoft.com/api/mcp"

const mcpServerLabel = "microsoft_learn"

// ConnectionGetter resolves named project connections.
// *foundry.Client satisfies it.
type ConnectionGetter interface {
	GetConnection(ctx context.Context, name string) (*foundry.Connection, error)
}

// ToolsetConfig names the optional external resources an assistant may use.
type ToolsetConfig struct {
	// SharePointConnection is the name of a project connection providing
	// document grounding. Empty means grounding is not configured.
	SharePointConnection string

	// MCPServerURL is the documentation server. Empty selects
	// [DefaultMCPServerURL].
	MCPServerURL string
}

// Toolset is the resolved tool list with instructions that truthfully
// reflect what was attached.
type Toolset struct {
	Tools        []foundry.Tool
	Instructions string
	Grounded     bool
}

// BuildToolset assembles the assistant's tools. A configured SharePoint
// connection that cannot be resolved logs a warning and degrades the
// toolset instead of failing: agent creation never fails solely because an
// optional tool is unavailable. The MCP documentation tool is always
// attached.
func BuildToolset(ctx context.Context, connections ConnectionGetter, cfg ToolsetConfig) Toolset {
	var tools []foundry.Tool
	grounded := false

	if cfg.SharePointConnection != "" {
		conn, err := connections.GetConnection(ctx, cfg.SharePointConnection)
		if err != nil {
			slog.WarnContext(ctx, "sharepoint connection unavailable, continuing without grounding",
				"connection", cfg.SharePointConnection,
				"error", err,
			)
		} else {
			tools = append(tools, &foundry.SharePointTool{ConnectionID: conn.ID})
			grounded = true
			slog.InfoContext(ctx, "sharepoint grounding attached",
				"connection", cfg.SharePointConnection,
			)
		}
	}

	serverURL := cfg.MCPServerURL
	if serverURL == "" {
		serverURL = DefaultMCPServerURL
	}
	tools = append(tools, &foundry.MCPTool{
		ServerLabel:     mcpServerLabel,
		ServerURL:       serverURL,
		AllowedTools:    nil, // all tools the server exposes
		RequireApproval: foundry.ApprovalRequirementNever,
	})

	return Toolset{
		Tools:        tools,
		Instructions: InstructionsFor(grounded),
		Grounded:     grounded,
	}
}
