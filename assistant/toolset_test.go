// Copyright (c) Microsoft. All rights reserved.

package assistant_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/microsoft/workplace-assistant/go/assistant"
	"github.com/microsoft/workplace-assistant/go/foundry"
)

// fakeConnections is a scripted ConnectionGetter.
type fakeConnections struct {
	conn  *foundry.Connection
	err   error
	calls int
}

func (f *fakeConnections) GetConnection(_ context.Context, _ string) (*foundry.Connection, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.conn, nil
}

func TestBuildToolset_Grounded(t *testing.T) {
	connections := &fakeConnections{conn: &foundry.Connection{ID: "conn_1", Name: "contoso-policies"}}

	ts := assistant.BuildToolset(context.Background(), connections, assistant.ToolsetConfig{
		SharePointConnection: "contoso-policies",
	})

	if !ts.Grounded {
		t.Error("Grounded = false")
	}
	if len(ts.Tools) != 2 {
		t.Fatalf("len(Tools) = %d", len(ts.Tools))
	}
	sp, ok := ts.Tools[0].(*foundry.SharePointTool)
	if !ok || sp.ConnectionID != "conn_1" {
		t.Errorf("Tools[0] = %#v", ts.Tools[0])
	}
	if _, ok := ts.Tools[1].(*foundry.MCPTool); !ok {
		t.Errorf("Tools[1] = %T", ts.Tools[1])
	}
	if !strings.Contains(ts.Instructions, "Search SharePoint") {
		t.Error("grounded instructions should claim SharePoint capability")
	}
}

func TestBuildToolset_DegradesWhenConnectionUnavailable(t *testing.T) {
	connections := &fakeConnections{err: errors.New("connection not found")}

	ts := assistant.BuildToolset(context.Background(), connections, assistant.ToolsetConfig{
		SharePointConnection: "nonexistent",
	})

	if ts.Grounded {
		t.Error("Grounded = true despite connection failure")
	}
	if len(ts.Tools) != 1 {
		t.Fatalf("len(Tools) = %d, want only the MCP tool", len(ts.Tools))
	}
	for _, tool := range ts.Tools {
		if tool.ToolType() == foundry.ToolTypeSharePoint {
			t.Error("degraded toolset must not contain a SharePoint descriptor")
		}
	}
	// Instructions must not claim the unavailable capability.
	if strings.Contains(ts.Instructions, "Search SharePoint") {
		t.Error("degraded instructions claim SharePoint capability")
	}
	if !strings.Contains(ts.Instructions, "SharePoint integration is not available") {
		t.Error("degraded instructions should state the limitation")
	}
}

func TestBuildToolset_NoConnectionConfigured(t *testing.T) {
	connections := &fakeConnections{}

	ts := assistant.BuildToolset(context.Background(), connections, assistant.ToolsetConfig{})

	if connections.calls != 0 {
		t.Errorf("GetConnection called %d times without a configured connection", connections.calls)
	}
	if ts.Grounded {
		t.Error("Grounded = true with no connection configured")
	}
	if len(ts.Tools) != 1 {
		t.Fatalf("len(Tools) = %d", len(ts.Tools))
	}
	mcp := ts.Tools[0].(*foundry.MCPTool)
	if mcp.ServerURL != assistant.DefaultMCPServerURL {
		t.Errorf("ServerURL = %q, want default", mcp.ServerURL)
	}
}

func TestBuildToolset_CustomMCPServerURL(t *testing.T) {
	ts := assistant.BuildToolset(context.Background(), &fakeConnections{}, assistant.ToolsetConfig{
		MCPServerURL: "https://docs.internal.example/mcp",
	})

	mcp := ts.Tools[0].(*foundry.MCPTool)
	if mcp.ServerURL != "https://docs.internal.example/mcp" {
		t.Errorf("ServerURL = %q", mcp.ServerURL)
	}
}
