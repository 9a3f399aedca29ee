// Copyright (c) Microsoft. All rights reserved.

package foundry_test

import (
	"encoding/json"
	"testing"

	"github.com/microsoft/workplace-assistant/go/foundry"
)

func TestContents_UnmarshalText(t *testing.T) {
	data := `[{"type":"text","text":{"value":"hello"}}]`

	var cs foundry.Contents
	if err := json.Unmarshal([]byte(data), &cs); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(cs) != 1 {
		t.Fatalf("len = %d", len(cs))
	}
	tc, ok := cs[0].(*foundry.TextContent)
	if !ok {
		t.Fatalf("cs[0] = %T", cs[0])
	}
	if tc.Text != "hello" {
		t.Errorf("Text = %q", tc.Text)
	}
}

func TestContents_UnknownKindPreserved(t *testing.T) {
	data := `[{"type":"image_file","image_file":{"file_id":"file_1"}},{"type":"text","text":{"value":"caption"}}]`

	var cs foundry.Contents
	if err := json.Unmarshal([]byte(data), &cs); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(cs) != 2 {
		t.Fatalf("len = %d", len(cs))
	}

	unknown, ok := cs[0].(*foundry.UnknownContent)
	if !ok {
		t.Fatalf("cs[0] = %T, want UnknownContent", cs[0])
	}
	if unknown.TypeName != "image_file" {
		t.Errorf("TypeName = %q", unknown.TypeName)
	}

	// Text extraction skips what it does not model.
	if got := cs.Text(); got != "caption" {
		t.Errorf("Text() = %q", got)
	}

	// Round-trip keeps the opaque item intact.
	out, err := json.Marshal(cs)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(out, &raw); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if raw[0]["type"] != "image_file" {
		t.Errorf("round-trip type = %v", raw[0]["type"])
	}
}

func TestContents_MarshalText(t *testing.T) {
	cs := foundry.Contents{&foundry.TextContent{Text: "hi"}}
	out, err := json.Marshal(cs)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `[{"type":"text","text":{"value":"hi"}}]`
	if string(out) != want {
		t.Errorf("Marshal = %s, want %s", out, want)
	}
}

func TestRunStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status   foundry.RunStatus
		terminal bool
	}{
		{foundry.RunStatusQueued, false},
		{foundry.RunStatusInProgress, false},
		{foundry.RunStatusRequiresAction, false},
		{foundry.RunStatusCompleted, true},
		{foundry.RunStatusFailed, true},
		{foundry.RunStatusCancelled, true},
		{foundry.RunStatusExpired, true},
	}
	for _, tc := range tests {
		if got := tc.status.IsTerminal(); got != tc.terminal {
			t.Errorf("%s.IsTerminal() = %v, want %v", tc.status, got, tc.terminal)
		}
	}
}
