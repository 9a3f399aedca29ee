// Copyright (c) Microsoft. All rights reserved.

package assistant_test

import (
	"testing"

	"github.com/microsoft/workplace-assistant/go/assistant"
	"github.com/microsoft/workplace-assistant/go/foundry"
)

func TestExtractAnswer(t *testing.T) {
	tests := []struct {
		name     string
		messages []foundry.Message
		want     string
	}{
		{
			name: "first assistant message wins",
			messages: []foundry.Message{
				{Role: foundry.RoleAssistant, Contents: foundry.Contents{&foundry.TextContent{Text: "newest answer"}}},
				{Role: foundry.RoleAssistant, Contents: foundry.Contents{&foundry.TextContent{Text: "older answer"}}},
				{Role: foundry.RoleUser, Contents: foundry.Contents{&foundry.TextContent{Text: "question"}}},
			},
			want: "newest answer",
		},
		{
			name: "user messages skipped",
			messages: []foundry.Message{
				{Role: foundry.RoleUser, Contents: foundry.Contents{&foundry.TextContent{Text: "follow-up"}}},
				{Role: foundry.RoleAssistant, Contents: foundry.Contents{&foundry.TextContent{Text: "the answer"}}},
			},
			want: "the answer",
		},
		{
			name: "non-text content skipped within message",
			messages: []foundry.Message{
				{Role: foundry.RoleAssistant, Contents: foundry.Contents{
					&foundry.UnknownContent{TypeName: "image_file"},
					&foundry.TextContent{Text: "caption"},
				}},
			},
			want: "caption",
		},
		{
			name: "no assistant message yields empty string",
			messages: []foundry.Message{
				{Role: foundry.RoleUser, Contents: foundry.Contents{&foundry.TextContent{Text: "question"}}},
			},
			want: "",
		},
		{
			name:     "no messages",
			messages: nil,
			want:     "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := assistant.ExtractAnswer(tc.messages); got != tc.want {
				t.Errorf("ExtractAnswer = %q, want %q", got, tc.want)
			}
		})
	}
}
