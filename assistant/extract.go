// Copyright (c) Microsoft. All rights reserved.

package assistant

import "github.com/microsoft/workplace-assistant/go/foundry"

// ExtractAnswer scans messages (newest first) for the first assistant
// message and returns its first text content value. No assistant text
// yields an empty string; callers treat that as a limited response, not an
// error.
func ExtractAnswer(messages []foundry.Message) string {
	for _, msg := range messages {
		if msg.Role != foundry.RoleAssistant {
			continue
		}
		for _, c := range msg.Contents {
			if tc, ok := c.(*foundry.TextContent); ok {
				return tc.Text
			}
		}
	}
	return ""
}
