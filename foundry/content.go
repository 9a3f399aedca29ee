// Copyright (c) Microsoft. All rights reserved.

package foundry

import (
	"encoding/json"
	"fmt"
)

// ContentType identifies the kind of content within a [Message].
type ContentType string

const (
	ContentTypeText ContentType = "text"
)

// Content is a sealed interface representing a piece of message content.
// Use a type switch to inspect the underlying type.
type Content interface {
	// Type returns the discriminator for this content item.
	Type() ContentType

	// sealed prevents external implementations.
	sealed()
}

// base is embedded by every concrete Content type to satisfy the sealed marker.
type base struct{}

func (base) sealed() {}

// TextContent holds plain text produced by a user or the agent.
type TextContent struct {
	base
	Text string
}

func (c *TextContent) Type() ContentType { return ContentTypeText }

// UnknownContent preserves a content item whose kind this client does not
// model. Listing messages must not fail when the service adds content kinds,
// so unrecognized items are carried opaquely instead of rejected.
type UnknownContent struct {
	base
	TypeName string
	Raw      json.RawMessage
}

func (c *UnknownContent) Type() ContentType { return ContentType(c.TypeName) }

// Contents is a typed slice enabling JSON marshal/unmarshal of polymorphic
// content arrays using the wire "type" discriminator.
type Contents []Content

// Text returns the concatenated text of all [TextContent] items.
func (cs Contents) Text() string {
	var out string
	for _, c := range cs {
		if tc, ok := c.(*TextContent); ok {
			out += tc.Text
		}
	}
	return out
}

// textEnvelope is the wire shape of a text content item.
type textEnvelope struct {
	Type string `json:"type"`
	Text struct {
		Value string `json:"value"`
	} `json:"text"`
}

// MarshalJSON serializes each content item with its type discriminator.
func (cs Contents) MarshalJSON() ([]byte, error) {
	items := make([]json.RawMessage, len(cs))
	for i, c := range cs {
		switch v := c.(type) {
		case *TextContent:
			env := textEnvelope{Type: string(ContentTypeText)}
			env.Text.Value = v.Text
			b, err := json.Marshal(env)
			if err != nil {
				return nil, fmt.Errorf("marshal content[%d]: %w", i, err)
			}
			items[i] = b
		case *UnknownContent:
			items[i] = v.Raw
		default:
			return nil, fmt.Errorf("marshal content[%d]: unknown content type %T", i, c)
		}
	}
	return json.Marshal(items)
}

// UnmarshalJSON deserializes a JSON array of content items using the "type"
// discriminator. Unrecognized kinds become [UnknownContent].
func (cs *Contents) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	result := make([]Content, len(raw))
	for i, r := range raw {
		var disc struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(r, &disc); err != nil {
			return fmt.Errorf("unmarshal content[%d] envelope: %w", i, err)
		}
		switch ContentType(disc.Type) {
		case ContentTypeText:
			var env textEnvelope
			if err := json.Unmarshal(r, &env); err != nil {
				return fmt.Errorf("unmarshal content[%d]: %w", i, err)
			}
			result[i] = &TextContent{Text: env.Text.Value}
		default:
			result[i] = &UnknownContent{TypeName: disc.Type, Raw: append(json.RawMessage(nil), r...)}
		}
	}
	*cs = result
	return nil
}
