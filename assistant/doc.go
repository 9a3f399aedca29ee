// Copyright (c) Microsoft. All rights reserved.

// Package assistant implements the Modern Workplace Assistant: an agent
// that answers employee questions by combining optional SharePoint document
// grounding with the Microsoft Learn MCP documentation server.
//
//	client := foundry.New(endpoint, cred)
//	wa := assistant.New(client, model,
//	    assistant.WithToolset(assistant.ToolsetConfig{
//	        SharePointConnection: "contoso-policies",
//	    }),
//	)
//	if err := wa.Start(ctx); err != nil { ... }
//	defer wa.Close(ctx)
//
//	answer, err := wa.Ask(ctx, "What is our MFA policy?")
//
// A SharePoint connection that cannot be resolved degrades the assistant to
// technical-guidance-only mode rather than failing Start; the instruction
// text always matches the tools actually attached.
package assistant
