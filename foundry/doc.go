// Copyright (c) Microsoft. All rights reserved.

// Package foundry is a typed client for the Foundry agent service: agents,
// conversation threads, asynchronous runs, and tool-call approvals.
//
// Create a client with [New] and an Azure credential:
//
//	cred, _ := azidentity.NewDefaultAzureCredential(nil)
//	client := foundry.New(endpoint, cred)
//
// A question-answer exchange follows the service's run lifecycle:
//
//	thread, _ := client.CreateThread(ctx)
//	client.CreateMessage(ctx, thread.ID, foundry.RoleUser, "What is our MFA policy?")
//	run, _ := client.CreateRun(ctx, thread.ID, agent.ID)
//	run, err := client.WaitForRun(ctx, run, nil)
//
// [Client.WaitForRun] drives the run's state machine: it polls on an
// interval (optionally with backoff), decides pending tool calls through an
// [ApprovalPolicy] when the run enters requires_action, and returns when
// the run is terminal. Cancellation and deadlines are the caller's context.
//
// Tool descriptors ([SharePointTool], [MCPTool]) and message content are
// closed variant sets with a "type" discriminator on the wire, resolved
// where the JSON is parsed rather than carried as untyped maps.
//
// # Testing
//
// The client uses an unexported transport interface internally. Provide a
// mock http.Client via [WithHTTPClient] with a custom RoundTripper.
package foundry
