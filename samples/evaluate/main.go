// Copyright (c) Microsoft. All rights reserved.

// Command evaluate scores the Modern Workplace Assistant against the test
// questions in questions.jsonl and writes evaluation_results.json.
//
// Usage:
//
//	export PROJECT_ENDPOINT=https://<project>.services.ai.azure.com/api/projects/<name>
//	export MODEL_DEPLOYMENT_NAME=gpt-4o
//	go run .
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/joho/godotenv"

	"github.com/microsoft/workplace-assistant/go/assistant"
	"github.com/microsoft/workplace-assistant/go/config"
	"github.com/microsoft/workplace-assistant/go/evaluation"
	"github.com/microsoft/workplace-assistant/go/foundry"
)

const (
	questionsFile = "questions.jsonl"
	resultsFile   = "evaluation_results.json"
)

func main() {
	_ = godotenv.Load()

	if os.Getenv("DEBUG") != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	cred, err := newCredential(settings.TenantID)
	if err != nil {
		log.Fatalf("Failed to create Azure credential: %v", err)
	}

	questions, err := evaluation.LoadQuestions(questionsFile)
	if err != nil {
		log.Printf("Could not load %s (%v), using default questions", questionsFile, err)
		questions = evaluation.DefaultQuestions()
	}

	client := foundry.New(settings.ProjectEndpoint, cred)
	wa := assistant.New(client, settings.ModelDeployment,
		assistant.WithToolset(assistant.ToolsetConfig{
			SharePointConnection: settings.SharePointConnection,
			MCPServerURL:         settings.MCPServerURL,
		}),
		assistant.WithPollOptions(foundry.PollOptions{Interval: settings.PollInterval}),
	)

	ctx := context.Background()

	fmt.Println("Creating Modern Workplace Assistant for evaluation...")
	if err := wa.Start(ctx); err != nil {
		log.Fatalf("Failed to start assistant: %v", err)
	}
	defer func() {
		if err := wa.Close(ctx); err != nil {
			log.Printf("Cleanup warning: %v", err)
		}
	}()

	fmt.Printf("Running evaluation with %d test questions...\n", len(questions))
	summary := evaluation.NewRunner(wa).Run(ctx, questions)

	fmt.Printf("\nEvaluation results: %d/%d questions passed\n", summary.Passed, summary.Total)
	for _, r := range summary.Results {
		mark := "FAIL"
		if r.Passed {
			mark = "PASS"
		}
		fmt.Printf("  [%s] %s (length: %d, status: %s)\n", mark, r.Question, r.ResponseLength, r.Status)
	}

	if err := summary.Save(resultsFile); err != nil {
		log.Fatalf("Failed to save results: %v", err)
	}
	fmt.Printf("Results saved to %s\n", resultsFile)
}

func newCredential(tenantID string) (azcore.TokenCredential, error) {
	if tenantID != "" {
		return azidentity.NewAzureCLICredential(&azidentity.AzureCLICredentialOptions{
			TenantID: tenantID,
		})
	}
	return azidentity.NewDefaultAzureCredential(nil)
}
