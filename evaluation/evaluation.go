// Copyright (c) Microsoft. All rights reserved.

// Package evaluation scores the workplace assistant against a fixed set of
// test questions and writes a JSON results summary.
package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/microsoft/workplace-assistant/go/assistant"
	"github.com/microsoft/workplace-assistant/go/foundry"
)

// minResponseLength is the shortest response considered substantive.
const minResponseLength = 50

// Asker answers one question. *assistant.Assistant satisfies it.
type Asker interface {
	Ask(ctx context.Context, question string) (assistant.Answer, error)
}

// Result records the outcome of one evaluated question.
type Result struct {
	Question         string            `json:"question"`
	Response         string            `json:"response"`
	Status           foundry.RunStatus `json:"status"`
	ResponseLength   int               `json:"response_length"`
	Passed           bool              `json:"passed"`
	ExpectedKeywords []string          `json:"expected_keywords"`
	Error            string            `json:"error,omitempty"`
}

// Summary is the saved output of an evaluation run.
type Summary struct {
	EvaluationID string   `json:"evaluation_id"`
	Passed       int      `json:"passed"`
	Total        int      `json:"total"`
	Results      []Result `json:"results"`
}

// Runner evaluates questions serially through an [Asker].
type Runner struct {
	asker Asker
}

// NewRunner creates a Runner.
func NewRunner(asker Asker) *Runner {
	return &Runner{asker: asker}
}

// Run asks every question and scores the responses. A question passes when
// its run completed, the response exceeds the minimum length, and at least
// one expected keyword appears (case-insensitive). A failed question is
// recorded and the batch continues.
func (r *Runner) Run(ctx context.Context, questions []Question) *Summary {
	summary := &Summary{
		EvaluationID: uuid.NewString(),
		Total:        len(questions),
	}

	for i, q := range questions {
		slog.InfoContext(ctx, "evaluating question",
			"index", i+1,
			"total", len(questions),
			"question", q.Question,
		)

		result := Result{
			Question:         q.Question,
			ExpectedKeywords: q.ExpectedKeywords,
		}

		answer, err := r.asker.Ask(ctx, q.Question)
		result.Status = answer.Status
		if err != nil {
			result.Error = err.Error()
			slog.WarnContext(ctx, "question failed", "question", q.Question, "error", err)
		} else {
			result.Response = answer.Text
			result.ResponseLength = len(answer.Text)
			result.Passed = score(answer, q.ExpectedKeywords)
		}

		if result.Passed {
			summary.Passed++
		}
		summary.Results = append(summary.Results, result)
	}

	slog.InfoContext(ctx, "evaluation finished",
		"evaluation_id", summary.EvaluationID,
		"passed", summary.Passed,
		"total", summary.Total,
	)
	return summary
}

// score applies the pass criteria to one answer.
func score(answer assistant.Answer, keywords []string) bool {
	if answer.Status != foundry.RunStatusCompleted {
		return false
	}
	if len(answer.Text) <= minResponseLength {
		return false
	}
	lower := strings.ToLower(answer.Text)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Save writes the summary as indented JSON.
func (s *Summary) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
