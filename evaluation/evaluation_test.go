// Copyright (c) Microsoft. All rights reserved.

package evaluation_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/microsoft/workplace-assistant/go/assistant"
	"github.com/microsoft/workplace-assistant/go/evaluation"
	"github.com/microsoft/workplace-assistant/go/foundry"
)

// fakeAsker returns a canned answer per question.
type fakeAsker struct {
	answers map[string]assistant.Answer
	errs    map[string]error
	asked   []string
}

func (f *fakeAsker) Ask(_ context.Context, question string) (assistant.Answer, error) {
	f.asked = append(f.asked, question)
	if err, ok := f.errs[question]; ok {
		return assistant.Answer{Status: foundry.RunStatusFailed}, err
	}
	return f.answers[question], nil
}

const longAnswer = "Remote workers must connect through the corporate VPN and " +
	"complete MFA before accessing internal systems."

func TestRunner_Scoring(t *testing.T) {
	tests := []struct {
		name     string
		answer   assistant.Answer
		keywords []string
		passed   bool
	}{
		{
			name:     "completed long answer with keyword passes",
			answer:   assistant.Answer{Text: longAnswer, Status: foundry.RunStatusCompleted},
			keywords: []string{"VPN"},
			passed:   true,
		},
		{
			name:     "keyword match is case-insensitive",
			answer:   assistant.Answer{Text: longAnswer, Status: foundry.RunStatusCompleted},
			keywords: []string{"vpn"},
			passed:   true,
		},
		{
			name:     "short answer fails",
			answer:   assistant.Answer{Text: "Use the VPN.", Status: foundry.RunStatusCompleted},
			keywords: []string{"VPN"},
			passed:   false,
		},
		{
			name:     "missing keywords fail",
			answer:   assistant.Answer{Text: longAnswer, Status: foundry.RunStatusCompleted},
			keywords: []string{"SharePoint"},
			passed:   false,
		},
		{
			name:     "non-completed run fails regardless of text",
			answer:   assistant.Answer{Text: longAnswer, Status: foundry.RunStatusFailed},
			keywords: []string{"VPN"},
			passed:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asker := &fakeAsker{answers: map[string]assistant.Answer{"q": tt.answer}}
			summary := evaluation.NewRunner(asker).Run(context.Background(), []evaluation.Question{
				{Question: "q", ExpectedKeywords: tt.keywords},
			})

			if len(summary.Results) != 1 {
				t.Fatalf("got %d results, want 1", len(summary.Results))
			}
			if summary.Results[0].Passed != tt.passed {
				t.Errorf("Passed = %v, want %v", summary.Results[0].Passed, tt.passed)
			}
			wantPassed := 0
			if tt.passed {
				wantPassed = 1
			}
			if summary.Passed != wantPassed {
				t.Errorf("summary.Passed = %d, want %d", summary.Passed, wantPassed)
			}
		})
	}
}

func TestRunner_ContinuesPastFailures(t *testing.T) {
	asker := &fakeAsker{
		answers: map[string]assistant.Answer{
			"good": {Text: longAnswer, Status: foundry.RunStatusCompleted},
		},
		errs: map[string]error{
			"bad": errors.New("run failed"),
		},
	}
	questions := []evaluation.Question{
		{Question: "bad", ExpectedKeywords: []string{"VPN"}},
		{Question: "good", ExpectedKeywords: []string{"VPN"}},
	}

	summary := evaluation.NewRunner(asker).Run(context.Background(), questions)

	if len(asker.asked) != 2 {
		t.Fatalf("asked %d questions, want 2", len(asker.asked))
	}
	if summary.Total != 2 || summary.Passed != 1 {
		t.Errorf("Passed/Total = %d/%d, want 1/2", summary.Passed, summary.Total)
	}
	if summary.Results[0].Error == "" {
		t.Error("failed question should record the error")
	}
	if summary.Results[0].Passed {
		t.Error("failed question should not pass")
	}
	if summary.EvaluationID == "" {
		t.Error("summary should carry an evaluation id")
	}
}

func TestSummary_Save(t *testing.T) {
	summary := &evaluation.Summary{
		EvaluationID: "eval-test",
		Passed:       1,
		Total:        1,
		Results: []evaluation.Result{
			{Question: "q", Response: longAnswer, Status: foundry.RunStatusCompleted, Passed: true},
		},
	}
	path := filepath.Join(t.TempDir(), "evaluation_results.json")

	if err := summary.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read results: %v", err)
	}
	var loaded evaluation.Summary
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("unmarshal results: %v", err)
	}
	if loaded.EvaluationID != summary.EvaluationID || loaded.Passed != 1 || len(loaded.Results) != 1 {
		t.Errorf("reloaded summary mismatch: %+v", loaded)
	}
}

func TestLoadQuestions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.jsonl")
	content := `{"question": "What is our VPN policy?", "expected_keywords": ["VPN"]}

{"question": "Which tools are approved?", "expected_keywords": ["Teams", "SharePoint"]}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	questions, err := evaluation.LoadQuestions(path)
	if err != nil {
		t.Fatalf("LoadQuestions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[1].Question != "Which tools are approved?" {
		t.Errorf("question[1] = %q", questions[1].Question)
	}
	if len(questions[1].ExpectedKeywords) != 2 {
		t.Errorf("keywords = %v", questions[1].ExpectedKeywords)
	}
}

func TestLoadQuestions_MalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.jsonl")
	content := `{"question": "ok", "expected_keywords": ["x"]}
not json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := evaluation.LoadQuestions(path)
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name the offending line: %v", err)
	}
}

func TestLoadQuestions_MissingFile(t *testing.T) {
	if _, err := evaluation.LoadQuestions(filepath.Join(t.TempDir(), "absent.jsonl")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultQuestions(t *testing.T) {
	questions := evaluation.DefaultQuestions()
	if len(questions) == 0 {
		t.Fatal("no default questions")
	}
	for i, q := range questions {
		if q.Question == "" {
			t.Errorf("question %d has empty text", i)
		}
		if len(q.ExpectedKeywords) == 0 {
			t.Errorf("question %d has no keywords", i)
		}
	}
}
