// Copyright (c) Microsoft. All rights reserved.

package evaluation

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Question is one test case from a JSON Lines fixture file.
type Question struct {
	Question         string   `json:"question"`
	ExpectedKeywords []string `json:"expected_keywords"`
}

// LoadQuestions reads a JSON Lines file of test questions. Blank lines are
// skipped; a malformed line fails the load with its line number.
func LoadQuestions(path string) ([]Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open questions file: %w", err)
	}
	defer f.Close()

	var questions []Question
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var q Question
		if err := json.Unmarshal([]byte(text), &q); err != nil {
			return nil, fmt.Errorf("parse questions file line %d: %w", line, err)
		}
		questions = append(questions, q)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}
	return questions, nil
}

// DefaultQuestions returns the built-in test set used when no fixture file
// is available.
func DefaultQuestions() []Question {
	return []Question{
		{
			Question:         "What is our remote work policy regarding security requirements?",
			ExpectedKeywords: []string{"remote", "work", "security", "VPN", "MFA"},
		},
		{
			Question:         "How do I set up Azure Active Directory conditional access?",
			ExpectedKeywords: []string{"Azure", "Active Directory", "conditional access"},
		},
		{
			Question:         "What collaboration tools are approved for internal use?",
			ExpectedKeywords: []string{"Teams", "SharePoint", "collaboration"},
		},
		{
			Question:         "What Azure AD configuration should I implement to comply with our company's remote work security policy?",
			ExpectedKeywords: []string{"remote", "Azure", "AD", "policy"},
		},
	}
}
