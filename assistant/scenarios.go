// Copyright (c) Microsoft. All rights reserved.

package assistant

// Scenario is a canned business question used by the demonstration sample.
type Scenario struct {
	Title          string
	Question       string
	Context        string
	ExpectedSource string
	LearningPoint  string
}

// BusinessScenarios returns the three canonical workplace questions:
// an internal policy lookup, an external technical lookup, and a question
// requiring both sources.
func BusinessScenarios() []Scenario {
	return []Scenario{
		{
			Title:          "Company Policy Question",
			Question:       "What is our remote work security policy regarding multi-factor authentication?",
			Context:        "Employee needs to understand company MFA requirements",
			ExpectedSource: "SharePoint",
			LearningPoint:  "Internal policy retrieval and interpretation",
		},
		{
			Title:          "Technical Implementation Question",
			Question:       "How do I set up Azure Active Directory conditional access policies?",
			Context:        "IT administrator needs technical implementation steps",
			ExpectedSource: "Microsoft Learn MCP",
			LearningPoint:  "External technical documentation access",
		},
		{
			Title:          "Combined Business Implementation Question",
			Question:       "What Azure AD configuration should I implement to comply with our company's remote work security policy?",
			Context:        "Need to combine policy requirements with technical implementation",
			ExpectedSource: "Both SharePoint and MCP",
			LearningPoint:  "Multi-source intelligence combining internal requirements with external implementation",
		},
	}
}
