// Copyright (c) Microsoft. All rights reserved.

// Package config loads program settings from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Settings holds everything the sample programs need to reach the service.
type Settings struct {
	// ProjectEndpoint is the Foundry project URL. Required.
	ProjectEndpoint string

	// ModelDeployment is the deployed model name. Required.
	ModelDeployment string

	// TenantID selects Azure CLI credentials for a specific tenant when set.
	TenantID string

	// SharePointConnection names the optional document-grounding connection.
	SharePointConnection string

	// MCPServerURL overrides the documentation server. Empty keeps the
	// library default.
	MCPServerURL string

	// PollInterval is the delay between run status checks.
	PollInterval time.Duration
}

// Load reads settings from the environment. Call godotenv.Load first if a
// .env file should participate.
func Load() (*Settings, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("POLL_INTERVAL_MS", 500)

	s := &Settings{
		ProjectEndpoint:      v.GetString("PROJECT_ENDPOINT"),
		ModelDeployment:      v.GetString("MODEL_DEPLOYMENT_NAME"),
		TenantID:             v.GetString("AI_FOUNDRY_TENANT_ID"),
		SharePointConnection: v.GetString("SHAREPOINT_RESOURCE_NAME"),
		MCPServerURL:         v.GetString("MCP_SERVER_URL"),
		PollInterval:         time.Duration(v.GetInt("POLL_INTERVAL_MS")) * time.Millisecond,
	}

	if s.ProjectEndpoint == "" {
		return nil, fmt.Errorf("PROJECT_ENDPOINT is required")
	}
	if s.ModelDeployment == "" {
		return nil, fmt.Errorf("MODEL_DEPLOYMENT_NAME is required")
	}
	return s, nil
}
