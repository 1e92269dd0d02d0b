// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command ragflow is the command-line client for the RAGFlow
// retrieval-augmented-generation service. It drives chat and agent
// completions, dataset and document management, and knowledge-graph and
// RAPTOR index operations. Every invocation needs an API key, supplied via
// --api-key, the RAGFLOW_API_KEY environment variable, or a config file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/ragkit/internal/config"
	"github.com/MKhiriev/ragkit/internal/logger"
	"github.com/MKhiriev/ragkit/internal/ragflow"
	"github.com/MKhiriev/ragkit/internal/session"
)

var (
	flagAPIKey  string
	flagBaseURL string
	flagTimeout time.Duration
	flagRetries int
	flagBackoff time.Duration
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:           "ragflow",
	Short:         "Client for the RAGFlow retrieval-augmented-generation service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and exits non-zero on any command error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagAPIKey, "api-key", "k", "", "RAGFlow API key")
	rootCmd.PersistentFlags().StringVarP(&flagBaseURL, "base-url", "u", "", "RAGFlow API base URL")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "per-request timeout")
	rootCmd.PersistentFlags().IntVar(&flagRetries, "retries", 0, "retry attempts for transient failures")
	rootCmd.PersistentFlags().DurationVar(&flagBackoff, "backoff", 0, "base retry backoff")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to JSON config file")

	rootCmd.AddCommand(chatCmd, agentCmd, datasetCmd, documentCmd, graphCmd, raptorCmd, versionCmd)
}

// newService builds the RAG service client from the merged configuration.
// Flag values act as the highest-priority config layer; the API key is
// required.
func newService(cmd *cobra.Command) (ragflow.Service, error) {
	overrides := &config.StructuredConfig{JSONFilePath: flagConfig}
	overrides.RAGFlow.APIKey = flagAPIKey
	overrides.RAGFlow.BaseURL = flagBaseURL
	if cmd.Flags().Changed("timeout") {
		overrides.RAGFlow.RequestTimeout = flagTimeout
	}
	if cmd.Flags().Changed("retries") {
		overrides.RAGFlow.RetryCount = flagRetries
	}
	if cmd.Flags().Changed("backoff") {
		overrides.RAGFlow.RetryBackoff = flagBackoff
	}

	cfg, err := config.GetConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err = cfg.RAGFlow.Validate(); err != nil {
		return nil, err
	}

	log := logger.NewClientLogger("ragflow-client")
	return ragflow.New(session.Config{
		BaseURL:        cfg.RAGFlow.BaseURL,
		RequestTimeout: cfg.RAGFlow.RequestTimeout,
		RetryCount:     cfg.RAGFlow.RetryCount,
		RetryBackoff:   cfg.RAGFlow.RetryBackoff,
		APIKey:         cfg.RAGFlow.APIKey,
	}, log)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build information",
	Run: func(cmd *cobra.Command, args []string) {
		printBuildInfo()
	},
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
