// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command minrue is the command-line client for the MinRUE
// document-processing service. It submits files for processing, polls for
// results, and exposes the service's health, model, and task listings.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/ragkit/internal/config"
	"github.com/MKhiriev/ragkit/internal/logger"
	"github.com/MKhiriev/ragkit/internal/minrue"
	"github.com/MKhiriev/ragkit/internal/session"
)

var (
	flagBaseURL string
	flagTimeout time.Duration
	flagRetries int
	flagBackoff time.Duration
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:           "minrue",
	Short:         "Client for the MinRUE document-processing service",
	Long: `minrue submits documents to the MinRUE backend for processing and
retrieves the results. Connection settings come from flags, MINRUE_*
environment variables, an optional JSON config file, and built-in
defaults, in that priority order.`,
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
	rootCmd.PersistentFlags().StringVarP(&flagBaseURL, "base-url", "u", "", "MinRUE API base URL")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "per-request timeout")
	rootCmd.PersistentFlags().IntVar(&flagRetries, "retries", 0, "retry attempts for transient failures")
	rootCmd.PersistentFlags().DurationVar(&flagBackoff, "backoff", 0, "base retry backoff")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to JSON config file")

	rootCmd.AddCommand(healthCmd, modelsCmd, tasksCmd, processCmd, resultCmd, versionCmd)
}

// newService builds the service client from the merged configuration. Flag
// values act as the highest-priority config layer.
func newService(cmd *cobra.Command) (minrue.Service, error) {
	overrides := &config.StructuredConfig{JSONFilePath: flagConfig}
	overrides.MinRUE.BaseURL = flagBaseURL
	if cmd.Flags().Changed("timeout") {
		overrides.MinRUE.RequestTimeout = flagTimeout
	}
	if cmd.Flags().Changed("retries") {
		overrides.MinRUE.RetryCount = flagRetries
	}
	if cmd.Flags().Changed("backoff") {
		overrides.MinRUE.RetryBackoff = flagBackoff
	}

	cfg, err := config.GetConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewClientLogger("minrue-client")
	return minrue.New(session.Config{
		BaseURL:        cfg.MinRUE.BaseURL,
		RequestTimeout: cfg.MinRUE.RequestTimeout,
		RetryCount:     cfg.MinRUE.RetryCount,
		RetryBackoff:   cfg.MinRUE.RetryBackoff,
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
