// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ragkit/internal/minrue"
	"github.com/MKhiriev/ragkit/models"
)

// Wait parameters used when process is asked to collect the result itself.
const (
	processWaitTimeout  = 120 * time.Second
	processPollInterval = 3 * time.Second
)

// processOptions collects the process command's flag values.
type processOptions struct {
	output      string
	model       string
	task        string
	temperature float64
	maxTokens   int

	// set when the corresponding flag was given on the command line
	hasTemperature bool
	hasMaxTokens   bool
}

var processFlags processOptions

var processCmd = &cobra.Command{
	Use:   "process FILE",
	Short: "Upload a file for processing",
	Long: `Uploads the given file to the MinRUE backend and prints the job ID.
With --output the command also waits for the job to finish and writes the
processed text to the given path.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}

		processFlags.hasTemperature = cmd.Flags().Changed("temperature")
		processFlags.hasMaxTokens = cmd.Flags().Changed("max-tokens")

		return runProcess(cmd.Context(), svc, cmd.OutOrStdout(), args[0], processFlags)
	},
}

func init() {
	processCmd.Flags().StringVarP(&processFlags.output, "output", "o", "", "path to save results; implies waiting for completion")
	processCmd.Flags().StringVarP(&processFlags.model, "model", "m", minrue.DefaultModel, "model to use")
	processCmd.Flags().StringVarP(&processFlags.task, "task", "t", minrue.DefaultTask, "task type")
	processCmd.Flags().Float64Var(&processFlags.temperature, "temperature", 0, "temperature parameter")
	processCmd.Flags().IntVar(&processFlags.maxTokens, "max-tokens", 0, "maximum tokens parameter")
}

func runProcess(ctx context.Context, svc minrue.Service, w io.Writer, path string, opts processOptions) error {
	fmt.Fprintf(w, "Processing file: %s\n", path)

	processOpts := minrue.ProcessOptions{Model: opts.model, Task: opts.task}
	if opts.hasTemperature {
		processOpts.Parameters.Temperature = &opts.temperature
	}
	if opts.hasMaxTokens {
		processOpts.Parameters.MaxTokens = &opts.maxTokens
	}

	job, err := svc.ProcessFile(ctx, path, processOpts)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Processing started with job ID: %s\n", job.JobID)

	if opts.output == "" {
		fmt.Fprintf(w, "To check results later: minrue result %s\n", job.JobID)
		return nil
	}

	fmt.Fprintln(w, "Waiting for results...")
	result, err := svc.WaitForResult(ctx, job.JobID, processWaitTimeout, processPollInterval)
	if err != nil {
		return err
	}
	if result.Status != models.StatusCompleted {
		return fmt.Errorf("processing failed: %s", result.Error)
	}

	if err = os.WriteFile(opts.output, []byte(result.Output), 0600); err != nil {
		return fmt.Errorf("save results: %w", err)
	}
	fmt.Fprintf(w, "Processing completed. Results saved to: %s\n", opts.output)

	return nil
}
