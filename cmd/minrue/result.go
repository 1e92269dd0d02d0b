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

// resultOptions collects the result command's flag values.
type resultOptions struct {
	output   string
	wait     bool
	timeout  time.Duration
	interval time.Duration
}

var resultFlags resultOptions

var resultCmd = &cobra.Command{
	Use:   "result JOB_ID",
	Short: "Retrieve results for a job",
	Long: `Fetches the result record of a previously submitted job. By default
the command polls until the job reaches a terminal state or the wait
timeout elapses; --wait=false fetches the current state exactly once.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return runResult(cmd.Context(), svc, cmd.OutOrStdout(), args[0], resultFlags)
	},
}

func init() {
	resultCmd.Flags().StringVarP(&resultFlags.output, "output", "o", "", "path to save results")
	resultCmd.Flags().BoolVar(&resultFlags.wait, "wait", true, "poll until the job finishes")
	resultCmd.Flags().DurationVar(&resultFlags.timeout, "wait-timeout", minrue.DefaultWaitTimeout, "maximum time to wait for completion")
	resultCmd.Flags().DurationVar(&resultFlags.interval, "interval", 3*time.Second, "polling interval")
}

func runResult(ctx context.Context, svc minrue.Service, w io.Writer, jobID string, opts resultOptions) error {
	fmt.Fprintf(w, "Retrieving results for job ID: %s\n", jobID)

	var (
		result models.Result
		err    error
	)
	if opts.wait {
		result, err = svc.WaitForResult(ctx, jobID, opts.timeout, opts.interval)
	} else {
		result, err = svc.GetResult(ctx, jobID)
	}
	if err != nil {
		return err
	}

	if !result.Terminal() {
		// single fetch of a still-running job
		return printJSON(w, result)
	}
	if result.Status != models.StatusCompleted {
		return fmt.Errorf("processing failed: %s", result.Error)
	}

	if opts.output != "" {
		if err = os.WriteFile(opts.output, []byte(result.Output), 0600); err != nil {
			return fmt.Errorf("save results: %w", err)
		}
		fmt.Fprintf(w, "Results saved to: %s\n", opts.output)
		return nil
	}

	fmt.Fprintln(w, result.Output)
	return nil
}
