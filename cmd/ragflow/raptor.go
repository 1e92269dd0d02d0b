package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ragkit/internal/ragflow"
)

var raptorDatasetID string

var raptorCmd = &cobra.Command{
	Use:   "raptor",
	Short: "RAPTOR index operations",
}

var raptorRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Trigger RAPTOR index construction",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return runRaptorRun(cmd.Context(), svc, cmd.OutOrStdout(), raptorDatasetID)
	},
}

var raptorTraceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Show RAPTOR construction progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return runRaptorTrace(cmd.Context(), svc, cmd.OutOrStdout(), raptorDatasetID)
	},
}

func runRaptorRun(ctx context.Context, svc ragflow.Service, w io.Writer, datasetID string) error {
	data, err := svc.ConstructRaptor(ctx, datasetID)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "RAPTOR construction started for dataset %s\n", datasetID)
	return printRawJSON(w, data)
}

func runRaptorTrace(ctx context.Context, svc ragflow.Service, w io.Writer, datasetID string) error {
	data, err := svc.TraceRaptor(ctx, datasetID)
	if err != nil {
		return err
	}

	return printRawJSON(w, data)
}

func init() {
	raptorCmd.PersistentFlags().StringVar(&raptorDatasetID, "dataset-id", "", "dataset ID")
	_ = raptorCmd.MarkPersistentFlagRequired("dataset-id")

	raptorCmd.AddCommand(raptorRunCmd, raptorTraceCmd)
}
