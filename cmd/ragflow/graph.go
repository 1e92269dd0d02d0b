package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ragkit/internal/ragflow"
)

var graphDatasetID string

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Knowledge-graph operations",
	Long: `Manages the knowledge graph derived from a dataset's documents.
Construction runs asynchronously server-side; use "graph trace" to follow
its progress and "graph get" to fetch the finished graph.`,
}

var graphRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Trigger knowledge-graph construction",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return runGraphRun(cmd.Context(), svc, cmd.OutOrStdout(), graphDatasetID)
	},
}

var graphGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch the constructed knowledge graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return runGraphGet(cmd.Context(), svc, cmd.OutOrStdout(), graphDatasetID)
	},
}

var graphTraceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Show knowledge-graph construction progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return runGraphTrace(cmd.Context(), svc, cmd.OutOrStdout(), graphDatasetID)
	},
}

var graphDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the knowledge graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return runGraphDelete(cmd.Context(), svc, cmd.OutOrStdout(), graphDatasetID)
	},
}

func runGraphRun(ctx context.Context, svc ragflow.Service, w io.Writer, datasetID string) error {
	data, err := svc.ConstructKnowledgeGraph(ctx, datasetID)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Knowledge-graph construction started for dataset %s\n", datasetID)
	return printRawJSON(w, data)
}

func runGraphGet(ctx context.Context, svc ragflow.Service, w io.Writer, datasetID string) error {
	data, err := svc.GetKnowledgeGraph(ctx, datasetID)
	if err != nil {
		return err
	}

	return printRawJSON(w, data)
}

func runGraphTrace(ctx context.Context, svc ragflow.Service, w io.Writer, datasetID string) error {
	data, err := svc.TraceKnowledgeGraph(ctx, datasetID)
	if err != nil {
		return err
	}

	return printRawJSON(w, data)
}

func runGraphDelete(ctx context.Context, svc ragflow.Service, w io.Writer, datasetID string) error {
	if err := svc.DeleteKnowledgeGraph(ctx, datasetID); err != nil {
		return err
	}

	fmt.Fprintf(w, "Deleted knowledge graph of dataset %s\n", datasetID)
	return nil
}

func init() {
	graphCmd.PersistentFlags().StringVar(&graphDatasetID, "dataset-id", "", "dataset ID")
	_ = graphCmd.MarkPersistentFlagRequired("dataset-id")

	graphCmd.AddCommand(graphRunCmd, graphGetCmd, graphTraceCmd, graphDeleteCmd)
}
