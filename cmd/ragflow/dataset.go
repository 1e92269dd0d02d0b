// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ragkit/internal/ragflow"
	"github.com/MKhiriev/ragkit/models"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Dataset management operations",
}

// ── create ──────────────────────────────────────────────────────────────────

type datasetCreateOptions struct {
	name           string
	embeddingModel string
	chunkMethod    string
	description    string
}

var datasetCreateFlags datasetCreateOptions

var datasetCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return runDatasetCreate(cmd.Context(), svc, cmd.OutOrStdout(), datasetCreateFlags)
	},
}

func runDatasetCreate(ctx context.Context, svc ragflow.Service, w io.Writer, opts datasetCreateOptions) error {
	dataset, err := svc.CreateDataset(ctx, models.CreateDatasetRequest{
		Name:           opts.name,
		Description:    opts.description,
		EmbeddingModel: opts.embeddingModel,
		ChunkMethod:    opts.chunkMethod,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Created dataset: %s (ID: %s)\n", dataset.Name, dataset.ID)
	return nil
}

// ── list ────────────────────────────────────────────────────────────────────

type datasetListOptions struct {
	page     int
	pageSize int
	name     string
}

var datasetListFlags datasetListOptions

var datasetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List datasets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return runDatasetList(cmd.Context(), svc, cmd.OutOrStdout(), datasetListFlags)
	},
}

func runDatasetList(ctx context.Context, svc ragflow.Service, w io.Writer, opts datasetListOptions) error {
	list, err := svc.ListDatasets(ctx, ragflow.ListDatasetsOptions{
		Page:     opts.page,
		PageSize: opts.pageSize,
		Name:     opts.name,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Found %d datasets:\n", list.Total)
	for _, dataset := range list.Datasets {
		fmt.Fprintf(w, "- %s (ID: %s) - %d documents\n", dataset.Name, dataset.ID, dataset.DocumentCount)
	}

	return nil
}

// ── update ──────────────────────────────────────────────────────────────────

type datasetUpdateOptions struct {
	datasetID   string
	name        string
	description string
	chunkMethod string

	updates map[string]any
}

var datasetUpdateFlags datasetUpdateOptions

var datasetUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update dataset fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}

		datasetUpdateFlags.updates = map[string]any{}
		if cmd.Flags().Changed("name") {
			datasetUpdateFlags.updates["name"] = datasetUpdateFlags.name
		}
		if cmd.Flags().Changed("description") {
			datasetUpdateFlags.updates["description"] = datasetUpdateFlags.description
		}
		if cmd.Flags().Changed("chunk-method") {
			datasetUpdateFlags.updates["chunk_method"] = datasetUpdateFlags.chunkMethod
		}

		return runDatasetUpdate(cmd.Context(), svc, cmd.OutOrStdout(), datasetUpdateFlags)
	},
}

func runDatasetUpdate(ctx context.Context, svc ragflow.Service, w io.Writer, opts datasetUpdateOptions) error {
	if len(opts.updates) == 0 {
		return fmt.Errorf("nothing to update: give at least one of --name, --description, --chunk-method")
	}

	if err := svc.UpdateDataset(ctx, opts.datasetID, opts.updates); err != nil {
		return err
	}

	fmt.Fprintf(w, "Updated dataset %s\n", opts.datasetID)
	return nil
}

// ── delete ──────────────────────────────────────────────────────────────────

var datasetDeleteIDs []string

var datasetDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete datasets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return runDatasetDelete(cmd.Context(), svc, cmd.OutOrStdout(), datasetDeleteIDs)
	},
}

func runDatasetDelete(ctx context.Context, svc ragflow.Service, w io.Writer, ids []string) error {
	if err := svc.DeleteDatasets(ctx, ids); err != nil {
		return err
	}

	fmt.Fprintf(w, "Deleted %d datasets\n", len(ids))
	return nil
}

func init() {
	datasetCreateCmd.Flags().StringVar(&datasetCreateFlags.name, "name", "", "dataset name")
	datasetCreateCmd.Flags().StringVar(&datasetCreateFlags.description, "description", "", "dataset description")
	datasetCreateCmd.Flags().StringVar(&datasetCreateFlags.embeddingModel, "embedding-model", ragflow.DefaultEmbeddingModel, "embedding model")
	datasetCreateCmd.Flags().StringVar(&datasetCreateFlags.chunkMethod, "chunk-method", ragflow.DefaultChunkMethod, "chunking method")
	_ = datasetCreateCmd.MarkFlagRequired("name")

	datasetListCmd.Flags().IntVar(&datasetListFlags.page, "page", ragflow.DefaultPage, "page number")
	datasetListCmd.Flags().IntVar(&datasetListFlags.pageSize, "page-size", ragflow.DefaultPageSize, "items per page")
	datasetListCmd.Flags().StringVar(&datasetListFlags.name, "name", "", "filter by dataset name")

	datasetUpdateCmd.Flags().StringVar(&datasetUpdateFlags.datasetID, "dataset-id", "", "dataset ID")
	datasetUpdateCmd.Flags().StringVar(&datasetUpdateFlags.name, "name", "", "new dataset name")
	datasetUpdateCmd.Flags().StringVar(&datasetUpdateFlags.description, "description", "", "new dataset description")
	datasetUpdateCmd.Flags().StringVar(&datasetUpdateFlags.chunkMethod, "chunk-method", "", "new chunking method")
	_ = datasetUpdateCmd.MarkFlagRequired("dataset-id")

	datasetDeleteCmd.Flags().StringSliceVar(&datasetDeleteIDs, "ids", nil, "dataset IDs to delete")
	_ = datasetDeleteCmd.MarkFlagRequired("ids")

	datasetCmd.AddCommand(datasetCreateCmd, datasetListCmd, datasetUpdateCmd, datasetDeleteCmd)
}
