package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ragkit/internal/ragflow"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Document management operations",
}

// ── upload ──────────────────────────────────────────────────────────────────

type documentUploadOptions struct {
	datasetID string
	files     []string
}

var documentUploadFlags documentUploadOptions

var documentUploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload documents into a dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return runDocumentUpload(cmd.Context(), svc, cmd.OutOrStdout(), documentUploadFlags)
	},
}

func runDocumentUpload(ctx context.Context, svc ragflow.Service, w io.Writer, opts documentUploadOptions) error {
	documents, err := svc.UploadDocuments(ctx, opts.datasetID, opts.files)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Uploaded %d documents\n", len(documents))
	for _, doc := range documents {
		fmt.Fprintf(w, "- %s (ID: %s)\n", doc.Name, doc.ID)
	}

	return nil
}

// ── update ──────────────────────────────────────────────────────────────────

type documentUpdateOptions struct {
	datasetID   string
	documentID  string
	name        string
	chunkMethod string

	updates map[string]any
}

var documentUpdateFlags documentUpdateOptions

var documentUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update document fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}

		documentUpdateFlags.updates = map[string]any{}
		if cmd.Flags().Changed("name") {
			documentUpdateFlags.updates["name"] = documentUpdateFlags.name
		}
		if cmd.Flags().Changed("chunk-method") {
			documentUpdateFlags.updates["chunk_method"] = documentUpdateFlags.chunkMethod
		}

		return runDocumentUpdate(cmd.Context(), svc, cmd.OutOrStdout(), documentUpdateFlags)
	},
}

func runDocumentUpdate(ctx context.Context, svc ragflow.Service, w io.Writer, opts documentUpdateOptions) error {
	if len(opts.updates) == 0 {
		return fmt.Errorf("nothing to update: give at least one of --name, --chunk-method")
	}

	if err := svc.UpdateDocument(ctx, opts.datasetID, opts.documentID, opts.updates); err != nil {
		return err
	}

	fmt.Fprintf(w, "Updated document %s\n", opts.documentID)
	return nil
}

func init() {
	documentUploadCmd.Flags().StringVar(&documentUploadFlags.datasetID, "dataset-id", "", "dataset ID")
	documentUploadCmd.Flags().StringSliceVar(&documentUploadFlags.files, "file", nil, "files to upload (repeatable)")
	_ = documentUploadCmd.MarkFlagRequired("dataset-id")
	_ = documentUploadCmd.MarkFlagRequired("file")

	documentUpdateCmd.Flags().StringVar(&documentUpdateFlags.datasetID, "dataset-id", "", "dataset ID")
	documentUpdateCmd.Flags().StringVar(&documentUpdateFlags.documentID, "document-id", "", "document ID")
	documentUpdateCmd.Flags().StringVar(&documentUpdateFlags.name, "name", "", "new document name")
	documentUpdateCmd.Flags().StringVar(&documentUpdateFlags.chunkMethod, "chunk-method", "", "new chunking method")
	_ = documentUpdateCmd.MarkFlagRequired("dataset-id")
	_ = documentUpdateCmd.MarkFlagRequired("document-id")

	documentCmd.AddCommand(documentUploadCmd, documentUpdateCmd)
}
