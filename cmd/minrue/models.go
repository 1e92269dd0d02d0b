package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ragkit/internal/minrue"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available models",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return runModels(cmd.Context(), svc, cmd.OutOrStdout())
	},
}

func runModels(ctx context.Context, svc minrue.Service, w io.Writer) error {
	list, err := svc.ListModels(ctx)
	if err != nil {
		return err
	}

	return printJSON(w, list)
}
