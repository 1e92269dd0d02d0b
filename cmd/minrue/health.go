package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ragkit/internal/minrue"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check service health status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return runHealth(cmd.Context(), svc, cmd.OutOrStdout())
	},
}

func runHealth(ctx context.Context, svc minrue.Service, w io.Writer) error {
	health, err := svc.Health(ctx)
	if err != nil {
		return err
	}

	return printJSON(w, health)
}
