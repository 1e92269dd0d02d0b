package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ragkit/internal/minrue"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List supported task types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return runTasks(cmd.Context(), svc, cmd.OutOrStdout())
	},
}

func runTasks(ctx context.Context, svc minrue.Service, w io.Writer) error {
	list, err := svc.ListTasks(ctx)
	if err != nil {
		return err
	}

	return printJSON(w, list)
}
