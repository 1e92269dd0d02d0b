package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ragkit/internal/ragflow"
	"github.com/MKhiriev/ragkit/models"
)

// agentOptions collects the agent completion command's flag values.
type agentOptions struct {
	agentID   string
	message   string
	sessionID string
	stream    bool
}

var agentFlags agentOptions

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Agent completion operations",
}

var agentCompletionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Create an agent completion",
	Long: `Sends a message to an agent. Without --session-id the service starts
a new agent session; the response carries the session ID to continue it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return runAgentCompletion(cmd.Context(), svc, cmd.OutOrStdout(), agentFlags)
	},
}

func init() {
	agentCompletionCmd.Flags().StringVar(&agentFlags.agentID, "agent-id", "", "agent ID")
	agentCompletionCmd.Flags().StringVar(&agentFlags.message, "message", "", "user message")
	agentCompletionCmd.Flags().StringVar(&agentFlags.sessionID, "session-id", "", "existing agent session to continue")
	agentCompletionCmd.Flags().BoolVar(&agentFlags.stream, "stream", false, "request a streaming response")
	_ = agentCompletionCmd.MarkFlagRequired("agent-id")
	_ = agentCompletionCmd.MarkFlagRequired("message")

	agentCmd.AddCommand(agentCompletionCmd)
}

func runAgentCompletion(ctx context.Context, svc ragflow.Service, w io.Writer, opts agentOptions) error {
	messages := []models.ChatMessage{{Role: "user", Content: opts.message}}

	resp, err := svc.CreateAgentCompletion(ctx, opts.agentID, messages, ragflow.AgentOptions{
		Stream:    opts.stream,
		SessionID: opts.sessionID,
	})
	if err != nil {
		return err
	}

	return printJSON(w, resp)
}
