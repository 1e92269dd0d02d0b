package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/ragkit/internal/ragflow"
	"github.com/MKhiriev/ragkit/models"
)

// chatOptions collects the chat completion command's flag values.
type chatOptions struct {
	chatID      string
	message     string
	stream      bool
	noReference bool
}

var chatFlags chatOptions

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat completion operations",
}

var chatCompletionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Create a chat completion",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd)
		if err != nil {
			return err
		}
		return runChatCompletion(cmd.Context(), svc, cmd.OutOrStdout(), chatFlags)
	},
}

func init() {
	chatCompletionCmd.Flags().StringVar(&chatFlags.chatID, "chat-id", "", "chat assistant ID")
	chatCompletionCmd.Flags().StringVar(&chatFlags.message, "message", "", "user message")
	chatCompletionCmd.Flags().BoolVar(&chatFlags.stream, "stream", false, "request a streaming response")
	chatCompletionCmd.Flags().BoolVar(&chatFlags.noReference, "no-reference", false, "do not include retrieval references")
	_ = chatCompletionCmd.MarkFlagRequired("chat-id")
	_ = chatCompletionCmd.MarkFlagRequired("message")

	chatCmd.AddCommand(chatCompletionCmd)
}

func runChatCompletion(ctx context.Context, svc ragflow.Service, w io.Writer, opts chatOptions) error {
	messages := []models.ChatMessage{{Role: "user", Content: opts.message}}

	resp, err := svc.CreateChatCompletion(ctx, opts.chatID, messages, ragflow.ChatOptions{
		Stream:    opts.stream,
		Reference: !opts.noReference,
	})
	if err != nil {
		return err
	}

	return printJSON(w, resp)
}
