package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/godbound-api/internal/handlers/sheet/v1alpha1"
)

var limit int

var messagesCmd = &cobra.Command{
	Use:   "messages [subject-id]",
	Short: "List a subject's chat log",
	Args:  cobra.ExactArgs(1),
	RunE:  listMessages,
}

var clearMessagesCmd = &cobra.Command{
	Use:   "clear-messages [user-id] [subject-id]",
	Short: "Clear a subject's chat log",
	Args:  cobra.ExactArgs(2),
	RunE:  clearMessages,
}

func init() {
	messagesCmd.Flags().IntVar(&limit, "limit", 20, "most recent messages to show, 0 for all")
}

func listMessages(_ *cobra.Command, args []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListMessages(ctx, &v1alpha1.ListMessagesRequest{
		SubjectID: args[0],
		Limit:     limit,
	})
	if err != nil {
		return fmt.Errorf("failed to list messages: %w", err)
	}

	for _, m := range resp.Messages {
		fmt.Printf("[%s] %s %s", m.CreatedAt.Format("15:04:05"), m.Speaker, m.Kind)
		if m.Formula != "" {
			fmt.Printf(" %s = %d %v", m.Formula, m.Total, m.Dice)
		}
		fmt.Println()
	}
	fmt.Printf("\n%d message(s)\n", len(resp.Messages))
	return nil
}

func clearMessages(_ *cobra.Command, args []string) error {
	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ClearMessages(ctx, &v1alpha1.ClearMessagesRequest{
		UserID:    args[0],
		SubjectID: args[1],
	})
	if err != nil {
		return fmt.Errorf("failed to clear messages: %w", err)
	}

	fmt.Printf("Deleted %d message(s)\n", resp.Deleted)
	return nil
}
