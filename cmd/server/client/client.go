// Package client provides test commands for the sheet gRPC service
package client

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/godbound-api/internal/handlers/sheet/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the sheet service",
	Long:  `Client commands allow you to exercise the sheet service by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Subject commands
	ClientCmd.AddCommand(createSubjectCmd)
	ClientCmd.AddCommand(getSubjectCmd)
	ClientCmd.AddCommand(renderCmd)

	// Roll commands
	ClientCmd.AddCommand(rollCheckCmd)
	ClientCmd.AddCommand(rollSaveCmd)
	ClientCmd.AddCommand(dispatchCmd)

	// Chat log commands
	ClientCmd.AddCommand(messagesCmd)
	ClientCmd.AddCommand(clearMessagesCmd)
}

// createSheetClient creates a sheet service client
func createSheetClient() (*v1alpha1.SheetServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewSheetServiceClient(conn), cleanup, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
