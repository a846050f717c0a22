// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/godbound-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "godbound-api",
	Short: "Godbound sheet gRPC server",
	Long:  `godbound-api owns Godbound character sheets and resolves checks, effort and damage on their behalf.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
