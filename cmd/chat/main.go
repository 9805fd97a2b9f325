// Command chat is a terminal client for the Iron Lady chatbot API.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	serverURL string
	timeout   time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the Iron Lady leadership programs assistant",
	Long:  "Interactive terminal client for the Iron Lady chatbot API. Type a question and press Enter; /quit exits.",
	RunE:  runInteractive,
}

func init() {
	defaultURL := os.Getenv("CHAT_SERVER_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:5000"
	}
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultURL, "Base URL of the chatbot API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Per-request timeout")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
