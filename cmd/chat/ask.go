package main

import (
	"strings"

	"ironlady-chat/internal/chat"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question and print the reply",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	session := chat.NewSession(chat.NewHTTPTransport(serverURL, timeout))

	reply, err := session.Submit(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	cmd.Println(reply.Text)
	return nil
}
