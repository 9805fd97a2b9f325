package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"ironlady-chat/internal/chat"

	"github.com/spf13/cobra"
)

func runInteractive(cmd *cobra.Command, _ []string) error {
	session := chat.NewSession(chat.NewHTTPTransport(serverURL, timeout))
	return converse(cmd.Context(), session, cmd.InOrStdin(), cmd.OutOrStdout())
}

// converse reads one question per line until EOF or /quit.
func converse(ctx context.Context, session *chat.Session, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	for _, msg := range session.Messages() {
		printMessage(out, msg)
	}
	fmt.Fprintln(out, "Try asking:")
	for _, q := range chat.QuickQuestions {
		fmt.Fprintf(out, "  - %s\n", q)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "/quit" {
			return nil
		}

		fmt.Fprintln(out, "...")
		reply, err := session.Submit(ctx, line)
		if errors.Is(err, chat.ErrEmptyInput) {
			continue
		}
		if err != nil {
			return err
		}
		printMessage(out, reply)
	}
}

func printMessage(out io.Writer, msg chat.Message) {
	fmt.Fprintf(out, "[%s] %s: %s\n", msg.Clock(), msg.Sender, msg.Text)
}
