// Package chat implements the chat command, a single guarded
// financial-literacy question-and-answer turn.
package chat

import (
	"context"
	"fmt"
	"time"

	"vivek/budget-buddy/cmd/root"
	"vivek/budget-buddy/internal/logging"

	"github.com/spf13/cobra"
)

var (
	queryFlag        string
	clearHistoryFlag bool

	// Cmd is the chat command
	Cmd = &cobra.Command{
		Use:   "chat",
		Short: "Ask the financial-literacy assistant a question.",
		Long: `Answers a budgeting or financial-literacy question. With an API key
configured, answers come from the generative backend with the stored
profile and recent history as context; otherwise a built-in knowledge
base answers offline. Restricted topics are always refused.`,
		RunE: run,
	}
)

func init() {
	Cmd.Flags().StringVarP(&queryFlag, "query", "q", "", "Question to ask")
	Cmd.Flags().BoolVar(&clearHistoryFlag, "clear-history", false, "Clear the stored conversation history and exit")
}

func run(cmd *cobra.Command, args []string) error {
	mem := root.OpenMemory()

	if clearHistoryFlag {
		if err := mem.ClearHistory(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		root.Log.Info("Conversation history cleared")
		return nil
	}

	if queryFlag == "" {
		return fmt.Errorf("a query is required, use --query")
	}
	root.Logger().WithField(logging.FieldQuery, queryFlag).Debug("Processing chat turn")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(root.Cfg.AI.TimeoutSeconds)*time.Second)
	defer cancel()

	a := root.NewAssistant(ctx, mem)
	reply := a.Ask(ctx, queryFlag)

	fmt.Println(reply.Text)
	return nil
}
