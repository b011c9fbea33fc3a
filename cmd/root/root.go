// Package root contains the root command and the shared wiring used by all
// subcommands.
package root

import (
	"context"

	"vivek/budget-buddy/internal/assistant"
	"vivek/budget-buddy/internal/categories"
	"vivek/budget-buddy/internal/config"
	"vivek/budget-buddy/internal/logging"
	"vivek/budget-buddy/internal/memory"
	"vivek/budget-buddy/internal/transactionparser"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, available after PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "budget-buddy",
		Short: "A budgeting assistant for students: plans, alerts, forecasts and a guarded literacy chat.",
		Long: `budget-buddy derives a monthly budget from a student profile, analyzes
uploaded transaction history, raises overspending alerts, forecasts next
month's spending and answers financial-literacy questions.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to budget-buddy!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLogging(cfg)

			// Currency amounts print as JSON numbers, matching the stored document format.
			decimal.MarshalJSONWithoutQuotes = true
		},
	}
)

// Logger adapts the shared logrus instance to the internal Logger interface.
func Logger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// OpenMemory opens the configured memory document.
func OpenMemory() *memory.Store {
	return memory.NewStore(Cfg.Memory.File, Logger())
}

// NewMapper builds the category mapper with any configured overrides applied.
func NewMapper() *categories.Mapper {
	mapper := categories.NewMapper()
	if err := mapper.LoadOverrides(Cfg.Budget.CategoryOverrides, Logger()); err != nil {
		Log.Warnf("Failed to load category overrides: %v", err)
	}
	return mapper
}

// NewParser builds a transaction CSV parser using the configured delimiter.
func NewParser() *transactionparser.Parser {
	return transactionparser.NewWithDelimiter([]rune(Cfg.CSV.Delimiter)[0], Logger())
}

// NewAssistant builds the literacy assistant. When AI is enabled but the
// backend cannot be initialized, the session falls back permanently to
// offline mode.
func NewAssistant(ctx context.Context, mem *memory.Store) *assistant.Assistant {
	var ai assistant.AIClient
	if Cfg.AI.Enabled {
		client, err := assistant.NewGeminiClient(ctx, Cfg.AI.APIKey, Cfg.AI.Model, Logger())
		if err != nil {
			Log.Warnf("Failed to initialize generative backend, staying offline: %v", err)
		} else {
			ai = client
		}
	}

	a := assistant.New(mem, ai, Logger())
	if err := a.LoadKnowledge(Cfg.Budget.KnowledgeOverrides); err != nil {
		Log.Warnf("Failed to load knowledge overrides: %v", err)
	}
	return a
}
