package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/babelbot/internal/bot"
	"codeberg.org/snonux/babelbot/internal/cli"
	"codeberg.org/snonux/babelbot/internal/language"
	"codeberg.org/snonux/babelbot/internal/models"
	"codeberg.org/snonux/babelbot/internal/quota"
	"codeberg.org/snonux/babelbot/internal/session"
	"codeberg.org/snonux/babelbot/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(_ *cobra.Command, flags *cli.Flags) error {
	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	logger := cli.NewLogger(flags.LogFile)

	token := cli.GetTelegramToken()
	if token == "" {
		return fmt.Errorf("Telegram bot token not found. Set TELEGRAM_BOT_TOKEN environment variable or configure in .babelbot.yaml")
	}

	// Quota store and gate
	if err := os.MkdirAll(filepath.Dir(flags.DBPath), 0755); err != nil {
		return fmt.Errorf("failed to create quota database directory: %w", err)
	}
	store, err := quota.NewSQLiteStore(flags.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	gate := quota.NewGate(store, flags.DailyLimit)

	if remaining, err := gate.Remaining(); err == nil {
		logger.Printf("daily quota: %d requests remaining", remaining)
	}

	// Translation provider
	providerConfig := translation.DefaultProviderConfig()
	providerConfig.Provider = flags.Provider
	providerConfig.GeminiKey = cli.GetGeminiKey()
	providerConfig.GeminiModel = flags.GeminiModel
	providerConfig.OpenAIKey = cli.GetOpenAIKey()
	providerConfig.OpenAIModel = flags.OpenAIModel
	providerConfig.MaxOutputTokens = flags.MaxOutputTokens

	provider, err := translation.NewProvider(providerConfig)
	if err != nil {
		return err
	}

	b := bot.New(
		gate,
		session.New(flags.SessionCapacity),
		translation.NewBreakerProvider(provider),
		language.DefaultOptions(),
		logger,
	)

	// Stop polling on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return b.Run(ctx, token)
}
