package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"codeberg.org/snonux/babelbot/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "babelbot",
		Short: "Quota-gated Telegram translation bot",
		Long: `babelbot relays chat messages to an LLM translation provider.

Every inbound text message is answered with an inline language picker;
pressing a button translates the original text into the chosen language and
edits the picker message in place, so the same text can be re-translated into
other languages over and over. A shared daily quota caps translation calls
across all users and resets at midnight.

Examples:
  babelbot                        # Start polling with defaults
  babelbot --provider openai      # Translate via OpenAI instead of Gemini
  babelbot --list-models          # Show models available to the API keys`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Default quota database next to the config in the state directory
	home, _ := os.UserHomeDir()
	defaultDBPath := filepath.Join(home, ".local", "state", "babelbot", "quota.db")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.babelbot.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.DBPath, "db", defaultDBPath, "Path to the quota SQLite database")
	cmd.Flags().IntVar(&flags.DailyLimit, "daily-limit", flags.DailyLimit, "Maximum translation requests per day across all users")
	cmd.Flags().IntVar(&flags.SessionCapacity, "session-capacity", 0, "Maximum live picker sessions (0 = default)")
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "Write logs to this rotating file instead of stderr")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available translation models for the current API keys")

	// Translation provider flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: gemini or openai")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model used for translation")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI model used for translation")
	cmd.Flags().IntVar(&flags.MaxOutputTokens, "max-output-tokens", flags.MaxOutputTokens, "Maximum number of tokens in a translation response")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("quota.db", cmd.Flags().Lookup("db"))
	viper.BindPFlag("quota.daily_limit", cmd.Flags().Lookup("daily-limit"))
	viper.BindPFlag("session.capacity", cmd.Flags().Lookup("session-capacity"))
	viper.BindPFlag("log.file", cmd.Flags().Lookup("log-file"))
	viper.BindPFlag("translation.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translation.gemini_model", cmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag("translation.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("translation.max_output_tokens", cmd.Flags().Lookup("max-output-tokens"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// A .env file in the working directory supplies credentials during
	// development. Missing files are fine.
	godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".babelbot" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".babelbot")
	}

	// Environment variables
	viper.SetEnvPrefix("BABELBOT")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// NewLogger builds the process logger. When logFile is set the output goes
// through a size-capped rotating file, otherwise to stderr.
func NewLogger(logFile string) *log.Logger {
	var out io.Writer = os.Stderr
	if logFile != "" {
		out = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
	}
	return log.New(out, "babelbot ", log.LstdFlags)
}

// GetTelegramToken retrieves the Telegram bot token from environment or config
func GetTelegramToken() string {
	// First check environment variable
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		return token
	}

	// Then check config file
	return viper.GetString("telegram.token")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("translation.gemini_key")
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("translation.openai_key")
}
