package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kidwise/kidwise/internal/content"
	"github.com/kidwise/kidwise/internal/llm"
	"github.com/kidwise/kidwise/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "kidwise",
	Short: "Explains big ideas to kids",
	Long:  "KidWise — serves kid-friendly concept explanations, comics, and fun facts generated by an LLM backend.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(conceptsCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the process logger from KIDWISE_LOG_MODE.
func newLogger() (*logger.Logger, error) {
	return logger.New(os.Getenv("KIDWISE_LOG_MODE"))
}

// newContentService wires provider, styler, and orchestrator from the
// environment. Without any credential it degrades to a provider that
// always fails fast, which the orchestrator turns into fallback content.
func newContentService(ctx context.Context, log *logger.Logger) *content.Service {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg = discovered
		}
	}

	provider, err := llm.NewProvider(ctx, cfg, log)
	if err != nil {
		var notConf *llm.ErrNotConfigured
		if errors.As(err, &notConf) {
			log.Warn("no LLM credential configured, all content will be fallback",
				"provider", cfg.Provider)
		} else {
			log.Warn("LLM provider init failed, all content will be fallback",
				"provider", cfg.Provider, "error", err)
		}
		provider = llm.Unconfigured(cfg.Provider)
	}

	styler := content.NewStyler(uint64(os.Getpid()))
	return content.NewService(provider, styler, content.DefaultConfig(), log)
}
