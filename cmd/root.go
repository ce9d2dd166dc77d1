package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"ewintr.nl/ytsummary/config"
	"ewintr.nl/ytsummary/fetch"
	"ewintr.nl/ytsummary/process"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "ytsummary",
	Short: "Summarize YouTube videos from their captions",
	Long: `ytsummary fetches the captions of a YouTube video, turns them into a
timestamped transcript and asks a language model for a summary, title
suggestions, tags, a thumbnail title and a description.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "optional YAML config file, environment variables take precedence")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

// setup loads the configuration and builds the logger every command uses.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath, os.LookupEnv)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to load config: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return cfg, logger, nil
}

func newSummarizer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*process.Summarizer, error) {
	var captions fetch.CaptionFetcher
	switch cfg.CaptionStrategy {
	case config.StrategyAPI:
		ytClient, err := youtube.NewService(ctx, option.WithAPIKey(cfg.Youtube.APIKey))
		if err != nil {
			return nil, fmt.Errorf("unable to create youtube service: %w", err)
		}
		captions = fetch.NewYoutube(ytClient, logger)
	case config.StrategyTimedText:
		captions = fetch.NewTimedText(&http.Client{}, cfg.Youtube.WatchEndpoint, logger)
	default:
		return nil, fmt.Errorf("unknown caption strategy %q", cfg.CaptionStrategy)
	}
	logger.Debug("caption strategy selected", slog.String("strategy", cfg.CaptionStrategy))

	completer := process.NewOpenAI(process.OpenAIInfo{
		ApiKey:      cfg.Completion.APIKey,
		BaseURL:     cfg.Completion.BaseURL,
		Model:       cfg.Completion.Model,
		Temperature: cfg.Completion.Temperature,
		MaxTokens:   cfg.Completion.MaxTokens,
	})

	return process.NewSummarizer(captions, completer, logger), nil
}
