package cmd

import (
	"context"
	"io"
	"testing"

	"ewintr.nl/ytsummary/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestNewSummarizer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, tc := range []struct {
		name     string
		strategy string
		expErr   bool
	}{
		{name: "api", strategy: config.StrategyAPI},
		{name: "timedtext", strategy: config.StrategyTimedText},
		{name: "unknown", strategy: "scrape", expErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{
				CaptionStrategy: tc.strategy,
				Youtube:         config.YoutubeConfig{APIKey: "yt-key"},
				Completion:      config.CompletionConfig{APIKey: "llm-key"},
			}
			summarizer, err := newSummarizer(context.Background(), cfg, logger)
			if tc.expErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, summarizer)
		})
	}
}

func TestSetup(t *testing.T) {
	t.Setenv("CAPTION_STRATEGY", "timedtext")
	t.Setenv("EURI_API_KEY", "llm-key")
	t.Setenv("LOG_LEVEL", "debug")
	configPath = ""

	cfg, logger, err := setup()
	require.NoError(t, err)
	assert.Equal(t, config.StrategyTimedText, cfg.CaptionStrategy)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	t.Setenv("LOG_LEVEL", "loud")
	_, _, err = setup()
	assert.Error(t, err)
}

func TestSummarizeInvalidURL(t *testing.T) {
	t.Setenv("CAPTION_STRATEGY", "timedtext")
	t.Setenv("EURI_API_KEY", "llm-key")
	configPath = ""

	rootCmd.SetArgs([]string{"summarize", "not a video"})
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YouTube URL format")
}
