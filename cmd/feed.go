package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"ewintr.nl/ytsummary/feed"
	"ewintr.nl/ytsummary/fetch"
	"ewintr.nl/ytsummary/storage"
	"github.com/spf13/cobra"
)

var feedOnce bool

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Summarize the videos from unread Miniflux entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		if err := cfg.ValidateFeed(); err != nil {
			return err
		}
		summarizer, err := newSummarizer(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		store, err := storage.NewTextStore(cfg.OutputDir)
		if err != nil {
			return err
		}
		mflx := fetch.NewMiniflux(fetch.MinifluxInfo{
			Endpoint: cfg.Miniflux.Endpoint,
			ApiKey:   cfg.Miniflux.APIKey,
		})

		f := feed.New(mflx, summarizer, store, cfg.FetchInterval(), logger)
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if feedOnce {
			f.ReadFeed(ctx)
			return nil
		}
		f.Run(ctx)

		return nil
	},
}

func init() {
	feedCmd.Flags().BoolVar(&feedOnce, "once", false, "process the unread entries once and exit")
	rootCmd.AddCommand(feedCmd)
}
