// Package feed summarizes the videos that show up as unread entries in a
// feed reader.
package feed

import (
	"context"
	"time"

	"ewintr.nl/ytsummary/fetch"
	"ewintr.nl/ytsummary/model"
	"ewintr.nl/ytsummary/storage"
	"golang.org/x/exp/slog"
)

type Summarizer interface {
	Summarize(ctx context.Context, url string) model.Result
}

type Feed struct {
	interval   time.Duration
	feedReader fetch.FeedReader
	summarizer Summarizer
	store      storage.SummaryRepository
	logger     *slog.Logger
}

func New(feedReader fetch.FeedReader, summarizer Summarizer, store storage.SummaryRepository, interval time.Duration, logger *slog.Logger) *Feed {
	return &Feed{
		interval:   interval,
		feedReader: feedReader,
		summarizer: summarizer,
		store:      store,
		logger:     logger,
	}
}

// Run checks for unread entries every interval until ctx is done.
func (f *Feed) Run(ctx context.Context) {
	f.logger.Info("started feed reader", slog.String("interval", f.interval.String()))
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		f.ReadFeed(ctx)
		select {
		case <-ctx.Done():
			f.logger.Info("stopped feed reader")
			return
		case <-ticker.C:
		}
	}
}

// ReadFeed summarizes all unread entries one after the other and returns the
// number of summaries stored. Every handled entry is marked read, also when
// its summary failed, so a broken video is not tried again on each tick.
// Entries whose run was interrupted by ctx stay unread.
func (f *Feed) ReadFeed(ctx context.Context) int {
	entries, err := f.feedReader.Unread()
	if err != nil {
		f.logger.Error("failed to fetch unread entries", slog.String("error", err.Error()))
		return 0
	}
	f.logger.Info("fetched unread entries", slog.Int("count", len(entries)))

	stored := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			return stored
		}

		result := f.summarizer.Summarize(ctx, entry.URL)
		if ctx.Err() != nil {
			// the run was cut short, leave the entry unread for the next start
			f.logger.Info("stopped before entry was handled", slog.Int64("entry", entry.EntryID))
			return stored
		}
		if result.OK() {
			path, err := f.store.Save(result)
			if err != nil {
				f.logger.Error("failed to store summary", slog.String("url", entry.URL), slog.String("error", err.Error()))
				continue
			}
			stored++
			f.logger.Info("stored summary", slog.String("video", string(entry.VideoID)), slog.String("title", entry.Title), slog.String("path", path))
		} else {
			f.logger.Error("failed to summarize entry", slog.String("url", entry.URL), slog.String("kind", string(result.ErrorKind)), slog.String("error", result.Error))
		}

		if err := f.feedReader.MarkRead(entry.EntryID); err != nil {
			f.logger.Error("failed to mark entry as read", slog.Int64("entry", entry.EntryID), slog.String("error", err.Error()))
		}
	}

	return stored
}
