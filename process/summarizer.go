package process

import (
	"context"
	"errors"
	"fmt"

	"ewintr.nl/ytsummary/fetch"
	"ewintr.nl/ytsummary/model"
	"ewintr.nl/ytsummary/transcript"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Summarizer runs the whole chain from video link to generated summary.
// It holds no state between runs.
type Summarizer struct {
	captions  fetch.CaptionFetcher
	completer Completer
	logger    *slog.Logger
}

func NewSummarizer(captions fetch.CaptionFetcher, completer Completer, logger *slog.Logger) *Summarizer {
	return &Summarizer{
		captions:  captions,
		completer: completer,
		logger:    logger,
	}
}

// Summarize never fails: every problem ends up in the Error field of the
// result.
func (s *Summarizer) Summarize(ctx context.Context, url string) (result model.Result) {
	logger := s.logger.With(slog.String("run", uuid.New().String()))
	defer func() {
		if r := recover(); r != nil {
			logger.Error("summary run panicked", slog.Any("panic", r))
			result = model.Failure(url, model.KindUnexpected, fmt.Sprintf("Unexpected error: %v", r))
		}
	}()

	logger.Info("summarizing video", slog.String("url", url))
	id, response, err := s.run(ctx, logger, url)
	if err != nil {
		var merr *model.Error
		if errors.As(err, &merr) {
			logger.Error("failed to summarize video", slog.String("kind", string(merr.Kind)), slog.String("error", err.Error()))
			return model.Failure(url, merr.Kind, merr.Msg)
		}
		logger.Error("failed to summarize video", slog.String("error", err.Error()))
		return model.Failure(url, model.KindUnexpected, fmt.Sprintf("Unexpected error: %v", err))
	}

	logger.Info("summarized video", slog.String("video", string(id)), slog.Int("length", len(response)))
	return model.Success(id, url, response)
}

func (s *Summarizer) run(ctx context.Context, logger *slog.Logger, url string) (model.YoutubeVideoID, string, error) {
	id, err := model.ExtractVideoID(url)
	if err != nil {
		return "", "", err
	}

	raw, err := s.captions.FetchCaptions(ctx, id)
	if err != nil {
		return "", "", err
	}
	tr, err := transcript.Format(raw)
	if err != nil {
		return "", "", err
	}
	text := tr.String()
	logger.Info("fetched transcript", slog.String("video", string(id)), slog.Int("lines", len(tr)), slog.Int("length", len(text)))

	reply, err := s.completer.Complete(ctx, BuildPrompt(text))
	if err != nil {
		return "", "", err
	}

	return id, NormalizeReply(reply), nil
}
