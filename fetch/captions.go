package fetch

import (
	"context"

	"ewintr.nl/ytsummary/model"
)

type CaptionFetcher interface {
	FetchCaptions(ctx context.Context, id model.YoutubeVideoID) (model.RawCaptions, error)
}

var (
	_ CaptionFetcher = (*Youtube)(nil)
	_ CaptionFetcher = (*TimedText)(nil)
)
