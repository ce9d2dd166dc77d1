package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"ewintr.nl/ytsummary/model"
	"golang.org/x/exp/slog"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/youtube/v3"
)

// Youtube fetches captions through the YouTube Data API and returns them as
// SRT.
type Youtube struct {
	Client *youtube.Service
	logger *slog.Logger
}

func NewYoutube(client *youtube.Service, logger *slog.Logger) *Youtube {
	return &Youtube{Client: client, logger: logger}
}

func (y *Youtube) FetchCaptions(ctx context.Context, id model.YoutubeVideoID) (model.RawCaptions, error) {
	tracks, err := y.ListTracks(ctx, id)
	if err != nil {
		return model.RawCaptions{}, apiError(err)
	}
	track, ok := model.SelectTrack(tracks)
	if !ok {
		return model.RawCaptions{}, model.NewError(model.KindNoCaptions, "no captions found for this video, many YouTube Shorts don't have captions available", nil)
	}
	y.logger.Info("downloading caption track", slog.String("video", string(id)), slog.String("track", track.ID), slog.String("language", track.Language))

	srt, err := y.Download(ctx, track.ID)
	if err != nil {
		return model.RawCaptions{}, apiError(err)
	}

	return model.RawCaptions{SRT: srt}, nil
}

func (y *Youtube) ListTracks(ctx context.Context, id model.YoutubeVideoID) ([]model.CaptionTrack, error) {
	response, err := y.Client.Captions.
		List([]string{"snippet"}, string(id)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	tracks := make([]model.CaptionTrack, 0, len(response.Items))
	for _, item := range response.Items {
		track := model.CaptionTrack{ID: item.Id}
		if item.Snippet != nil {
			track.Language = item.Snippet.Language
		}
		tracks = append(tracks, track)
	}

	return tracks, nil
}

func (y *Youtube) Download(ctx context.Context, trackID string) (string, error) {
	resp, err := y.Client.Captions.
		Download(trackID).
		Tfmt("srt").
		Context(ctx).
		Download()
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read caption track: %w", err)
	}

	return string(body), nil
}

func apiError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && (gerr.Code == http.StatusForbidden || gerr.Code == http.StatusNotFound) {
		return model.NewError(model.KindCaptionsUnavailable, "captions are disabled or not available for this video", err)
	}

	return fetchError(err)
}
