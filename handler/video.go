package handler

import (
	"context"
	"fmt"
	"net/http"

	"ewintr.nl/ytsummary/model"
	"golang.org/x/exp/slog"
)

// VideoAPI answers preview requests for a link before it gets summarized.
type VideoAPI struct {
	logger *slog.Logger
}

func NewVideoAPI(logger *slog.Logger) *VideoAPI {
	return &VideoAPI{
		logger: logger,
	}
}

func (v *VideoAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	subPath, _ := ShiftPath(r.URL.Path)

	switch {
	case r.Method == http.MethodGet && subPath == "":
		v.Preview(w, r)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the video api", r.Method, subPath))
	}
}

func (v *VideoAPI) Preview(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	id, err := model.ExtractVideoID(url)
	if err != nil {
		v.returnErr(r.Context(), w, http.StatusBadRequest, "could not find a video in url", err, url)
		return
	}

	JSON(w, http.StatusOK, struct {
		VideoID      model.YoutubeVideoID `json:"video_id"`
		WatchURL     string               `json:"watch_url"`
		EmbedURL     string               `json:"embed_url"`
		ThumbnailURL string               `json:"thumbnail_url"`
	}{
		VideoID:      id,
		WatchURL:     id.WatchURL(),
		EmbedURL:     id.EmbedURL(),
		ThumbnailURL: id.ThumbnailURL(),
	})
}

func (v *VideoAPI) returnErr(_ context.Context, w http.ResponseWriter, status int, message string, err error, details ...any) {
	v.logger.Error(message, slog.String("err", err.Error()), slog.String("details", fmt.Sprintf("%+v", details)))
	Error(w, status, message, err, details...)
}
