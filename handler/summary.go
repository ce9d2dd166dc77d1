package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"ewintr.nl/ytsummary/storage"
	"golang.org/x/exp/slog"
)

type SummaryAPI struct {
	summarizer Summarizer
	logger     *slog.Logger
}

func NewSummaryAPI(summarizer Summarizer, logger *slog.Logger) *SummaryAPI {
	return &SummaryAPI{
		summarizer: summarizer,
		logger:     logger,
	}
}

func (s *SummaryAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	subPath, _ := ShiftPath(r.URL.Path)

	switch {
	case r.Method == http.MethodPost && subPath == "":
		s.Create(w, r)
	case r.Method == http.MethodPost && subPath == "download":
		s.Download(w, r)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the summary api", r.Method, subPath))
	}
}

type summaryRequest struct {
	URL string `json:"url"`
}

func (s *SummaryAPI) readRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req summaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.returnErr(r.Context(), w, http.StatusBadRequest, "could not parse request body", err)
		return "", false
	}

	return req.URL, true
}

// Create runs the summary and returns the result as is. Failed runs get a
// 422 so clients can tell them apart without looking at the body.
func (s *SummaryAPI) Create(w http.ResponseWriter, r *http.Request) {
	url, ok := s.readRequest(w, r)
	if !ok {
		return
	}

	result := s.summarizer.Summarize(r.Context(), url)
	status := http.StatusOK
	if !result.OK() {
		status = http.StatusUnprocessableEntity
	}
	JSON(w, status, result)
}

// Download runs the summary and returns the text as an attachment named
// after the video.
func (s *SummaryAPI) Download(w http.ResponseWriter, r *http.Request) {
	url, ok := s.readRequest(w, r)
	if !ok {
		return
	}

	result := s.summarizer.Summarize(r.Context(), url)
	if !result.OK() {
		JSON(w, http.StatusUnprocessableEntity, result)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", storage.FileName(result.VideoID)))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(result.Response))
}

func (s *SummaryAPI) returnErr(_ context.Context, w http.ResponseWriter, status int, message string, err error, details ...any) {
	s.logger.Error(message, slog.String("err", err.Error()), slog.String("details", fmt.Sprintf("%+v", details)))
	Error(w, status, message, err, details...)
}
