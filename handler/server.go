package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"time"

	"ewintr.nl/ytsummary/model"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const RequestIDHeader = "X-Request-ID"

type Summarizer interface {
	Summarize(ctx context.Context, url string) model.Result
}

// Server routes on the first path segment to the video and summary APIs.
type Server struct {
	apis   map[string]http.Handler
	logger *slog.Logger
}

func NewServer(summarizer Summarizer, logger *slog.Logger) *Server {
	return &Server{
		apis: map[string]http.Handler{
			"video":   NewVideoAPI(logger),
			"summary": NewSummaryAPI(summarizer, logger),
		},
		logger: logger,
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestPath := r.URL.Path
	requestID := r.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	// handlers may set their own content type, so everything goes through a recorder first
	rec := httptest.NewRecorder()
	rec.Header().Set("Content-Type", "application/json")
	rec.Header().Set(RequestIDHeader, requestID)

	head, tail := ShiftPath(requestPath)
	switch api, ok := s.apis[head]; {
	case head == "":
		Index(rec)
	case !ok:
		Error(rec, http.StatusNotFound, "Not found", fmt.Errorf("%s is not a valid path", requestPath))
	default:
		r.URL.Path = tail
		api.ServeHTTP(rec, r)
	}

	copyResponse(w, rec)
	s.logger.Info("request served",
		slog.String("request", requestID),
		slog.String("method", r.Method),
		slog.String("path", requestPath),
		slog.Int("status", rec.Code),
		slog.Duration("duration", time.Since(start)),
	)
}

func copyResponse(w http.ResponseWriter, rec *httptest.ResponseRecorder) {
	for k, v := range rec.Header() {
		w.Header()[k] = v
	}
	w.WriteHeader(rec.Code)
	w.Write(rec.Body.Bytes())
}

// ShiftPath splits off the first component of p. head never contains a slash,
// tail is always rooted.
func ShiftPath(p string) (head, tail string) {
	p = path.Clean("/" + p)
	i := strings.Index(p[1:], "/") + 1
	if i <= 0 {
		return p[1:], "/"
	}
	return p[1:i], p[i:]
}
