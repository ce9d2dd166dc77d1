package fetch_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ewintr.nl/ytsummary/fetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiniflux(t *testing.T) {
	var (
		status  string
		updated []int64
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/entries") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			status = r.URL.Query().Get("status")
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `{"total":3,"entries":[
{"id":11,"feed_id":3,"title":"first","url":"https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
{"id":13,"feed_id":4,"title":"blog post","url":"https://example.com/posts/42"},
{"id":12,"feed_id":3,"title":"second","url":"https://www.youtube.com/shorts/a_b-c1234XY"}]}`)
		case http.MethodPut:
			var body struct {
				EntryIDs []int64 `json:"entry_ids"`
				Status   string  `json:"status"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Status != "read" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			updated = append(updated, body.EntryIDs...)
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	mflx := fetch.NewMiniflux(fetch.MinifluxInfo{Endpoint: srv.URL + "/v1", ApiKey: "secret"})

	entries, err := mflx.Unread()
	require.NoError(t, err)
	assert.Equal(t, "unread", status)
	assert.Equal(t, []fetch.FeedEntry{
		{EntryID: 11, FeedID: 3, VideoID: "dQw4w9WgXcQ", Title: "first", URL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{EntryID: 12, FeedID: 3, VideoID: "a_b-c1234XY", Title: "second", URL: "https://www.youtube.com/shorts/a_b-c1234XY"},
	}, entries)

	require.NoError(t, mflx.MarkRead(11))
	assert.Equal(t, []int64{11}, updated)
}

func TestMinifluxErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	mflx := fetch.NewMiniflux(fetch.MinifluxInfo{Endpoint: srv.URL + "/v1", ApiKey: "secret"})

	_, err := mflx.Unread()
	assert.ErrorContains(t, err, "failed to list unread entries")
	assert.ErrorContains(t, mflx.MarkRead(5), "failed to mark entry 5 read")
}
