package fetch

import (
	"fmt"

	"ewintr.nl/ytsummary/model"
	"miniflux.app/client"
)

// FeedEntry is an unread feed item that links to a YouTube video.
type FeedEntry struct {
	EntryID int64
	FeedID  int64
	VideoID model.YoutubeVideoID
	Title   string
	URL     string
}

type FeedReader interface {
	Unread() ([]FeedEntry, error)
	MarkRead(entryID int64) error
}

type MinifluxInfo struct {
	Endpoint string
	ApiKey   string
}

// Miniflux reads video links from the unread entries of a Miniflux instance.
// Entries that do not point to a video are left alone.
type Miniflux struct {
	client *client.Client
}

func NewMiniflux(info MinifluxInfo) *Miniflux {
	return &Miniflux{client: client.New(info.Endpoint, info.ApiKey)}
}

func (m *Miniflux) Unread() ([]FeedEntry, error) {
	resp, err := m.client.Entries(&client.Filter{Status: client.EntryStatusUnread})
	if err != nil {
		return nil, fmt.Errorf("failed to list unread entries: %w", err)
	}

	videos := make([]FeedEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		id, err := model.ExtractVideoID(e.URL)
		if err != nil {
			continue
		}
		videos = append(videos, FeedEntry{
			EntryID: e.ID,
			FeedID:  e.FeedID,
			VideoID: id,
			Title:   e.Title,
			URL:     e.URL,
		})
	}

	return videos, nil
}

func (m *Miniflux) MarkRead(entryID int64) error {
	if err := m.client.UpdateEntries([]int64{entryID}, client.EntryStatusRead); err != nil {
		return fmt.Errorf("failed to mark entry %d read: %w", entryID, err)
	}

	return nil
}

var _ FeedReader = (*Miniflux)(nil)
