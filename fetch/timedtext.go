package fetch

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"strconv"
	"strings"

	"ewintr.nl/ytsummary/model"
	"golang.org/x/exp/slog"
)

const (
	DefaultWatchEndpoint = "https://www.youtube.com"
	playerResponseMarker = "ytInitialPlayerResponse = "
	userAgent            = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// TimedText reads the caption tracks a watch page advertises and downloads
// the selected one from the timedtext service.
type TimedText struct {
	client   *http.Client
	endpoint string
	logger   *slog.Logger
}

func NewTimedText(client *http.Client, endpoint string, logger *slog.Logger) *TimedText {
	if endpoint == "" {
		endpoint = DefaultWatchEndpoint
	}
	return &TimedText{
		client:   client,
		endpoint: strings.TrimSuffix(endpoint, "/"),
		logger:   logger,
	}
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

type playerResponse struct {
	Captions *struct {
		Renderer *struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type timedTextDoc struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Text  string `xml:",chardata"`
	} `xml:"text"`
}

func (tt *TimedText) FetchCaptions(ctx context.Context, id model.YoutubeVideoID) (model.RawCaptions, error) {
	tracks, err := tt.ListTracks(ctx, id)
	if err != nil {
		return model.RawCaptions{}, err
	}
	track, ok := model.SelectTrack(tracks)
	if !ok {
		return model.RawCaptions{}, model.NewError(model.KindCaptionsUnavailable, "no transcript found for this video, many YouTube Shorts don't have transcripts available", nil)
	}
	tt.logger.Info("downloading timed text", slog.String("video", string(id)), slog.String("language", track.Language))

	entries, err := tt.Download(ctx, track.ID)
	if err != nil {
		return model.RawCaptions{}, fetchError(err)
	}

	return model.RawCaptions{Entries: entries}, nil
}

// ListTracks returns the tracks from the watch page. The track ID is the
// timedtext URL of the track.
func (tt *TimedText) ListTracks(ctx context.Context, id model.YoutubeVideoID) ([]model.CaptionTrack, error) {
	page, err := tt.get(ctx, fmt.Sprintf("%s/watch?v=%s", tt.endpoint, id))
	if err != nil {
		return nil, fetchError(err)
	}

	start := strings.Index(page, playerResponseMarker)
	if start == -1 {
		return nil, fetchError(fmt.Errorf("no player response found in page"))
	}
	var pr playerResponse
	// the decoder stops after the first value, so the rest of the script is ignored
	if err := json.NewDecoder(strings.NewReader(page[start+len(playerResponseMarker):])).Decode(&pr); err != nil {
		return nil, fetchError(fmt.Errorf("failed to parse player response: %w", err))
	}
	if pr.Captions == nil || pr.Captions.Renderer == nil {
		return nil, model.NewError(model.KindCaptionsUnavailable, "transcripts are disabled for this video, many YouTube Shorts don't have transcripts available", nil)
	}

	tracks := make([]model.CaptionTrack, 0, len(pr.Captions.Renderer.CaptionTracks))
	for _, ct := range pr.Captions.Renderer.CaptionTracks {
		tracks = append(tracks, model.CaptionTrack{
			ID:       ct.BaseURL,
			Language: ct.LanguageCode,
		})
	}

	return tracks, nil
}

func (tt *TimedText) Download(ctx context.Context, trackURL string) ([]model.TimedEntry, error) {
	body, err := tt.get(ctx, trackURL)
	if err != nil {
		return nil, err
	}

	var doc timedTextDoc
	if err := xml.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse timed text: %w", err)
	}

	entries := make([]model.TimedEntry, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		// a missing or broken start attribute counts as zero
		start, _ := strconv.ParseFloat(t.Start, 64)
		entries = append(entries, model.TimedEntry{
			Start: start,
			Text:  html.UnescapeString(t.Text),
		})
	}

	return entries, nil
}

func (tt *TimedText) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := tt.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Host)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	return string(body), nil
}

func fetchError(err error) error {
	return model.NewError(model.KindFetchError, fmt.Sprintf("error fetching transcript: %v", err), err)
}
