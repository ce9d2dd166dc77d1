package model

import (
	"fmt"
	"regexp"
)

type YoutubeVideoID string

// idPatterns are tried in order, the first match wins. The markers do not
// overlap for well-formed links, so the order only matters for odd input
// that carries more than one of them.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|youtu\.be/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:embed/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:watch\?v=)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:shorts/)([a-zA-Z0-9_-]{11})`),
}

// ExtractVideoID finds the video id in a watch, short, embed or shorts link.
func ExtractVideoID(youtubeURL string) (YoutubeVideoID, error) {
	for _, re := range idPatterns {
		if m := re.FindStringSubmatch(youtubeURL); m != nil {
			return YoutubeVideoID(m[1]), nil
		}
	}

	return "", NewError(KindInvalidURL, "invalid YouTube URL format, please provide a valid YouTube video URL", nil)
}

func (id YoutubeVideoID) WatchURL() string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", id)
}

func (id YoutubeVideoID) EmbedURL() string {
	return fmt.Sprintf("https://www.youtube.com/embed/%s", id)
}

func (id YoutubeVideoID) ThumbnailURL() string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", id)
}
