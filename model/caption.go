package model

import "strings"

type CaptionTrack struct {
	ID       string
	Language string
}

// SelectTrack returns the first English track, or the first track at all
// when there is no English one. ok is false for an empty list.
func SelectTrack(tracks []CaptionTrack) (track CaptionTrack, ok bool) {
	if len(tracks) == 0 {
		return CaptionTrack{}, false
	}
	for _, t := range tracks {
		if t.Language == "en" || strings.HasPrefix(t.Language, "en-") {
			return t, true
		}
	}

	return tracks[0], true
}

// TimedEntry is a single caption cue as delivered by a transcript service.
// Text is whatever the service put in the payload, usually a string.
type TimedEntry struct {
	Start float64
	Text  any
}

// RawCaptions holds subtitle data as it came from a fetcher: either SRT text
// or a list of timed entries.
type RawCaptions struct {
	SRT     string
	Entries []TimedEntry
}
