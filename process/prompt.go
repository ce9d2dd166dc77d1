package process

import (
	"fmt"
	"unicode/utf8"
)

const (
	MaxTranscriptLength = 8000
	truncationNotice    = "\n[Note: Transcript was truncated due to length]"
)

const summaryPrompt = `
You are an AI content expert. Watch this YouTube video transcript and generate the following:
1. Timestamped and formatted summary of the video (with key sections and timestamps).
2. 5 SEO-friendly YouTube title suggestions (separated by new lines).
3. Comma-separated video tags for SEO.
4. A short thumbnail title for this video.
5. A short Description or caption for this video

Transcript:%s
%s
`

// BuildPrompt embeds the transcript in the summary instructions. Transcripts
// longer than MaxTranscriptLength characters are cut at that length, without
// regard for line or word boundaries, and the prompt says so.
func BuildPrompt(transcript string) string {
	notice := ""
	if utf8.RuneCountInString(transcript) > MaxTranscriptLength {
		transcript = string([]rune(transcript)[:MaxTranscriptLength])
		notice = truncationNotice
	}

	return fmt.Sprintf(summaryPrompt, notice, transcript)
}
