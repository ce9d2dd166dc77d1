package process

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	for _, tc := range []struct {
		name          string
		transcript    string
		expTranscript string
		expNotice     bool
	}{
		{
			name:          "short",
			transcript:    "[00:01] hello\n",
			expTranscript: "[00:01] hello\n",
		},
		{
			name:          "exactly at limit",
			transcript:    strings.Repeat("a", MaxTranscriptLength),
			expTranscript: strings.Repeat("a", MaxTranscriptLength),
		},
		{
			name:          "one over limit",
			transcript:    strings.Repeat("a", MaxTranscriptLength) + "b",
			expTranscript: strings.Repeat("a", MaxTranscriptLength),
			expNotice:     true,
		},
		{
			name:          "counts characters not bytes",
			transcript:    strings.Repeat("é", MaxTranscriptLength),
			expTranscript: strings.Repeat("é", MaxTranscriptLength),
		},
		{
			name:          "multibyte cut",
			transcript:    strings.Repeat("é", MaxTranscriptLength+5),
			expTranscript: strings.Repeat("é", MaxTranscriptLength),
			expNotice:     true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			act := BuildPrompt(tc.transcript)

			assert.True(t, strings.HasSuffix(act, "\n"+tc.expTranscript+"\n"))
			assert.NotContains(t, act, tc.expTranscript+"b")
			assert.Equal(t, tc.expNotice, strings.Contains(act, "[Note: Transcript was truncated due to length]"))
			for _, item := range []string{
				"1. Timestamped and formatted summary",
				"2. 5 SEO-friendly YouTube title suggestions",
				"3. Comma-separated video tags",
				"4. A short thumbnail title",
				"5. A short Description",
			} {
				assert.Contains(t, act, item)
			}
		})
	}
}

func TestBuildPromptNoticePlacement(t *testing.T) {
	act := BuildPrompt(strings.Repeat("x", MaxTranscriptLength+1))
	assert.Contains(t, act, "Transcript:\n[Note: Transcript was truncated due to length]\nxxx")
}
