// Package transcript turns raw subtitle data into a list of lines prefixed
// with a [MM:SS] marker.
package transcript

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"ewintr.nl/ytsummary/model"
)

type Line struct {
	Minutes int
	Seconds int
	Text    string
}

func (l Line) String() string {
	return fmt.Sprintf("[%02d:%02d] %s", l.Minutes, l.Seconds, l.Text)
}

type Transcript []Line

// String renders one line per entry, each terminated by a newline.
func (t Transcript) String() string {
	var sb strings.Builder
	for _, l := range t {
		sb.WriteString(l.String())
		sb.WriteString("\n")
	}

	return sb.String()
}

// Format picks the parser that matches the shape of raw.
func Format(raw model.RawCaptions) (Transcript, error) {
	if raw.Entries != nil {
		return FromEntries(raw.Entries), nil
	}

	return FromSRT(raw.SRT)
}

// FromSRT parses SRT text. Only the minutes and whole seconds of a cue start
// are kept, so hours wrap away for videos longer than 59 minutes. Blocks with
// less than three lines are skipped.
func FromSRT(srt string) (Transcript, error) {
	srt = strings.ReplaceAll(srt, "\r\n", "\n")

	t := Transcript{}
	for _, block := range strings.Split(srt, "\n\n") {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 3 {
			continue
		}
		minutes, seconds, err := parseSRTStart(lines[1])
		if err != nil {
			return nil, model.NewError(model.KindFetchError, fmt.Sprintf("error fetching transcript: %v", err), err)
		}
		t = append(t, Line{
			Minutes: minutes,
			Seconds: seconds,
			Text:    strings.TrimSpace(strings.Join(lines[2:], " ")),
		})
	}

	return t, nil
}

// parseSRTStart reads the start of a timing line like
// "00:01:05,000 --> 00:01:08,000".
func parseSRTStart(timing string) (int, int, error) {
	start, _, _ := strings.Cut(timing, " --> ")
	parts := strings.Split(start, ":")
	if len(parts) < 3 {
		return 0, 0, fmt.Errorf("invalid timestamp %q", start)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minutes in timestamp %q: %w", start, err)
	}
	secs, _, _ := strings.Cut(parts[2], ",")
	seconds, err := strconv.Atoi(strings.TrimSpace(secs))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid seconds in timestamp %q: %w", start, err)
	}

	return minutes, seconds, nil
}

func FromEntries(entries []model.TimedEntry) Transcript {
	t := make(Transcript, 0, len(entries))
	for _, e := range entries {
		text := ""
		if e.Text != nil {
			text = fmt.Sprint(e.Text)
		}
		t = append(t, Line{
			Minutes: int(math.Floor(e.Start / 60)),
			Seconds: int(math.Floor(math.Mod(e.Start, 60))),
			Text:    text,
		})
	}

	return t
}
