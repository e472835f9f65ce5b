package captions

import (
	"strconv"
	"strings"

	"github.com/fourTheorem/podwhisperer/internal/model"
)

// RenderSRT renders a transcript as a SubRip (.srt) document.
func RenderSRT(transcript *model.Transcript, cfg model.CaptionsConfig) string {
	cues := buildAllCues(transcript, cfg)

	var b strings.Builder
	for i, c := range cues {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString("\n")
		b.WriteString(FormatSRTTimestamp(c.Start))
		b.WriteString(" --> ")
		b.WriteString(FormatSRTTimestamp(c.End))
		b.WriteString("\n")
		b.WriteString(c.Text)
		b.WriteString("\n")
	}
	return b.String()
}
