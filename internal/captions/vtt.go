package captions

import (
	"strings"

	"github.com/fourTheorem/podwhisperer/internal/model"
)

// RenderVTT renders a transcript as a WebVTT document.
func RenderVTT(transcript *model.Transcript, cfg model.CaptionsConfig) string {
	cues := buildAllCues(transcript, cfg)

	var b strings.Builder
	b.WriteString("WEBVTT\n")
	for _, c := range cues {
		b.WriteString("\n")
		b.WriteString(FormatVTTTimestamp(c.Start))
		b.WriteString(" --> ")
		b.WriteString(FormatVTTTimestamp(c.End))
		b.WriteString("\n")
		b.WriteString(c.Text)
		b.WriteString("\n")
	}
	return b.String()
}
