// Package captions renders a normalized transcript into VTT, SRT, and a
// simplified JSON caption form, including per-word highlight cues with
// filler-gap handling.
package captions

import (
	"fmt"
	"math"
	"strings"

	"github.com/fourTheorem/podwhisperer/internal/model"
	"github.com/fourTheorem/podwhisperer/internal/numerics"
)

const defaultSpeakerLabel = "SPEAKER_00"

// FormatVTTTimestamp renders seconds as HH:MM:SS.mmm, half-up rounded.
func FormatVTTTimestamp(seconds float64) string {
	return formatTimestamp(seconds, '.')
}

// FormatSRTTimestamp renders seconds as HH:MM:SS,mmm, half-up rounded.
func FormatSRTTimestamp(seconds float64) string {
	return formatTimestamp(seconds, ',')
}

func formatTimestamp(seconds float64, sep rune) string {
	totalMs := int64(math.Floor(seconds*1000 + 0.5))
	if totalMs < 0 {
		totalMs = 0
	}

	ms := totalMs % 1000
	totalSec := totalMs / 1000
	s := totalSec % 60
	totalMin := totalSec / 60
	m := totalMin % 60
	h := totalMin / 60

	return fmt.Sprintf("%02d:%02d:%02d%c%03d", h, m, s, sep, ms)
}

var htmlEscapes = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML replaces &, <, > with their named entities.
func EscapeHTML(text string) string {
	return htmlEscapes.Replace(text)
}

// HighlightTag returns the opening/closing tag pair for the given style.
func HighlightTag(style model.HighlightStyle) (open, closeTag string) {
	switch style {
	case model.HighlightBold:
		return "<b>", "</b>"
	case model.HighlightItalic:
		return "<i>", "</i>"
	default:
		return "<u>", "</u>"
	}
}

// SpeakerPrefix returns the text to prepend to a cue given the speaker
// prefix mode and whether the speaker changed since the previous segment.
// previousKnown distinguishes "no previous segment" from "previous segment
// had no speaker".
func SpeakerPrefix(current, previous string, previousKnown bool, mode model.SpeakerPrefixMode) string {
	switch mode {
	case model.SpeakerPrefixAlways:
		if current == "" {
			return ""
		}
		return current + ": "
	case model.SpeakerPrefixWhenChanges:
		if current == "" {
			return ""
		}
		if !previousKnown || current != previous {
			return current + ": "
		}
		return ""
	default: // never
		return ""
	}
}

// EffectiveSpeaker returns segment.Speaker, falling back to the first
// word's speaker, falling back to the default label.
func EffectiveSpeaker(seg model.Segment) string {
	if seg.Speaker != "" {
		return seg.Speaker
	}
	if len(seg.Words) > 0 && seg.Words[0].Speaker != "" {
		return seg.Words[0].Speaker
	}
	return defaultSpeakerLabel
}

// WrapDisplayLines wraps text to at most two lines. The first line ends at
// the last space or punctuation mark at or before rune maxCharsPerLine (a
// hard cut at maxCharsPerLine when there is none); the rest of the text
// goes on the second line, whose length is not limited. This is an
// optional display transform a caller may apply to a rendered cue's text;
// it changes presentation only, never a cue's timing or content semantics.
func WrapDisplayLines(text string, maxCharsPerLine int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxCharsPerLine {
		return text
	}

	pos := findSplitPosition(text, maxCharsPerLine)
	first := strings.TrimSpace(string(runes[:pos]))
	rest := strings.TrimSpace(string(runes[pos:]))
	if rest == "" {
		return first
	}
	return first + "\n" + rest
}

var wrapPunctuation = map[rune]struct{}{
	'.': {}, ',': {}, '?': {}, '!': {}, ';': {}, ':': {},
}

func findSplitPosition(text string, maxLen int) int {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return len(runes)
	}

	searchEnd := maxLen + 1
	if searchEnd > len(runes) {
		searchEnd = len(runes)
	}

	best := -1
	for i := searchEnd - 1; i > 0; i-- {
		r := runes[i]
		if r == ' ' {
			best = i
			break
		}
		if _, ok := wrapPunctuation[r]; ok {
			best = i + 1
			break
		}
	}

	if best <= 0 {
		best = maxLen
	}
	return best
}

// renderPlainText builds a segment's display text: trimmed and escaped.
func renderPlainText(seg model.Segment) string {
	return EscapeHTML(strings.TrimSpace(seg.Text))
}

// renderHighlightedLine renders a segment's full text word-by-word,
// wrapping wordIdx in the highlight tag.
func renderHighlightedLine(seg model.Segment, wordIdx int, style model.HighlightStyle) string {
	open, closeTag := HighlightTag(style)
	parts := make([]string, len(seg.Words))
	for i, w := range seg.Words {
		escaped := EscapeHTML(w.Text)
		if i == wordIdx {
			escaped = open + escaped + closeTag
		}
		parts[i] = escaped
	}
	return numerics.ReconstructText(parts)
}

// distributeTiming fills in per-word Start/End evenly across
// [segStart, segEnd] when no word in seg has timing and the segment's own
// envelope is valid. If any word already has timing, the words are returned
// as they are. It returns a copy of the word slice; the original segment is
// not mutated.
func distributeTiming(seg model.Segment) []model.Word {
	words := make([]model.Word, len(seg.Words))
	copy(words, seg.Words)

	if !seg.HasValidEnd() {
		return words
	}
	if len(words) == 0 {
		return words
	}

	allMissing := true
	for _, w := range words {
		if w.HasTiming() {
			allMissing = false
			break
		}
	}
	if !allMissing {
		return words
	}

	span := seg.End - seg.Start
	n := float64(len(words))
	for i := range words {
		start := seg.Start + span*float64(i)/n
		end := seg.Start + span*float64(i+1)/n
		words[i].Start = floatPtr(start)
		words[i].End = floatPtr(end)
	}
	return words
}

func floatPtr(f float64) *float64 { return &f }
