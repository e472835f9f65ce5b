package captions

import "github.com/fourTheorem/podwhisperer/internal/model"

// cue is one renderer-agnostic caption cue: a time range and its text.
type cue struct {
	Start float64
	End   float64
	Text  string
}

// buildCues renders one segment into zero or more cues, given the previous
// segment's effective speaker (for when-changes prefixing) and whether a
// previous speaker is even known yet. It returns the cues plus the speaker
// to carry forward as "previous" for the next segment.
func buildCues(seg model.Segment, prevSpeaker string, prevKnown bool, cfg model.CaptionsConfig) ([]cue, string) {
	speaker := EffectiveSpeaker(seg)
	prefix := SpeakerPrefix(speaker, prevSpeaker, prevKnown, cfg.IncludeSpeakerNames)

	if !cfg.HighlightWords || len(seg.Words) == 0 {
		return []cue{{
			Start: seg.Start,
			End:   seg.End,
			Text:  prefix + renderPlainText(seg),
		}}, speaker
	}

	return buildHighlightCues(seg, prefix, cfg.HighlightWith), speaker
}

func buildHighlightCues(seg model.Segment, prefix string, style model.HighlightStyle) []cue {
	words := distributeTiming(seg)

	firstTimed := -1
	for i, w := range words {
		if w.ValidRange() {
			firstTimed = i
			break
		}
	}
	if firstTimed == -1 {
		return nil
	}

	var cues []cue
	lastEnd := seg.Start

	for i, w := range words {
		if !w.ValidRange() {
			continue
		}
		start, end := *w.Start, *w.End

		if start > lastEnd {
			cues = append(cues, cue{Start: lastEnd, End: start, Text: prefix + renderPlainText(seg)})
		}

		cues = append(cues, cue{
			Start: start,
			End:   end,
			Text:  prefix + renderHighlightedLine(seg, i, style),
		})
		lastEnd = end
	}

	if seg.HasValidEnd() && seg.End > lastEnd {
		cues = append(cues, cue{Start: lastEnd, End: seg.End, Text: prefix + renderPlainText(seg)})
	}

	return cues
}

// buildAllCues walks every segment in order, threading the previous-speaker
// state between segments (never within a segment's own cues).
func buildAllCues(transcript *model.Transcript, cfg model.CaptionsConfig) []cue {
	var all []cue
	prevSpeaker := ""
	prevKnown := false

	for _, seg := range transcript.Segments {
		segCues, speaker := buildCues(seg, prevSpeaker, prevKnown, cfg)
		all = append(all, segCues...)
		prevSpeaker = speaker
		prevKnown = true
	}
	return all
}
