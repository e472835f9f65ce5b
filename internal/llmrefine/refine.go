package llmrefine

import (
	"context"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/fourTheorem/podwhisperer/internal/model"
	"github.com/fourTheorem/podwhisperer/internal/numerics"
	"github.com/fourTheorem/podwhisperer/internal/reconcile"
	"github.com/fourTheorem/podwhisperer/internal/suggest"
)

// AppliedUpdate records one accepted per-segment rewrite.
type AppliedUpdate struct {
	SegmentIndex  int
	OriginalText  string
	CorrectedText string
}

// IgnoredSuggestion records one rejected or skipped per-segment update.
type IgnoredSuggestion struct {
	SegmentIndex int
	Reason       suggest.Reason
}

// Result summarizes a refinement pass, per spec.md §4.6 and §6.
type Result struct {
	SegmentsProcessed  int
	SegmentsUpdated    int
	SpeakersIdentified int
	SpeakerMap         map[string]string
	Applied            []AppliedUpdate
	Ignored            []IgnoredSuggestion
	ResponseTime       time.Duration
}

// Refine serializes transcript, invokes the LLM capability, parses the
// reply, remaps speakers, and applies validated per-segment rewrites. A
// transport failure is returned as an error with no changes applied. An
// unparseable reply is non-fatal: the step produces no changes with
// SpeakersIdentified=0.
func Refine(ctx context.Context, transcript *model.Transcript, cfg Config, invoke Invoker) (Result, error) {
	result := Result{SegmentsProcessed: len(transcript.Segments), SpeakerMap: map[string]string{}}

	request := BuildRequest(transcript, cfg)

	start := time.Now()
	reply, err := invoke(ctx, request)
	result.ResponseTime = time.Since(start)
	if err != nil {
		return result, err
	}

	parsed, ok := extractJSONObject(reply)
	if !ok {
		return result, nil
	}

	applySpeakerRemap(transcript, parsed, &result)
	applyUpdates(transcript, parsed, cfg.SuggestionValidation, &result)

	return result, nil
}

// extractJSONObject locates the first '{' and last '}' in reply and
// validates the slice parses as JSON. Any failure yields ok=false (the
// caller then treats this as "no changes").
func extractJSONObject(reply string) (gjson.Result, bool) {
	first := strings.IndexByte(reply, '{')
	last := strings.LastIndexByte(reply, '}')
	if first < 0 || last < 0 || last < first {
		return gjson.Result{}, false
	}

	slice := reply[first : last+1]
	if !gjson.Valid(slice) {
		return gjson.Result{}, false
	}
	return gjson.Parse(slice), true
}

// applySpeakerRemap rewrites segment.Speaker and every word.Speaker
// matching a key in identifiedSpeakers whose value is not the identity
// mapping (i.e. the model proposed an actual name). Remapping commutes
// across segments: each segment is rewritten independently of the others.
func applySpeakerRemap(transcript *model.Transcript, parsed gjson.Result, result *Result) {
	speakers := parsed.Get("identifiedSpeakers")
	if !speakers.Exists() {
		return
	}

	remap := map[string]string{}
	speakers.ForEach(func(key, value gjson.Result) bool {
		label := key.String()
		name := value.String()
		if name != "" && name != label {
			remap[label] = name
			result.SpeakerMap[label] = name
		}
		return true
	})
	result.SpeakersIdentified = len(result.SpeakerMap)

	if len(remap) == 0 {
		return
	}

	for i := range transcript.Segments {
		seg := &transcript.Segments[i]
		if newName, ok := remap[seg.Speaker]; ok {
			seg.Speaker = newName
		}
		for j := range seg.Words {
			if newName, ok := remap[seg.Words[j].Speaker]; ok {
				seg.Words[j].Speaker = newName
			}
		}
	}
}

// applyUpdates walks parsed.updates, validating and reconciling each one
// that targets a valid segment index.
func applyUpdates(transcript *model.Transcript, parsed gjson.Result, validation suggest.Config, result *Result) {
	updates := parsed.Get("updates")
	if !updates.Exists() {
		return
	}

	updates.ForEach(func(_, update gjson.Result) bool {
		idx := int(update.Get("idx").Int())
		text := update.Get("text").String()

		if idx < 0 || idx >= len(transcript.Segments) {
			return true
		}

		seg := &transcript.Segments[idx]
		currentText := segmentWordsText(*seg)

		if text == currentText {
			result.Ignored = append(result.Ignored, IgnoredSuggestion{SegmentIndex: idx, Reason: suggest.ReasonNoChange})
			return true
		}

		verdict := suggest.Validate(currentText, text, validation)
		if !verdict.Valid {
			result.Ignored = append(result.Ignored, IgnoredSuggestion{SegmentIndex: idx, Reason: verdict.Reason})
			return true
		}

		patched := numerics.TextToWords(text)
		reconcile.Reconcile(seg, patched)

		result.Applied = append(result.Applied, AppliedUpdate{SegmentIndex: idx, OriginalText: currentText, CorrectedText: text})
		result.SegmentsUpdated++
		return true
	})
}
