package llmrefine

import (
	"fmt"
	"strings"

	"github.com/fourTheorem/podwhisperer/internal/model"
	"github.com/fourTheorem/podwhisperer/internal/suggest"
)

const defaultSpeakerLabel = "SPEAKER_00"

const promptTemplate = `You are refining a speech-to-text transcript. Fix only machine-transcription
errors: mishearings, dropped/garbled words, and obviously wrong proper nouns.
Never rephrase, never fix grammar that a human speaker would actually say,
never paraphrase or summarize. Preserve the speaker's exact phrasing wherever
it is intelligible.

Return a single JSON object of the form:
{"identifiedSpeakers": {"SPEAKER_00": "Name" or "SPEAKER_00", ...},
 "updates": [{"idx": N, "text": "..."}, ...]}

Only include an entry in "updates" for a line you are actually changing.
%s
Transcript lines:
%s
`

// Config controls model selection and prompt shaping; these flow from the
// pipeline configuration, not the core's algorithmic logic.
type Config struct {
	BedrockInferenceProfileID string
	AdditionalContext         string
	ModelConfig               map[string]any
	SuggestionValidation      suggest.Config
}

// BuildRequest serializes the transcript into indexed "[i] [speaker] text"
// lines (sourced from the words array, the source of truth) and fills the
// fixed prompt template.
func BuildRequest(transcript *model.Transcript, cfg Config) string {
	var lines strings.Builder
	for i, seg := range transcript.Segments {
		speaker := seg.Speaker
		if speaker == "" {
			speaker = defaultSpeakerLabel
		}
		text := segmentWordsText(seg)
		fmt.Fprintf(&lines, "[%d] [%s] %s\n", i, speaker, text)
	}

	extra := ""
	if cfg.AdditionalContext != "" {
		extra = "\nAdditional context:\n" + cfg.AdditionalContext + "\n"
	}

	return fmt.Sprintf(promptTemplate, extra, lines.String())
}

// segmentWordsText renders a segment's current word stream as text — the
// words array, never the possibly-stale Text field.
func segmentWordsText(seg model.Segment) string {
	texts := seg.WordTexts()
	out := make([]string, len(texts))
	copy(out, texts)
	return strings.TrimSpace(strings.Join(out, " "))
}
