package captions

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/fourTheorem/podwhisperer/internal/model"
)

type jsonSegment struct {
	SpeakerLabel string  `json:"speakerLabel"`
	Start        float64 `json:"start"`
	End          float64 `json:"end"`
	Text         string  `json:"text"`
}

type jsonDocument struct {
	Speakers map[string]string `json:"speakers"`
	Segments []jsonSegment     `json:"segments"`
}

// RenderJSON renders a transcript as the simplified JSON caption form:
// speaker labels collected across segments and words, sorted
// lexicographically, and mapped to short spk_N keys.
func RenderJSON(transcript *model.Transcript) (string, error) {
	labelSet := make(map[string]struct{})
	for _, seg := range transcript.Segments {
		if seg.Speaker != "" {
			labelSet[seg.Speaker] = struct{}{}
		}
		for _, w := range seg.Words {
			if w.Speaker != "" {
				labelSet[w.Speaker] = struct{}{}
			}
		}
	}
	if len(labelSet) == 0 {
		labelSet[defaultSpeakerLabel] = struct{}{}
	}

	labels := make([]string, 0, len(labelSet))
	for l := range labelSet {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	keyByLabel := make(map[string]string, len(labels))
	speakers := make(map[string]string, len(labels))
	for i, label := range labels {
		key := spkKey(i)
		keyByLabel[label] = key
		speakers[key] = label
	}

	doc := jsonDocument{
		Speakers: speakers,
		Segments: make([]jsonSegment, len(transcript.Segments)),
	}
	for i, seg := range transcript.Segments {
		label := EffectiveSpeaker(seg)
		key, ok := keyByLabel[label]
		if !ok {
			key = spkKey(0)
		}
		doc.Segments[i] = jsonSegment{
			SpeakerLabel: key,
			Start:        seg.Start,
			End:          seg.End,
			Text:         strings.TrimSpace(seg.Text),
		}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func spkKey(i int) string {
	return "spk_" + strconv.Itoa(i)
}
