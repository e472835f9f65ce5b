// Package model defines the data types shared across the refinement core:
// words, segments, transcripts, and the configuration records that shape how
// they get rewritten (replacement rules, validation thresholds, captions and
// normalization settings).
package model

// ScoreAdjusted is the sentinel confidence value assigned to any word whose
// text was touched by reconciliation. A nil Score means "unknown"; a
// pointer to this value means "no longer meaningful, was rewritten."
var ScoreAdjusted = -1.0

// Word is a single surface token with optional timing, speaker, and
// confidence. Text includes any trailing punctuation ("Hello,", "Bytes.").
// Whitespace is never part of Text.
type Word struct {
	Text    string   `json:"text"`
	Start   *float64 `json:"start,omitempty"`
	End     *float64 `json:"end,omitempty"`
	Speaker string   `json:"speaker,omitempty"`
	Score   *float64 `json:"score,omitempty"`
}

// HasTiming reports whether both Start and End are present.
func (w Word) HasTiming() bool {
	return w.Start != nil && w.End != nil
}

// ValidRange reports whether the word has timing and End > Start.
func (w Word) ValidRange() bool {
	return w.HasTiming() && *w.End > *w.Start
}

// Clone returns a deep copy of w (new Start/End/Score pointers).
func (w Word) Clone() Word {
	c := w
	if w.Start != nil {
		s := *w.Start
		c.Start = &s
	}
	if w.End != nil {
		e := *w.End
		c.End = &e
	}
	if w.Score != nil {
		sc := *w.Score
		c.Score = &sc
	}
	return c
}

// MarkAdjusted sets Score to the adjusted sentinel.
func (w *Word) MarkAdjusted() {
	w.Score = &ScoreAdjusted
}

// Segment is an ordered, non-empty sequence of words with envelope timing,
// a derived Text field, and an optional speaker label.
//
// Invariant: after any reconciliation step, Text must equal the
// space-joined concatenation of Words' texts. Words is the source of truth
// for timing and text whenever present; Text may be stale on input.
type Segment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"` // 0 means invalid/unknown end.
	Text    string  `json:"text"`
	Speaker string  `json:"speaker,omitempty"`
	Words   []Word  `json:"words,omitempty"`
}

// HasValidEnd reports whether the segment's End is a real timestamp.
func (s Segment) HasValidEnd() bool {
	return s.End > 0 && s.End > s.Start
}

// WordTexts returns the surface text of every word in order.
func (s Segment) WordTexts() []string {
	out := make([]string, len(s.Words))
	for i, w := range s.Words {
		out[i] = w.Text
	}
	return out
}

// Transcript is an ordered sequence of segments. Segment time ranges are
// trusted to be non-overlapping and time-ordered on input; the core never
// re-sorts them.
type Transcript struct {
	Segments []Segment `json:"segments"`
}

// RuleType discriminates a ReplacementRule.
type RuleType string

const (
	RuleLiteral RuleType = "literal"
	RuleRegex   RuleType = "regex"
)

// ReplacementRule is a tagged union: either a literal substring replacement
// or a regex substitution, never a subtype hierarchy.
type ReplacementRule struct {
	Type        RuleType `yaml:"type" validate:"required,oneof=literal regex,replacementrule"`
	Search      string   `yaml:"search" validate:"required"`
	Replacement string   `yaml:"replacement"`
}

// SpeakerPrefixMode controls how/when a caption cue is prefixed with the
// speaker's name.
type SpeakerPrefixMode string

const (
	SpeakerPrefixNever       SpeakerPrefixMode = "never"
	SpeakerPrefixAlways      SpeakerPrefixMode = "always"
	SpeakerPrefixWhenChanges SpeakerPrefixMode = "when-changes"
)

// HighlightStyle selects the tag used to wrap the currently-spoken word.
type HighlightStyle string

const (
	HighlightUnderline HighlightStyle = "underline"
	HighlightBold      HighlightStyle = "bold"
	HighlightItalic    HighlightStyle = "italic"
)

// CaptionsConfig controls which caption formats get generated and how.
type CaptionsConfig struct {
	GenerateVTT         bool              `yaml:"generateVtt"`
	GenerateSRT         bool              `yaml:"generateSrt"`
	GenerateJSON        bool              `yaml:"generateJson"`
	HighlightWords      bool              `yaml:"highlightWords"`
	HighlightWith       HighlightStyle    `yaml:"highlightWith" validate:"omitempty,oneof=underline bold italic"`
	IncludeSpeakerNames SpeakerPrefixMode `yaml:"includeSpeakerNames" validate:"omitempty,oneof=never always when-changes"`
}

// NormalizationConfig controls segment splitting into caption-sized units.
type NormalizationConfig struct {
	MaxCharsPerSegment         int     `yaml:"maxCharsPerSegment" validate:"gt=0"`
	MaxWordsPerSegment         int     `yaml:"maxWordsPerSegment" validate:"gt=0"`
	SplitSegmentAtSpeakerChange bool   `yaml:"splitSegmentAtSpeakerChange"`
	PunctuationSplitThreshold  float64 `yaml:"punctuationSplitThreshold" validate:"gte=0,lte=1"`
	PunctuationChars           []rune  `yaml:"-"`
	Normalize                  bool    `yaml:"normalize"`
}

// DefaultPunctuationChars matches spec.md's normalization defaults.
func DefaultPunctuationChars() []rune {
	return []rune{'.', ',', '?', '!', ';', ':'}
}
