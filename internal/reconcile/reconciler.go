// Package reconcile applies a new word sequence onto a segment while
// preserving, reshaping, or redistributing per-word timing, speaker, and
// confidence. This is the core algorithm the text rewrite sources
// (rule-based replacement, LLM suggestions) funnel through; segment
// splitting moves whole words and does not use it.
package reconcile

import (
	"github.com/fourTheorem/podwhisperer/internal/diffseq"
	"github.com/fourTheorem/podwhisperer/internal/model"
	"github.com/fourTheorem/podwhisperer/internal/numerics"
)

// Stats reports what a reconciliation pass did, for caller-side logging.
type Stats struct {
	WordsAdjusted int
	Skipped       bool
}

// pendingRemoval buffers timing from REMOVE operations that precede the
// first surviving word, so it can be donated to the next KEEP or ADD. This
// is intentionally asymmetric with how an ADD inherits from the previous
// surviving word: REMOVE-before-any-KEEP donates forward, ADD-after-a-KEEP
// donates backward by splitting the previous word's envelope. The "set the
// um main execution" -> "set the min execution" scenario exercises the
// second policy: the removals extend "the", and "min" takes the later half
// of its widened range.
type pendingRemoval struct {
	active  bool
	start   float64
	end     float64
	speaker string
}

// Reconcile applies patchedWords as segment's new word sequence, mutating
// segment in place. If segment has no words, it takes the fast path
// (reconstruct Text only). If len(segment.Words) == len(patchedWords), it
// overwrites word text in place. Otherwise it walks a word-level diff and
// rebuilds the word list, redistributing timing per the rules above.
func Reconcile(segment *model.Segment, patchedWords []string) Stats {
	if len(segment.Words) == 0 {
		segment.Text = numerics.ReconstructText(patchedWords)
		return Stats{}
	}

	if len(patchedWords) == 0 {
		// Precondition breach: patched empty while original is non-empty.
		// Leave the segment untouched per spec.md §7.
		return Stats{Skipped: true}
	}

	if len(segment.Words) == len(patchedWords) {
		for i := range segment.Words {
			segment.Words[i].Text = patchedWords[i]
		}
		segment.Text = numerics.ReconstructText(patchedWords)
		return Stats{}
	}

	origTexts := segment.WordTexts()
	ops := diffseq.ComputeDiff(origTexts, patchedWords)

	newWords := make([]model.Word, 0, len(patchedWords))
	var pending pendingRemoval
	stats := Stats{}

	for _, op := range ops {
		switch op.Kind {
		case diffseq.OpKeep:
			w := segment.Words[op.OrigIdx].Clone()
			w.Text = op.Word
			if pending.active {
				w.Start = floatPtr(pending.start)
				w.MarkAdjusted()
				stats.WordsAdjusted++
				pending = pendingRemoval{}
			}
			newWords = append(newWords, w)

		case diffseq.OpRemove:
			removed := segment.Words[op.OrigIdx]
			if len(newWords) > 0 {
				last := &newWords[len(newWords)-1]
				if removed.End != nil {
					last.End = floatPtr(*removed.End)
				}
				last.MarkAdjusted()
				stats.WordsAdjusted++
			} else if removed.HasTiming() {
				// A removed word without timing has nothing to donate.
				if !pending.active {
					pending = pendingRemoval{active: true, start: *removed.Start, end: *removed.End, speaker: removed.Speaker}
				} else if *removed.End > pending.end {
					// Earliest start is preserved: pending.start never moves forward.
					pending.end = *removed.End
				}
			}

		case diffseq.OpAdd:
			w := model.Word{Text: op.Word, Score: &model.ScoreAdjusted}
			if len(newWords) > 0 {
				prev := &newWords[len(newWords)-1]
				if prev.ValidRange() {
					mid := (*prev.Start + *prev.End) / 2
					w.Start = floatPtr(mid)
					w.End = floatPtr(*prev.End)
					w.Speaker = prev.Speaker
					prev.End = floatPtr(mid)
				} else if pending.active {
					w.Start = floatPtr(pending.start)
					w.End = floatPtr(pending.end)
					w.Speaker = pending.speaker
					pending = pendingRemoval{}
				} else {
					w.Start = floatPtr(segment.Start)
					w.End = floatPtr(segment.Start)
				}
			} else if pending.active {
				w.Start = floatPtr(pending.start)
				w.End = floatPtr(pending.end)
				w.Speaker = pending.speaker
				pending = pendingRemoval{}
			} else {
				w.Start = floatPtr(segment.Start)
				w.End = floatPtr(segment.Start)
			}
			newWords = append(newWords, w)
		}
	}

	segment.Words = newWords
	segment.Text = numerics.ReconstructText(patchedWords)
	return stats
}

func floatPtr(f float64) *float64 {
	return &f
}
