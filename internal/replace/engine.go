package replace

import (
	"github.com/fourTheorem/podwhisperer/internal/model"
	"github.com/fourTheorem/podwhisperer/internal/numerics"
	"github.com/fourTheorem/podwhisperer/internal/reconcile"
)

// Stats summarizes a replacement pass across an entire transcript.
type Stats struct {
	SegmentsModified int
	WordsChanged     int
	PerRule          map[string]int
}

// Apply runs every compiled rule, in order, over each segment's word text
// (never the possibly-stale segment.Text) and reconciles any segment whose
// text actually changed. Per-segment output depends only on that segment's
// own words, so the result is independent of segment order.
func (e *Engine) Apply(transcript *model.Transcript) Stats {
	stats := Stats{PerRule: make(map[string]int)}

	for i := range transcript.Segments {
		seg := &transcript.Segments[i]
		if len(seg.Words) == 0 {
			continue
		}

		source := numerics.ReconstructText(seg.WordTexts())
		current := source
		changed := false

		for _, rule := range e.rules {
			next, count := rule.apply(current)
			if count == 0 {
				continue
			}
			current = next
			changed = true
			stats.PerRule[rule.key] += count
		}

		if !changed || current == source {
			continue
		}

		beforeWords := len(seg.Words)
		patched := numerics.TextToWords(current)
		reconcile.Reconcile(seg, patched)

		stats.SegmentsModified++
		stats.WordsChanged += wordDelta(beforeWords, len(patched))
	}

	return stats
}

func wordDelta(before, after int) int {
	if after > before {
		return after - before
	}
	return before - after
}
