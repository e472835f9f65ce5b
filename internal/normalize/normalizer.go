// Package normalize splits segments into caption-sized units, honoring
// speaker boundaries and punctuation affinity, via a single left-to-right
// accumulator pass.
package normalize

import (
	"sort"
	"unicode/utf8"

	"github.com/fourTheorem/podwhisperer/internal/model"
	"github.com/fourTheorem/podwhisperer/internal/numerics"
)

// Default returns the normalization defaults from spec.md §3.
func Default() model.NormalizationConfig {
	return model.NormalizationConfig{
		MaxCharsPerSegment:          48,
		MaxWordsPerSegment:          10,
		SplitSegmentAtSpeakerChange: true,
		PunctuationSplitThreshold:   0.7,
		PunctuationChars:            model.DefaultPunctuationChars(),
		Normalize:                   true,
	}
}

// Stats reports distribution metrics over the normalizer's output.
type Stats struct {
	Splits         int
	MinWords       int
	MaxWords       int
	AvgWords       float64
	P95Words       int
	MinChars       int
	MaxChars       int
	AvgChars       float64
	P95Chars       int
}

type accumulator struct {
	words   []model.Word
	speaker string
}

func (a accumulator) empty() bool { return len(a.words) == 0 }

func (a accumulator) charCount() int {
	total := 0
	for i, w := range a.words {
		if i > 0 {
			total++ // joining space
		}
		total += utf8.RuneCountInString(w.Text)
	}
	return total
}

// Normalize splits every segment with a non-empty Words array into 1..N
// output segments honoring cfg's limits. Segments without words pass
// through unchanged. When cfg.Normalize is false, the transcript passes
// through untouched.
func Normalize(transcript *model.Transcript, cfg model.NormalizationConfig) Stats {
	if !cfg.Normalize {
		return Stats{}
	}

	punct := make(map[rune]struct{}, len(cfg.PunctuationChars))
	for _, r := range cfg.PunctuationChars {
		punct[r] = struct{}{}
	}

	var output []model.Segment
	splits := 0

	for _, seg := range transcript.Segments {
		if len(seg.Words) == 0 {
			output = append(output, seg)
			continue
		}

		segments := normalizeSegment(seg, cfg, punct)
		if len(segments) > 1 {
			splits += len(segments) - 1
		}
		output = append(output, segments...)
	}

	transcript.Segments = output
	stats := computeStats(output)
	stats.Splits = splits
	return stats
}

func normalizeSegment(seg model.Segment, cfg model.NormalizationConfig, punct map[rune]struct{}) []model.Segment {
	var results []model.Segment
	var cur accumulator

	flush := func() {
		if cur.empty() {
			return
		}
		results = append(results, emit(cur))
		cur = accumulator{}
	}

	for i, w := range seg.Words {
		// Speaker-change flush.
		if cfg.SplitSegmentAtSpeakerChange && !cur.empty() && w.Speaker != cur.speaker {
			flush()
		}

		// Hard-limit flush.
		newChars := cur.charCount()
		if !cur.empty() {
			newChars++
		}
		newChars += utf8.RuneCountInString(w.Text)
		newWords := len(cur.words) + 1

		if !cur.empty() && (newWords > cfg.MaxWordsPerSegment || newChars > cfg.MaxCharsPerSegment) {
			flush()
		}

		cur.words = append(cur.words, w)
		if w.Speaker != "" {
			cur.speaker = w.Speaker
		}

		// Soft punctuation flush.
		isLast := i == len(seg.Words)-1
		if !isLast {
			progress := softProgress(cur, cfg)
			if progress >= cfg.PunctuationSplitThreshold && endsWithPunct(w.Text, punct) {
				flush()
			}
		}
	}

	flush()
	return results
}

func softProgress(cur accumulator, cfg model.NormalizationConfig) float64 {
	charsRatio := float64(cur.charCount()) / float64(cfg.MaxCharsPerSegment)
	wordsRatio := float64(len(cur.words)) / float64(cfg.MaxWordsPerSegment)
	if charsRatio > wordsRatio {
		return charsRatio
	}
	return wordsRatio
}

func endsWithPunct(text string, punct map[rune]struct{}) bool {
	if text == "" {
		return false
	}
	r, size := utf8.DecodeLastRuneInString(text)
	if size == 0 {
		return false
	}
	_, ok := punct[r]
	return ok
}

func emit(cur accumulator) model.Segment {
	texts := make([]string, len(cur.words))
	for i, w := range cur.words {
		texts[i] = w.Text
	}

	seg := model.Segment{
		Speaker: cur.speaker,
		Text:    numerics.ReconstructText(texts),
		Words:   append([]model.Word{}, cur.words...),
	}
	if first := cur.words[0]; first.Start != nil {
		seg.Start = *first.Start
	}
	if last := cur.words[len(cur.words)-1]; last.End != nil {
		seg.End = *last.End
	}
	return seg
}

func computeStats(segments []model.Segment) Stats {
	if len(segments) == 0 {
		return Stats{}
	}

	wordCounts := make([]int, len(segments))
	charCounts := make([]int, len(segments))
	totalWords, totalChars := 0, 0

	for i, seg := range segments {
		wordCounts[i] = len(seg.Words)
		charCounts[i] = utf8.RuneCountInString(seg.Text)
		totalWords += wordCounts[i]
		totalChars += charCounts[i]
	}

	sortedWords := append([]int{}, wordCounts...)
	sortedChars := append([]int{}, charCounts...)
	sort.Ints(sortedWords)
	sort.Ints(sortedChars)

	n := len(segments)
	return Stats{
		MinWords: sortedWords[0],
		MaxWords: sortedWords[n-1],
		AvgWords: float64(totalWords) / float64(n),
		P95Words: percentile(sortedWords),
		MinChars: sortedChars[0],
		MaxChars: sortedChars[n-1],
		AvgChars: float64(totalChars) / float64(n),
		P95Chars: percentile(sortedChars),
	}
}

func percentile(sorted []int) int {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(float64(len(sorted)-1) * 0.95)
	return sorted[idx]
}
