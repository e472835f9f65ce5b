// Package suggest validates a proposed text rewrite before it is allowed to
// reach the reconciler: it rejects full rewrites dressed up as "corrections"
// by measuring how much of the original survives.
package suggest

import (
	"github.com/fourTheorem/podwhisperer/internal/diffseq"
	"github.com/fourTheorem/podwhisperer/internal/numerics"
)

// Reason is a closed enum of rejection reasons, reported in priority order.
type Reason string

const (
	ReasonNone               Reason = ""
	ReasonNoChange           Reason = "no-change"
	ReasonWordChangeRatio    Reason = "word-change-ratio"
	ReasonEditDistance       Reason = "edit-distance"
	ReasonConsecutiveChanges Reason = "consecutive-changes"
)

// Config holds validation thresholds. Zero value is invalid; use Default().
type Config struct {
	Enabled                bool    `yaml:"enabled" validate:"-"`
	MaxWordChangeRatio     float64 `yaml:"maxWordChangeRatio" validate:"gte=0,lte=1"`
	MaxNormalizedEditDist  float64 `yaml:"maxNormalizedEditDistance" validate:"gte=0,lte=1"`
	MaxConsecutiveChanges  int     `yaml:"maxConsecutiveChanges" validate:"gte=0"`
	MinWordsForRatioCheck  int     `yaml:"minWordsForRatioCheck" validate:"gte=0"`
}

// Default returns the thresholds specified in spec.md §3.
func Default() Config {
	return Config{
		Enabled:               true,
		MaxWordChangeRatio:    0.4,
		MaxNormalizedEditDist: 0.5,
		MaxConsecutiveChanges: 3,
		MinWordsForRatioCheck: 5,
	}
}

// Result carries the computed signals plus the accept/reject decision.
type Result struct {
	Valid               bool
	Reason              Reason
	WordChangeRatio     float64
	NormalizedEditDist  float64
	MaxConsecutiveDelta int
}

// Validate decides whether correctedText is an acceptable rewrite of
// originalText given cfg. When cfg.Enabled is false, every input is valid.
func Validate(originalText, correctedText string, cfg Config) Result {
	if !cfg.Enabled {
		return Result{Valid: true}
	}

	if originalText == correctedText {
		return Result{Reason: ReasonNoChange}
	}

	origWords := numerics.SplitWords(originalText)
	corrWords := numerics.SplitWords(correctedText)

	ratio := wordChangeRatio(origWords, corrWords)
	editDist := numerics.NormalizedEditDistance(originalText, correctedText)
	consecutive := maxConsecutiveChanges(origWords, corrWords)

	res := Result{
		WordChangeRatio:     ratio,
		NormalizedEditDist:  editDist,
		MaxConsecutiveDelta: consecutive,
	}

	if len(origWords) < cfg.MinWordsForRatioCheck {
		if consecutive > cfg.MaxConsecutiveChanges {
			res.Reason = ReasonConsecutiveChanges
			return res
		}
		res.Valid = true
		return res
	}

	switch {
	case ratio > cfg.MaxWordChangeRatio:
		res.Reason = ReasonWordChangeRatio
	case editDist > cfg.MaxNormalizedEditDist:
		res.Reason = ReasonEditDistance
	case consecutive > cfg.MaxConsecutiveChanges:
		res.Reason = ReasonConsecutiveChanges
	default:
		res.Valid = true
	}

	return res
}

// wordChangeRatio computes (max(|o|,|c|) - |lcs(o,c)|) / max(|o|,|c|) over
// lowercased word arrays. Using LCS rather than positional compare is
// load-bearing: "lambda land" -> "LambdaLith" is two removes + one add, not
// a cascade of per-index substitutions.
func wordChangeRatio(orig, corr []string) float64 {
	maxLen := len(orig)
	if len(corr) > maxLen {
		maxLen = len(corr)
	}
	if maxLen == 0 {
		return 0
	}
	lcs := diffseq.ComputeLCS(orig, corr)
	return float64(maxLen-len(lcs.Words)) / float64(maxLen)
}

// maxConsecutiveChanges returns the longest run of non-Keep operations in
// the diff stream between orig and corr.
func maxConsecutiveChanges(orig, corr []string) int {
	ops := diffseq.ComputeDiff(orig, corr)

	maxRun, run := 0, 0
	for _, op := range ops {
		if op.Kind == diffseq.OpKeep {
			run = 0
			continue
		}
		run++
		if run > maxRun {
			maxRun = run
		}
	}
	return maxRun
}
