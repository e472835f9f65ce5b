// Package pipeline orchestrates the refinement core's steps in order —
// replacement, LLM refinement, normalization — and fans out caption
// rendering once the transcript is final.
package pipeline

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fourTheorem/podwhisperer/internal/captions"
	"github.com/fourTheorem/podwhisperer/internal/config"
	"github.com/fourTheorem/podwhisperer/internal/llmrefine"
	"github.com/fourTheorem/podwhisperer/internal/model"
	"github.com/fourTheorem/podwhisperer/internal/normalize"
	"github.com/fourTheorem/podwhisperer/internal/replace"
)

// CaptionBundle holds the rendered output for whichever formats were
// requested; an empty string means that format was not generated.
type CaptionBundle struct {
	VTT  string
	SRT  string
	JSON string
}

// Result bundles the mutated transcript with per-step statistics and the
// rendered caption bundle.
type Result struct {
	Transcript       *model.Transcript
	Captions         CaptionBundle
	ReplacementStats replace.Stats
	LLMResult        llmrefine.Result
	LLMSkipped       bool
	NormalizeStats   normalize.Stats
	Duration         time.Duration
}

// Run executes Replacement, then LLM Refinement (if cfg.LLMRefinement is
// set), then Normalization, on transcript in place, and renders whichever
// caption formats cfg.Captions requests. The three renderers run
// concurrently since none of them mutate the transcript.
func Run(ctx context.Context, transcript *model.Transcript, cfg *config.PipelineConfig, invoke llmrefine.Invoker) (*Result, error) {
	start := time.Now()
	result := &Result{Transcript: transcript}

	if len(cfg.ReplacementRules) > 0 {
		engine, err := replace.NewEngine(cfg.ReplacementRules)
		if err != nil {
			return nil, err
		}
		result.ReplacementStats = engine.Apply(transcript)
	}

	if cfg.LLMRefinement == nil || invoke == nil {
		result.LLMSkipped = true
	} else {
		llmCfg := llmrefine.Config{
			BedrockInferenceProfileID: cfg.LLMRefinement.BedrockInferenceProfileID,
			AdditionalContext:         cfg.LLMRefinement.AdditionalContext,
			ModelConfig:               cfg.LLMRefinement.ModelConfig,
			SuggestionValidation:      cfg.LLMRefinement.SuggestionValidation,
		}
		llmResult, err := llmrefine.Refine(ctx, transcript, llmCfg, invoke)
		if err != nil {
			return nil, err
		}
		result.LLMResult = llmResult
	}

	result.NormalizeStats = normalize.Normalize(transcript, cfg.Normalization)

	if err := renderCaptions(ctx, transcript, cfg.Captions, &result.Captions); err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	return result, nil
}

func renderCaptions(ctx context.Context, transcript *model.Transcript, capCfg model.CaptionsConfig, out *CaptionBundle) error {
	g, _ := errgroup.WithContext(ctx)

	if capCfg.GenerateVTT {
		g.Go(func() error {
			out.VTT = captions.RenderVTT(transcript, capCfg)
			return nil
		})
	}
	if capCfg.GenerateSRT {
		g.Go(func() error {
			out.SRT = captions.RenderSRT(transcript, capCfg)
			return nil
		})
	}
	if capCfg.GenerateJSON {
		g.Go(func() error {
			rendered, err := captions.RenderJSON(transcript)
			if err != nil {
				return err
			}
			out.JSON = rendered
			return nil
		})
	}

	return g.Wait()
}
