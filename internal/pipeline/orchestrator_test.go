package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/fourTheorem/podwhisperer/internal/config"
	"github.com/fourTheorem/podwhisperer/internal/model"
)

func ptr(f float64) *float64 { return &f }

func sampleTranscript() *model.Transcript {
	return &model.Transcript{
		Segments: []model.Segment{
			{
				Start: 0, End: 2, Speaker: "Alice",
				Words: []model.Word{
					{Text: "sage", Speaker: "Alice", Start: ptr(0), End: ptr(0.5)},
					{Text: "maker", Speaker: "Alice", Start: ptr(0.5), End: ptr(1.0)},
					{Text: "rocks", Speaker: "Alice", Start: ptr(1.0), End: ptr(2.0)},
				},
			},
		},
	}
}

func TestRun_ReplacementOnlyNoLLM(t *testing.T) {
	transcript := sampleTranscript()
	cfg := config.Default()
	cfg.ReplacementRules = []model.ReplacementRule{
		{Type: model.RuleLiteral, Search: "sage maker", Replacement: "SageMaker"},
	}

	result, err := Run(context.Background(), transcript, cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !result.LLMSkipped {
		t.Error("expected LLMSkipped true when no LLMRefinement config")
	}
	if transcript.Segments[0].Text != "SageMaker rocks" {
		t.Errorf("segment text = %q", transcript.Segments[0].Text)
	}
	if result.Captions.VTT == "" || result.Captions.SRT == "" || result.Captions.JSON == "" {
		t.Error("expected all three caption formats rendered by default")
	}
}

func TestRun_LLMRefinementWired(t *testing.T) {
	transcript := sampleTranscript()
	cfg := config.Default()
	cfg.LLMRefinement = &config.LLMRefinementConfig{}

	invoke := func(ctx context.Context, request string) (string, error) {
		return `{"updates": [{"idx": 0, "text": "SageMaker rocks"}]}`, nil
	}

	result, err := Run(context.Background(), transcript, cfg, invoke)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.LLMSkipped {
		t.Error("expected LLM step to run")
	}
	if result.LLMResult.SegmentsUpdated != 1 {
		t.Errorf("SegmentsUpdated = %d, want 1", result.LLMResult.SegmentsUpdated)
	}
}

func TestRun_LLMTransportFailurePropagates(t *testing.T) {
	transcript := sampleTranscript()
	cfg := config.Default()
	cfg.LLMRefinement = &config.LLMRefinementConfig{}

	invoke := func(ctx context.Context, request string) (string, error) {
		return "", errors.New("timeout")
	}

	if _, err := Run(context.Background(), transcript, cfg, invoke); err == nil {
		t.Error("expected transport failure to propagate from the pipeline")
	}
}

func TestRun_SelectiveCaptionGeneration(t *testing.T) {
	transcript := sampleTranscript()
	cfg := config.Default()
	cfg.Captions = model.CaptionsConfig{GenerateSRT: true}

	result, err := Run(context.Background(), transcript, cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Captions.VTT != "" || result.Captions.JSON != "" {
		t.Errorf("expected only SRT generated, got %+v", result.Captions)
	}
	if result.Captions.SRT == "" {
		t.Error("expected SRT to be rendered")
	}
}

func TestRun_LLMDisabledWithoutInvoker(t *testing.T) {
	transcript := sampleTranscript()
	cfg := config.Default()
	cfg.LLMRefinement = &config.LLMRefinementConfig{}

	result, err := Run(context.Background(), transcript, cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.LLMSkipped {
		t.Error("expected LLM step skipped when invoker is nil, even with config set")
	}
}
