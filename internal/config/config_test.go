package config

import "testing"

func TestLoad_DefaultsApplyWhenYamlOmitsThem(t *testing.T) {
	cfg, err := Load([]byte(`{}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Normalization.MaxWordsPerSegment != 10 {
		t.Errorf("MaxWordsPerSegment = %d, want default 10", cfg.Normalization.MaxWordsPerSegment)
	}
	if !cfg.Captions.GenerateVTT || !cfg.Captions.GenerateSRT || !cfg.Captions.GenerateJSON {
		t.Errorf("expected all caption formats enabled by default, got %+v", cfg.Captions)
	}
}

func TestLoad_ParsesReplacementRules(t *testing.T) {
	raw := []byte(`
replacementRules:
  - type: literal
    search: "sage maker"
    replacement: "SageMaker"
  - type: regex
    search: "\\bum+\\b"
    replacement: ""
normalization:
  maxCharsPerSegment: 48
  maxWordsPerSegment: 10
  punctuationSplitThreshold: 0.7
  normalize: true
`)
	cfg, err := Load(raw)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.ReplacementRules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(cfg.ReplacementRules))
	}
	if cfg.ReplacementRules[1].Type != "regex" {
		t.Errorf("rule 1 type = %q", cfg.ReplacementRules[1].Type)
	}
}

func TestLoad_RejectsInvalidRegexRule(t *testing.T) {
	raw := []byte(`
replacementRules:
  - type: regex
    search: "("
    replacement: ""
normalization:
  maxCharsPerSegment: 48
  maxWordsPerSegment: 10
  punctuationSplitThreshold: 0.7
`)
	_, err := Load(raw)
	if err == nil {
		t.Fatal("expected validation error for unbalanced regex")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Errorf("expected *ValidationError, got %T: %v", err, err)
	}
}

func TestLoad_RejectsUnknownRuleType(t *testing.T) {
	raw := []byte(`
replacementRules:
  - type: fuzzy
    search: "x"
normalization:
  maxCharsPerSegment: 48
  maxWordsPerSegment: 10
  punctuationSplitThreshold: 0.7
`)
	if _, err := Load(raw); err == nil {
		t.Fatal("expected validation error for unknown rule type")
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	if _, err := Load([]byte("not: valid: yaml: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_LLMRefinementGetsDefaultSuggestionValidation(t *testing.T) {
	raw := []byte(`
llmRefinement:
  additionalContext: "this is a podcast about AWS"
normalization:
  maxCharsPerSegment: 48
  maxWordsPerSegment: 10
  punctuationSplitThreshold: 0.7
`)
	cfg, err := Load(raw)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLMRefinement == nil {
		t.Fatal("expected LLMRefinement to be set")
	}
	if !cfg.LLMRefinement.SuggestionValidation.Enabled {
		t.Error("expected suggestion validation to default to enabled when omitted")
	}
	if cfg.LLMRefinement.SuggestionValidation.MaxWordChangeRatio != 0.4 {
		t.Errorf("MaxWordChangeRatio = %v, want default 0.4", cfg.LLMRefinement.SuggestionValidation.MaxWordChangeRatio)
	}
}
