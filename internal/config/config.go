// Package config loads and validates the pipeline's YAML configuration:
// replacement rules, LLM refinement settings, normalization limits, and
// caption output flags, per the declarative schema layer called for by the
// refinement core's design.
package config

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/fourTheorem/podwhisperer/internal/model"
	"github.com/fourTheorem/podwhisperer/internal/normalize"
	"github.com/fourTheorem/podwhisperer/internal/suggest"
)

// LLMRefinementConfig controls whether and how the LLM refinement step
// runs. A nil *LLMRefinementConfig on PipelineConfig disables the step
// entirely.
type LLMRefinementConfig struct {
	BedrockInferenceProfileID string         `yaml:"bedrockInferenceProfileId"`
	AdditionalContext         string         `yaml:"additionalContext"`
	ModelConfig               map[string]any `yaml:"modelConfig"`
	SuggestionValidation      suggest.Config `yaml:"suggestionValidation"`
}

// PipelineConfig is the full, validated configuration for one pipeline run.
type PipelineConfig struct {
	ReplacementRules []model.ReplacementRule   `yaml:"replacementRules" validate:"dive"`
	LLMRefinement    *LLMRefinementConfig      `yaml:"llmRefinement"`
	Normalization    model.NormalizationConfig `yaml:"normalization" validate:"required"`
	Captions         model.CaptionsConfig      `yaml:"captions"`
}

// Default returns a PipelineConfig with every sub-config at its documented
// default: replacement disabled (no rules), LLM refinement disabled (nil),
// normalization and suggestion-validation at spec defaults, and all three
// caption formats enabled with no highlighting.
func Default() *PipelineConfig {
	return &PipelineConfig{
		ReplacementRules: nil,
		LLMRefinement:    nil,
		Normalization:    normalize.Default(),
		Captions: model.CaptionsConfig{
			GenerateVTT:         true,
			GenerateSRT:         true,
			GenerateJSON:        true,
			HighlightWords:      false,
			HighlightWith:       model.HighlightUnderline,
			IncludeSpeakerNames: model.SpeakerPrefixWhenChanges,
		},
	}
}

// ValidationError wraps a schema validation failure with a human-readable
// message naming the first offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("replacementrule", validateReplacementRule); err != nil {
		panic(err) // only fails on a malformed validator tag, a programmer error
	}
	return v
}

// validateReplacementRule enforces that a regex-typed rule's Search
// compiles. This is the discriminated-union check the schema layer needs:
// validator's struct tags alone can't express "valid iff Type == regex".
func validateReplacementRule(fl validator.FieldLevel) bool {
	rule, ok := fl.Parent().Interface().(model.ReplacementRule)
	if !ok {
		return true
	}
	if rule.Type != model.RuleRegex {
		return true
	}
	_, err := regexp.Compile(rule.Search)
	return err == nil
}

// Load parses raw YAML into a PipelineConfig seeded with Default(), then
// validates it. It returns a *ValidationError wrapping the first schema
// violation on failure; the caller must treat that as fatal before running
// any pipeline step.
func Load(raw []byte) (*PipelineConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if cfg.LLMRefinement != nil && cfg.LLMRefinement.SuggestionValidation == (suggest.Config{}) {
		cfg.LLMRefinement.SuggestionValidation = suggest.Default()
	}

	if err := validate.Struct(cfg); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			first := verrs[0]
			return nil, &ValidationError{Field: first.Namespace(), Message: first.Tag()}
		}
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return cfg, nil
}
