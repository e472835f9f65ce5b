package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"

	"github.com/fourTheorem/podwhisperer/internal/config"
	"github.com/fourTheorem/podwhisperer/internal/llmrefine"
	"github.com/fourTheorem/podwhisperer/internal/model"
	"github.com/fourTheorem/podwhisperer/internal/pipeline"
)

var refineCmd = &cobra.Command{
	Use:   "refine <transcript.json>",
	Short: "Run the refinement pipeline over a raw transcript",
	Long: `Refine reads a raw word-aligned transcript and an optional pipeline
config, runs replacement, LLM refinement, and normalization in order, and
writes whichever of VTT/SRT/JSON captions the config requests.`,
	Args: cobra.ExactArgs(1),
	RunE: runRefine,
}

var (
	configPath  string
	outputStem  string
	dryRun      bool
	openaiModel string
)

func init() {
	refineCmd.Flags().StringVarP(&configPath, "config", "c", "", "pipeline config YAML path (defaults applied if omitted)")
	refineCmd.Flags().StringVarP(&outputStem, "output", "o", "", "output path stem (default: <input> without extension)")
	refineCmd.Flags().BoolVar(&dryRun, "dry-run", false, "skip the LLM call even if llmRefinement is configured")
	refineCmd.Flags().StringVar(&openaiModel, "openai-model", "gpt-4o-mini", "OpenAI model for LLM refinement")

	rootCmd.AddCommand(refineCmd)
}

func runRefine(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	var transcript model.Transcript
	if err := json.Unmarshal(raw, &transcript); err != nil {
		return fmt.Errorf("parse transcript: %w", err)
	}

	cfg := config.Default()
	if configPath != "" {
		rawCfg, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		cfg, err = config.Load(rawCfg)
		if err != nil {
			return err
		}
	}

	var invoke llmrefine.Invoker
	if cfg.LLMRefinement != nil && !dryRun {
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("llmRefinement is configured but OPENAI_API_KEY is not set (use --dry-run to skip)")
		}
		client := openai.NewClient(apiKey)
		invoke = llmrefine.NewOpenAIInvoker(client, openaiModel, 2048, 0.2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := pipeline.Run(ctx, &transcript, cfg, invoke)
	if err != nil {
		return err
	}

	stem := outputStem
	if stem == "" {
		stem = strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	}

	if err := writeIfPresent(stem+".vtt", result.Captions.VTT); err != nil {
		return err
	}
	if err := writeIfPresent(stem+".srt", result.Captions.SRT); err != nil {
		return err
	}
	if err := writeIfPresent(stem+".json", result.Captions.JSON); err != nil {
		return err
	}

	if !quiet {
		slog.Info("refine complete",
			"segments_modified", result.ReplacementStats.SegmentsModified,
			"llm_skipped", result.LLMSkipped,
			"segments_updated", result.LLMResult.SegmentsUpdated,
			"normalize_splits", result.NormalizeStats.Splits,
			"duration", result.Duration)
	}
	return nil
}

func writeIfPresent(path, content string) error {
	if content == "" {
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
