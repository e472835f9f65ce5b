package llmrefine

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"
)

// NewOpenAIInvoker returns an Invoker backed by an OpenAI-compatible chat
// completions endpoint, grounded on the pack's own
// vendors.OpenAIClient.Complete pattern: the request is sent as a single
// user message, with JSON response mode and usage/finish-reason logging. This is a collaborator
// implementation the CLI wires in — Refine itself never imports this file
// and accepts any Invoker, so credential handling and provider auth stay
// entirely outside the core.
func NewOpenAIInvoker(client *openai.Client, model string, maxTokens int, temperature float32) Invoker {
	return func(ctx context.Context, request string) (string, error) {
		req := openai.ChatCompletionRequest{
			Model: model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: request},
			},
			MaxTokens:   maxTokens,
			Temperature: temperature,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		}

		resp, err := client.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", fmt.Errorf("llm completion: %w", err)
		}

		if len(resp.Choices) == 0 {
			slog.Warn("llm response had no choices")
			return "", nil
		}

		content := resp.Choices[0].Message.Content
		slog.Debug("llm response",
			"finish_reason", resp.Choices[0].FinishReason,
			"prompt_tokens", resp.Usage.PromptTokens,
			"completion_tokens", resp.Usage.CompletionTokens)

		return content, nil
	}
}
