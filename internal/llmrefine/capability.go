// Package llmrefine drives the LLM-assisted refinement step: it serializes
// a transcript into indexed lines, invokes an injected LLM capability,
// parses the structured reply, remaps speaker labels, and applies validated
// per-segment rewrites through the reconciler.
package llmrefine

import "context"

// Invoker models the external LLM invocation capability: given a fully
// built request body, it returns the raw reply text. Modeling this as a
// narrow function type rather than an interface keeps the core testable
// with a fake and provider-agnostic, matching the teacher's own
// api.ProgressFunc callback shape.
type Invoker func(ctx context.Context, request string) (string, error)
