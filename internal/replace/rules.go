// Package replace compiles and applies literal/regex replacement rules over
// a segment's word text, then hands the result to the reconciler so timing
// survives the rewrite.
package replace

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fourTheorem/podwhisperer/internal/model"
)

// compiledRule is a rule compiled once per Engine: regex rules get a
// compiled *regexp.Regexp, literal rules keep their search string.
type compiledRule struct {
	key         string
	kind        model.RuleType
	search      string
	replacement string
	pattern     *regexp.Regexp
}

// Engine holds a per-invocation cache of compiled rules.
type Engine struct {
	rules []compiledRule
}

// NewEngine compiles rules once. Regex rules compile to a global-match
// pattern; literal rules keep their search string as-is.
func NewEngine(rules []model.ReplacementRule) (*Engine, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		cr := compiledRule{
			kind:        r.Type,
			search:      r.Search,
			replacement: r.Replacement,
		}
		switch r.Type {
		case model.RuleLiteral:
			cr.key = fmt.Sprintf("%s->%s", r.Search, r.Replacement)
		case model.RuleRegex:
			pattern, err := regexp.Compile(r.Search)
			if err != nil {
				return nil, fmt.Errorf("compile regex rule %q: %w", r.Search, err)
			}
			cr.pattern = pattern
			cr.key = fmt.Sprintf("r'%s'->%s", r.Search, r.Replacement)
		default:
			return nil, fmt.Errorf("unknown replacement rule type %q", r.Type)
		}
		compiled = append(compiled, cr)
	}
	return &Engine{rules: compiled}, nil
}

// countLiteral counts non-overlapping occurrences of search in text,
// advancing by indexOf(search, idx+len(search)) each time.
func countLiteral(text, search string) int {
	if search == "" {
		return 0
	}
	count := 0
	idx := 0
	for {
		pos := strings.Index(text[idx:], search)
		if pos < 0 {
			break
		}
		count++
		idx += pos + len(search)
	}
	return count
}

func (cr compiledRule) apply(text string) (string, int) {
	switch cr.kind {
	case model.RuleLiteral:
		n := countLiteral(text, cr.search)
		if n == 0 {
			return text, 0
		}
		return strings.ReplaceAll(text, cr.search, cr.replacement), n
	case model.RuleRegex:
		matches := cr.pattern.FindAllString(text, -1)
		if len(matches) == 0 {
			return text, 0
		}
		return cr.pattern.ReplaceAllString(text, cr.replacement), len(matches)
	default:
		return text, 0
	}
}
