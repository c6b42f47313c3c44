package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrSkillParse marks a skill-extractor response that was not valid JSON.
// Callers surface it as a parse error, distinct from provider failures.
var ErrSkillParse = errors.New("skill extraction returned invalid JSON")

// CleanJson strips a markdown code fence around a model response. Both the
// fenced and unfenced shapes come back from the provider in practice.
func CleanJson(input string) string {
	clean := strings.TrimSpace(input)

	// Remove opening ```json or ``` with optional newline
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	// Remove closing ``` unconditionally
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

// ExtractSkills asks the model for present/missing skill lists as strict JSON
// and parses them. Invalid JSON is reported via ErrSkillParse, never papered
// over with an empty result.
func ExtractSkills(ctx context.Context, llm TextGenerator, resume, jobDesc string) (SkillLists, error) {
	var skills SkillLists
	res, err := llm.Generate(ctx, skillsPrompt(resume, jobDesc))
	if err != nil {
		return skills, fmt.Errorf("skill extraction: %w", err)
	}
	cleaned := CleanJson(res)
	if err := json.Unmarshal([]byte(cleaned), &skills); err != nil {
		return skills, fmt.Errorf("%w: %v", ErrSkillParse, err)
	}
	return skills, nil
}

// ExtractMatchedKeywords asks the model for the JD keywords that also appear
// in the resume, as a comma-separated list. Tokens are trimmed and empties
// dropped; case is left exactly as the model produced it.
func ExtractMatchedKeywords(ctx context.Context, llm TextGenerator, resume, jobDesc string) ([]string, error) {
	res, err := llm.Generate(ctx, keywordsPrompt(resume, jobDesc))
	if err != nil {
		return nil, fmt.Errorf("keyword extraction: %w", err)
	}
	return SplitKeywords(res), nil
}

// SplitKeywords splits a comma-separated token list, trimming whitespace and
// dropping empty tokens.
func SplitKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := strings.TrimSpace(p); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// KeywordSpan marks one case-insensitive keyword occurrence in the body text.
type KeywordSpan struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Keyword string `json:"keyword"`
}

// KeywordSpans locates every case-insensitive occurrence of the keywords in
// body, for the heatmap highlighter.
func KeywordSpans(body string, keywords []string) []KeywordSpan {
	if body == "" || len(keywords) == 0 {
		return nil
	}
	quoted := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k != "" {
			quoted = append(quoted, regexp.QuoteMeta(k))
		}
	}
	if len(quoted) == 0 {
		return nil
	}
	pattern, err := regexp.Compile("(?i)(" + strings.Join(quoted, "|") + ")")
	if err != nil {
		return nil
	}
	matches := pattern.FindAllStringIndex(body, -1)
	spans := make([]KeywordSpan, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, KeywordSpan{Start: m[0], End: m[1], Keyword: body[m[0]:m[1]]})
	}
	return spans
}
