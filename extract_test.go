package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator returns a canned response and records each prompt it saw.
type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestCleanJson(t *testing.T) {
	want := `{"present_skills":["Python"],"missing_skills":["Go"]}`
	cases := []struct {
		name  string
		input string
	}{
		{"bare", want},
		{"fenced json", "```json\n" + want + "\n```"},
		{"fenced plain", "```\n" + want + "\n```"},
		{"fenced no newline", "```json" + want + "```"},
		{"surrounding whitespace", "  \n" + want + "\n  "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, want, CleanJson(tc.input))
		})
	}
}

func TestExtractSkills(t *testing.T) {
	llm := &fakeGenerator{response: `{"present_skills":["Python"],"missing_skills":["Go"]}`}

	skills, err := ExtractSkills(context.Background(), llm, "resume text", "jd text")
	require.NoError(t, err)
	assert.Equal(t, []string{"Python"}, skills.PresentSkills)
	assert.Equal(t, []string{"Go"}, skills.MissingSkills)
}

func TestExtractSkillsFenced(t *testing.T) {
	llm := &fakeGenerator{response: "```json\n{\"present_skills\":[\"Python\"],\"missing_skills\":[\"Go\"]}\n```"}

	skills, err := ExtractSkills(context.Background(), llm, "resume text", "jd text")
	require.NoError(t, err)
	assert.Equal(t, []string{"Python"}, skills.PresentSkills)
	assert.Equal(t, []string{"Go"}, skills.MissingSkills)
}

func TestExtractSkillsParseFailure(t *testing.T) {
	llm := &fakeGenerator{response: "Sure! Here are the skills I found:"}

	_, err := ExtractSkills(context.Background(), llm, "resume text", "jd text")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSkillParse), "parse failures must be distinguishable from provider errors")
}

func TestExtractSkillsProviderFailure(t *testing.T) {
	llm := &fakeGenerator{err: errors.New("quota exceeded")}

	_, err := ExtractSkills(context.Background(), llm, "resume text", "jd text")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSkillParse))
}

func TestExtractMatchedKeywords(t *testing.T) {
	llm := &fakeGenerator{response: "Python, SQL, AWS, Docker"}

	keywords, err := ExtractMatchedKeywords(context.Background(), llm, "resume", "jd")
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "SQL", "AWS", "Docker"}, keywords)
}

func TestSplitKeywordsMessyInput(t *testing.T) {
	keywords := SplitKeywords("  Python , SQL ,, AWS,Docker, ")
	assert.Equal(t, []string{"Python", "SQL", "AWS", "Docker"}, keywords)
	for _, k := range keywords {
		assert.NotEmpty(t, k)
	}
}

func TestSplitKeywordsPreservesCase(t *testing.T) {
	assert.Equal(t, []string{"gRPC", "PostgreSQL"}, SplitKeywords("gRPC, PostgreSQL"))
}

func TestKeywordSpansCaseInsensitive(t *testing.T) {
	body := "Built services in Go and golang tooling with Docker."
	spans := KeywordSpans(body, []string{"golang", "docker"})
	require.Len(t, spans, 2)
	assert.Equal(t, "golang", spans[0].Keyword)
	assert.Equal(t, "Docker", spans[1].Keyword)
	for _, s := range spans {
		assert.Equal(t, s.Keyword, body[s.Start:s.End])
	}
}

func TestKeywordSpansEmptyInputs(t *testing.T) {
	assert.Nil(t, KeywordSpans("", []string{"Go"}))
	assert.Nil(t, KeywordSpans("some body", nil))
	assert.Nil(t, KeywordSpans("some body", []string{""}))
}
