package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	result string
	err    error
}

func (f *fakeSearcher) GetCompanyInfo(_ context.Context, _ string) (string, error) {
	return f.result, f.err
}

func TestEmptyInputsScoreZeroNoIndex(t *testing.T) {
	emb := &fakeEmbedder{fallback: []float32{1, 0}}

	kb, err := BuildKnowledgeBase(context.Background(), emb, "")
	require.NoError(t, err)
	require.Nil(t, kb)

	score, err := MatchScore(context.Background(), emb, kb, "")
	require.NoError(t, err)
	assert.Equal(t, 0, score)
	assert.Zero(t, emb.calls, "nothing should be embedded when there is no index")
}

func TestErrorResult(t *testing.T) {
	r := errorResult("Jane", "file download error: timeout")
	assert.True(t, r.IsErrorResult)
	assert.Equal(t, "Jane", r.CandidateName)
	assert.Equal(t, "file download error: timeout", r.Error)
	assert.Zero(t, r.MatchScore)
}

func TestCompanyContextPrefersWebData(t *testing.T) {
	cfg := &WorkerConfig{
		Search: &fakeSearcher{result: "### Company Intelligence (Live Web Data):\n- live"},
		LLM:    &fakeGenerator{response: "model knowledge"},
	}

	out := companyContext(context.Background(), cfg, "Example Corp")
	assert.Contains(t, out, "live")
}

func TestCompanyContextFallsBackOnEmptyResults(t *testing.T) {
	llm := &fakeGenerator{response: "model knowledge about Example Corp"}
	cfg := &WorkerConfig{
		Search: &fakeSearcher{result: ""},
		LLM:    llm,
	}

	out := companyContext(context.Background(), cfg, "Example Corp")
	assert.Equal(t, "model knowledge about Example Corp", out)
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "Example Corp")
}

func TestCompanyContextFallsBackOnSearchError(t *testing.T) {
	cfg := &WorkerConfig{
		Search: &fakeSearcher{err: errors.New("rate limited")},
		LLM:    &fakeGenerator{response: "fallback insight"},
	}

	out := companyContext(context.Background(), cfg, "Example Corp")
	assert.Equal(t, "fallback insight", out)
}

func TestCompanyContextSkipsWithoutCompany(t *testing.T) {
	llm := &fakeGenerator{response: "should not be called"}
	cfg := &WorkerConfig{
		Search: &fakeSearcher{},
		LLM:    llm,
	}

	assert.Empty(t, companyContext(context.Background(), cfg, ""))
	assert.Empty(t, llm.prompts)
}
