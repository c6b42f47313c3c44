package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// topK is how many resume chunks the scorer retrieves per job description.
const topK = 5

// KnowledgeBase holds the embedded chunks of exactly one resume. It lives for
// one analysis; rebuilding replaces it wholesale.
type KnowledgeBase struct {
	chunks  []string
	vectors [][]float32
}

// BuildKnowledgeBase chunks the resume, embeds every chunk and returns a
// queryable index. Empty or whitespace-only text is skipped silently: the
// result is a nil index and no error.
func BuildKnowledgeBase(ctx context.Context, emb Embedder, resumeText string) (*KnowledgeBase, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, nil
	}
	chunks := ChunkText(resumeText, defaultChunkSize)
	kb := &KnowledgeBase{
		chunks:  chunks,
		vectors: make([][]float32, 0, len(chunks)),
	}
	for _, chunk := range chunks {
		vec, err := emb.Embed(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("embedding chunk: %w", err)
		}
		kb.vectors = append(kb.vectors, vec)
	}
	return kb, nil
}

// Len reports how many chunks are indexed.
func (kb *KnowledgeBase) Len() int {
	if kb == nil {
		return 0
	}
	return len(kb.chunks)
}

// Search returns the texts of the k stored chunks with the highest dot
// product against query, descending. Ties keep insertion order.
func (kb *KnowledgeBase) Search(query []float32, k int) []string {
	if kb == nil || k <= 0 || len(kb.chunks) == 0 {
		return nil
	}
	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, len(kb.vectors))
	for i, vec := range kb.vectors {
		scores[i] = scored{idx: i, score: dotProduct(query, vec)}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	if k > len(scores) {
		k = len(scores)
	}
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = kb.chunks[scores[i].idx]
	}
	return out
}

// MatchScore computes the headline similarity score between the indexed
// resume and a job description: embed the JD once, retrieve the top-5 chunks,
// re-embed each retrieved chunk, average the raw dot products and scale by
// 100, truncating to an integer. The dot product is not normalized by vector
// magnitude, so the score is only a true percentage for unit-length
// embeddings. A missing index or empty retrieval scores 0.
func MatchScore(ctx context.Context, emb Embedder, kb *KnowledgeBase, jobDesc string) (int, error) {
	if kb == nil || kb.Len() == 0 {
		return 0, nil
	}
	jdVec, err := emb.Embed(ctx, jobDesc)
	if err != nil {
		return 0, fmt.Errorf("embedding job description: %w", err)
	}
	docs := kb.Search(jdVec, topK)
	if len(docs) == 0 {
		return 0, nil
	}
	var sum float64
	for _, doc := range docs {
		docVec, err := emb.Embed(ctx, doc)
		if err != nil {
			return 0, fmt.Errorf("embedding chunk: %w", err)
		}
		sum += dotProduct(jdVec, docVec)
	}
	mean := sum / float64(len(docs))
	return int(mean * 100), nil
}

func dotProduct(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot
}
