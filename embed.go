package main

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Embedder maps text to a fixed-length vector. The narrow interface exists so
// tests can run the scoring pipeline against a fake without network calls.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

const defaultEmbeddingModel = "gemini-embedding-001"

// GeminiEmbedder embeds text through the Gemini embedContent API.
type GeminiEmbedder struct {
	Client *genai.Client
	Model  string
}

func NewGeminiEmbedder(client *genai.Client, model string) *GeminiEmbedder {
	if model == "" {
		model = defaultEmbeddingModel
	}
	return &GeminiEmbedder{Client: client, Model: model}
}

func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	res, err := e.Client.Models.EmbedContent(ctx, e.Model, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}
	if len(res.Embeddings) == 0 || len(res.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}
	return res.Embeddings[0].Values, nil
}
