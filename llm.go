package main

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// TextGenerator is the single seam to the text-generation provider: prompt
// in, text out. Fakes implement it in tests.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Transcriber turns recorded audio into a transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mime string) (string, error)
}

const defaultModel = "gemini-2.5-flash"

// GeminiGenerator calls the Gemini API with a fixed model and temperature.
type GeminiGenerator struct {
	Client      *genai.Client
	Model       string
	Temperature float32
}

func NewGeminiGenerator(client *genai.Client, model string, temperature float32) *GeminiGenerator {
	if model == "" {
		model = defaultModel
	}
	return &GeminiGenerator{Client: client, Model: model, Temperature: temperature}
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.Client.Models.GenerateContent(ctx, g.Model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	out := resp.Text()
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("empty model response")
	}
	return out, nil
}

// Transcribe submits the audio bytes inline, no temp file on disk.
func (g *GeminiGenerator) Transcribe(ctx context.Context, audio []byte, mime string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("empty audio payload")
	}
	if mime == "" {
		mime = "audio/wav"
	}
	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText("Transcribe this recording verbatim. Return only the transcript text."),
		genai.NewPartFromBytes(audio, mime),
	}, genai.RoleUser)
	resp, err := g.Client.Models.GenerateContent(ctx, g.Model, []*genai.Content{content}, nil)
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}
	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return "", fmt.Errorf("empty transcription response")
	}
	return out, nil
}
