package main

import (
	"context"
	"fmt"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/genai"
)

const analysisModel = "gemini-2.5-pro"

// GetAnalysisAgent builds the profile-analysis agent for one reviewer
// persona. Each persona gets its own agent because the instruction is fixed
// at creation time.
func GetAnalysisAgent(apiKey, agentName, persona string) (agent.Agent, error) {
	ctx := context.Background()
	model, err := gemini.NewModel(ctx, analysisModel, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %v", err)
	}

	personaAgent, err := llmagent.New(llmagent.Config{
		Name:        agentName,
		Model:       model,
		Description: "Analyze a resume against a job description",
		Instruction: analysisInstruction(persona),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %v", err)
	}

	return personaAgent, nil
}
