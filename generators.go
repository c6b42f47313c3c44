package main

import (
	"context"
	"fmt"
)

// The prompted generators: each one pairs a fixed instruction template with
// its substitutions and delegates to the text-generation provider. No
// retries, no post-processing; the caller decides what a failure means.

func GenerateCoverLetter(ctx context.Context, llm TextGenerator, resume, jobDesc string) (string, error) {
	out, err := llm.Generate(ctx, coverLetterPrompt(resume, jobDesc))
	if err != nil {
		return "", fmt.Errorf("cover letter: %w", err)
	}
	return out, nil
}

func GenerateColdEmail(ctx context.Context, llm TextGenerator, resume, jobDesc, companyInfo, recipient string) (string, error) {
	if recipient == "" {
		recipient = "Hiring Manager"
	}
	out, err := llm.Generate(ctx, coldEmailPrompt(resume, jobDesc, companyInfo, recipient))
	if err != nil {
		return "", fmt.Errorf("cold email: %w", err)
	}
	return out, nil
}

func GenerateInterviewQuestion(ctx context.Context, llm TextGenerator, jobDesc string, missingSkills []string) (string, error) {
	out, err := llm.Generate(ctx, interviewQuestionPrompt(jobDesc, joinSkills(missingSkills)))
	if err != nil {
		return "", fmt.Errorf("interview question: %w", err)
	}
	return out, nil
}

func EvaluateInterviewAnswer(ctx context.Context, llm TextGenerator, question, answer string) (string, error) {
	out, err := llm.Generate(ctx, evaluateAnswerPrompt(question, answer))
	if err != nil {
		return "", fmt.Errorf("answer evaluation: %w", err)
	}
	return out, nil
}

// GenerateCompanyInsight is the fallback when web search comes back empty:
// the model answers from its own training data, with a disclaimer.
func GenerateCompanyInsight(ctx context.Context, llm TextGenerator, companyName string) (string, error) {
	out, err := llm.Generate(ctx, companyInsightPrompt(companyName))
	if err != nil {
		return "", fmt.Errorf("company insight: %w", err)
	}
	return out, nil
}

func GenerateLearningPlan(ctx context.Context, llm TextGenerator, missingSkills []string) (string, error) {
	out, err := llm.Generate(ctx, learningPlanPrompt(joinSkills(missingSkills)))
	if err != nil {
		return "", fmt.Errorf("learning plan: %w", err)
	}
	return out, nil
}

func RewriteSummary(ctx context.Context, llm TextGenerator, resume, jobDesc, companyName string) (string, error) {
	out, err := llm.Generate(ctx, rewritePrompt(resume, jobDesc, companyName))
	if err != nil {
		return "", fmt.Errorf("summary rewrite: %w", err)
	}
	return out, nil
}
