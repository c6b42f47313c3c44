package main

import (
	"fmt"
	"strings"
)

// Reviewer personas and the instruction each one biases the analysis with.
var personaInstructions = map[string]string{
	"HR Recruiter":    "Focus on culture fit, soft skills, and red flags.",
	"Senior Engineer": "Focus strictly on technical depth, stack alignment, and complexity.",
	"CTO":             "Focus on business value, ROI, and leadership potential.",
}

const defaultPersona = "HR Recruiter"

// analysisInstruction is the system instruction for the persona analysis agent.
// The resume and job description arrive as the user message.
func analysisInstruction(persona string) string {
	instructions, ok := personaInstructions[persona]
	if !ok {
		instructions = "General analysis."
	}
	return fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) and Career Coach.
Role: %s. Instructions: %s

Task:
1. Analyze the semantic match between the resume and the job description.
2. Identify 3 missing Hard Skills & 3 Soft Skills.
3. Provide a "Tone Analysis".
4. Give a "Hiring Probability" score (0-100%%).

Output strictly in Markdown.
Base all reasoning only on the provided text.
Do not make up data or assume experience not explicitly mentioned.`, persona, instructions)
}

func skillsPrompt(resume, jobDesc string) string {
	return fmt.Sprintf(`Extract skills. Return strictly JSON with keys: "present_skills" (list) and "missing_skills" (list).
No markdown formatting.
Resume: %s
JD: %s`, resume, jobDesc)
}

func keywordsPrompt(resume, jobDesc string) string {
	return fmt.Sprintf(`Identify the top 15 technical keywords or hard skills from the JD that are ALSO present in the Resume.
Return ONLY a comma-separated list of words.
Example Output: Python, SQL, AWS, Docker

Resume: %s
JD: %s`, resume, jobDesc)
}

func coverLetterPrompt(resume, jobDesc string) string {
	return fmt.Sprintf("Write a professional cover letter. Resume: %s. JD: %s", resume, jobDesc)
}

func coldEmailPrompt(resume, jobDesc, companyInfo, recipient string) string {
	return fmt.Sprintf(`Write a high-converting Cold Email (max 150 words) to a %s.

Context:
- Candidate Resume Summary: %s
- Job Requirements: %s
- Company News/Values: %s

Goal: Persuade them to accept a coffee chat or look at the application.
Tone: Professional, concise, not desperate. Mention one specific alignment with their company news if relevant.`,
		recipient, truncate(resume, 1000), truncate(jobDesc, 500), companyInfo)
}

func interviewQuestionPrompt(jobDesc, missingSkills string) string {
	return fmt.Sprintf("Ask ONE hard technical interview question based on these missing skills: %s. Job: %s.", missingSkills, jobDesc)
}

func evaluateAnswerPrompt(question, userAnswer string) string {
	return fmt.Sprintf("Grade this answer (0-10) and explain why. Question: %s. Answer: %s.", question, userAnswer)
}

func companyInsightPrompt(companyName string) string {
	return fmt.Sprintf(`You are a business intelligence analyst.
The user is applying to: %s.

Since live web search is unavailable, use your internal training data to provide:
1. The company's likely Mission/Values.
2. Their core Products or Services.
3. The typical Tech Stack or technologies they use (if known).

Format clearly with Markdown headers.
Disclaimer: State that this is based on internal knowledge.`, companyName)
}

func learningPlanPrompt(missingSkills string) string {
	return fmt.Sprintf(`The candidate is missing these skills: %s.

Task:
1. Suggest ONE concrete "Weekend Project" idea that combines these specific skills.
2. For each skill, provide a 1-sentence learning tip.

Output in Markdown.`, missingSkills)
}

func rewritePrompt(resume, jobDesc, companyName string) string {
	return fmt.Sprintf("Rewrite resume summary for %s job: %s... Original: %s",
		companyName, truncate(jobDesc, 300), truncate(resume, 500))
}

// truncate caps s at max bytes. Resume text is ASCII after cleaning, so a
// byte cut never splits a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func joinSkills(skills []string) string {
	if len(skills) == 0 {
		return "general gaps"
	}
	return strings.Join(skills, ", ")
}
