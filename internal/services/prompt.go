package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct {
	agentName string
	company   string
}

func NewPromptBuilder(agentName, company string) *PromptBuilder {
	return &PromptBuilder{
		agentName: agentName,
		company:   company,
	}
}

// BuildGenerationSystemPrompt is the system message for skill and question generation.
func (pb *PromptBuilder) BuildGenerationSystemPrompt() string {
	return "You are an HR assistant that analyzes job descriptions to extract key information. " +
		"You always answer with a single JSON object and nothing else."
}

// BuildGenerationPrompt asks for skills and a screening questionnaire for a job description.
func (pb *PromptBuilder) BuildGenerationPrompt(jobDescription string) string {
	return fmt.Sprintf(`Please analyze this job description and provide the following:
1. A list of 5-6 mandatory skills required for this position
2. A list of 3-4 good to have skills
3. A questionnaire with 7-8 relevant screening questions to ask candidates over the phone

Format your response as JSON with the following structure:
{
  "mandatorySkills": ["skill1", "skill2", "skill3", "skill4", "skill5"],
  "goodToHave": ["skill1", "skill2", "skill3"],
  "questionnaire": ["Question 1?", "Question 2?", "Question 3?", "Question 4?", "Question 5?", "Question 6?", "Question 7?"]
}

Job Description:
%s`, strings.TrimSpace(jobDescription))
}

// BuildSystemInstruction is the voice agent's system message for a screening call.
func (pb *PromptBuilder) BuildSystemInstruction(candidateName, jobDescription string, mandatory, goodToHave, questions []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are %s, a friendly and professional AI recruiter at %s conducting a phone screening with %s.\n\n",
		pb.agentName, pb.company, candidateName)

	sb.WriteString("JOB DESCRIPTION:\n")
	sb.WriteString(strings.TrimSpace(jobDescription))
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "MANDATORY SKILLS: %s\n", joinOrNone(mandatory))
	fmt.Fprintf(&sb, "GOOD TO HAVE SKILLS: %s\n\n", joinOrNone(goodToHave))

	sb.WriteString("QUESTIONS (ask in this order, one at a time, and wait for the answer):\n")
	for i, q := range questions {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, q)
	}

	sb.WriteString("\nCall flow: Introduction -> Skills & Experience -> Notice Period -> Wrap-up. ")
	sb.WriteString("Probe briefly on the mandatory skills. Keep answers short and do not share any evaluation with the candidate.")

	return sb.String()
}

// BuildFirstMessage is the agent's opening line when the requisition has none.
func (pb *PromptBuilder) BuildFirstMessage(candidateName string) string {
	return fmt.Sprintf("Hello %s, this is %s calling from %s about the position you applied for. Do you have a few minutes for a quick screening call?",
		candidateName, pb.agentName, pb.company)
}

// BuildClosingMessage is spoken when the agent ends the call.
func (pb *PromptBuilder) BuildClosingMessage(candidateName string) string {
	return fmt.Sprintf("Thank you for your time, %s. Our team will review this conversation and get back to you about the next steps. Have a great day!",
		candidateName)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None specified"
	}
	return strings.Join(items, ", ")
}
