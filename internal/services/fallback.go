package services

import (
	"strings"

	"github.com/Anujnegi157/evalease-screens/internal/models"
	"github.com/Anujnegi157/evalease-screens/internal/requisition"
)

type keywordSkill struct {
	keywords []string
	skill    string
}

type questionCategory struct {
	name      string
	keywords  []string
	questions []string
}

var mandatorySkillKeywords = []keywordSkill{
	{[]string{"react"}, "React.js experience"},
	// "ts" alone matches nearly any text, so only the full word counts.
	{[]string{"typescript"}, "TypeScript proficiency"},
	{[]string{"api"}, "API integration experience"},
	{[]string{"test"}, "Testing methodologies"},
	{[]string{"manage"}, "Team management experience"},
	{[]string{"customer"}, "Customer service skills"},
	{[]string{"sales"}, "Sales and negotiation skills"},
	{[]string{"data"}, "Data analysis skills"},
	{[]string{"marketing"}, "Marketing strategy experience"},
}

var genericMandatorySkills = []string{
	"Communication skills",
	"Problem-solving abilities",
	"Team collaboration",
	"Time management",
	"Attention to detail",
}

var goodToHaveKeywords = []keywordSkill{
	{[]string{"graphql"}, "GraphQL experience"},
	{[]string{"aws", "cloud"}, "AWS or cloud services"},
	{[]string{"ci/cd", "pipeline"}, "CI/CD experience"},
	{[]string{"docker", "kubernetes"}, "Containerization experience"},
	{[]string{"crm", "salesforce"}, "CRM tools experience"},
	{[]string{"sql"}, "SQL knowledge"},
}

var genericGoodToHave = []string{
	"Open-source contributions",
	"Mobile development experience",
	"UX/UI design knowledge",
	"Project management experience",
}

var questionCategories = []questionCategory{
	{
		name:     "software",
		keywords: []string{"react", "typescript", "developer", "engineer", "software", "api", "programming"},
		questions: []string{
			"Can you describe your experience with the frameworks and languages listed in this role?",
			"How do you ensure code quality in your projects?",
			"Describe a challenging technical problem you solved and how you approached it.",
		},
	},
	{
		name:     "sales",
		keywords: []string{"sales", "revenue", "quota", "deal"},
		questions: []string{
			"Can you walk me through your sales process from prospecting to closing?",
			"Tell me about a time you exceeded your sales target. What did you do differently?",
		},
	},
	{
		name:     "marketing",
		keywords: []string{"marketing", "campaign", "brand", "seo"},
		questions: []string{
			"Describe a marketing campaign you led and how you measured its success.",
			"How do you decide which channels to invest in for a new campaign?",
		},
	},
	{
		name:     "management",
		keywords: []string{"manage", "leadership", "lead a team", "supervis"},
		questions: []string{
			"How many people have you managed, and how would you describe your leadership style?",
			"Tell me about a time you handled a conflict within your team.",
		},
	},
	{
		name:     "customer-support",
		keywords: []string{"customer", "support", "client service"},
		questions: []string{
			"Describe a time you turned an unhappy customer into a satisfied one.",
			"How do you prioritize when several customers need help at the same time?",
		},
	},
}

var genericQuestions = []string{
	"What interests you about this role?",
	"Describe a challenging project you worked on and how you handled the problems you encountered.",
	"How do you approach learning new skills? Please give an example.",
	"How do you prioritize your work when you have multiple deadlines?",
	"Tell me about a time you worked closely with a team to reach a goal.",
	"Where do you see yourself professionally in the next few years?",
	"What are your salary expectations for this position?",
}

const (
	minMandatorySkills = 5
	maxMandatorySkills = 6
	minGoodToHave      = 3
	maxGoodToHave      = 4
	minQuestions       = 7
	maxQuestions       = 8
)

// FallbackExtractor derives skills and questions from a job description with
// fixed keyword tables. The output depends only on the input text.
type FallbackExtractor struct{}

func NewFallbackExtractor() *FallbackExtractor {
	return &FallbackExtractor{}
}

func (f *FallbackExtractor) Extract(jobDescription string) models.GeneratedContent {
	text := strings.ToLower(jobDescription)
	return models.GeneratedContent{
		MandatorySkills: f.mandatorySkills(text),
		GoodToHave:      f.goodToHave(text),
		Questions:       f.questions(text),
	}
}

func (f *FallbackExtractor) mandatorySkills(text string) []string {
	skills := matchSkills(text, mandatorySkillKeywords, maxMandatorySkills)
	return pad(skills, genericMandatorySkills, minMandatorySkills, requisition.AddSkill)
}

func (f *FallbackExtractor) goodToHave(text string) []string {
	skills := matchSkills(text, goodToHaveKeywords, maxGoodToHave)
	return pad(skills, genericGoodToHave, minGoodToHave, requisition.AddSkill)
}

func (f *FallbackExtractor) questions(text string) []string {
	questions := []string{}
	for _, category := range questionCategories {
		if !containsAny(text, category.keywords) {
			continue
		}
		for _, q := range category.questions {
			if len(questions) == maxQuestions {
				return questions
			}
			questions = requisition.AddQuestion(questions, q)
		}
	}
	return pad(questions, genericQuestions, minQuestions, requisition.AddQuestion)
}

func matchSkills(text string, table []keywordSkill, limit int) []string {
	skills := []string{}
	for _, entry := range table {
		if len(skills) == limit {
			break
		}
		if containsAny(text, entry.keywords) {
			skills = requisition.AddSkill(skills, entry.skill)
		}
	}
	return skills
}

func pad(list, filler []string, min int, add func([]string, string) []string) []string {
	for _, item := range filler {
		if len(list) >= min {
			break
		}
		if contains(list, item) {
			continue
		}
		list = add(list, item)
	}
	return list
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func contains(list []string, value string) bool {
	for _, s := range list {
		if s == value {
			return true
		}
	}
	return false
}
