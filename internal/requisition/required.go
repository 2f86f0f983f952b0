package requisition

import "strings"

// RequiredQuestion is a phrase every screening script must cover. When no
// question mentions Phrase, Question is inserted.
type RequiredQuestion struct {
	Phrase   string
	Question string
	// Prepend puts the question at the start of the script instead of the end.
	Prepend bool
}

const (
	IntroductionQuestion = "Can you tell me about yourself and your professional background?"
	NoticePeriodQuestion = "What is your current notice period?"
)

// DefaultRequiredQuestions is the call flow's fixed frame: introduction first,
// notice period last.
var DefaultRequiredQuestions = []RequiredQuestion{
	{Phrase: "tell me about yourself", Question: IntroductionQuestion, Prepend: true},
	{Phrase: "notice period", Question: NoticePeriodQuestion},
}

// EnsureRequiredQuestions returns list with the canned question of every
// missing required phrase added. Prepended questions keep table order ahead
// of the existing list; appended ones keep table order after it.
func EnsureRequiredQuestions(list []string, required []RequiredQuestion) []string {
	var head, tail []string
	for _, r := range required {
		if mentions(list, r.Phrase) {
			continue
		}
		if r.Prepend {
			head = append(head, r.Question)
		} else {
			tail = append(tail, r.Question)
		}
	}

	out := make([]string, 0, len(head)+len(list)+len(tail))
	out = append(out, head...)
	out = append(out, list...)
	out = append(out, tail...)
	return out
}

func mentions(list []string, phrase string) bool {
	phrase = strings.ToLower(phrase)
	for _, q := range list {
		if strings.Contains(strings.ToLower(q), phrase) {
			return true
		}
	}
	return false
}
