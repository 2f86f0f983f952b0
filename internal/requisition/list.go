// Package requisition holds the editing model of a job requisition: pure
// operations over its skill and question lists, and an Editor that applies
// them as explicit state transitions.
package requisition

import (
	"errors"
	"strings"
)

var ErrQuestionIndexOutOfRange = errors.New("question index out of range")

// AddSkill appends the trimmed candidate when it is non-empty and not already
// in list. Otherwise list is returned unchanged.
func AddSkill(list []string, candidate string) []string {
	skill := strings.TrimSpace(candidate)
	if skill == "" || contains(list, skill) {
		return list
	}
	return appendCopy(list, skill)
}

// RemoveSkill drops every entry equal to target.
func RemoveSkill(list []string, target string) []string {
	return without(list, target)
}

// AddQuestion appends the trimmed text when it is non-empty. Duplicate
// questions are allowed.
func AddQuestion(list []string, text string) []string {
	question := strings.TrimSpace(text)
	if question == "" {
		return list
	}
	return appendCopy(list, question)
}

// RemoveQuestion drops every entry equal to target.
func RemoveQuestion(list []string, target string) []string {
	return without(list, target)
}

// UpdateQuestion replaces the entry at index with text.
func UpdateQuestion(list []string, index int, text string) ([]string, error) {
	if index < 0 || index >= len(list) {
		return list, ErrQuestionIndexOutOfRange
	}
	out := make([]string, len(list))
	copy(out, list)
	out[index] = text
	return out, nil
}

// NormalizeSkills folds list through AddSkill, dropping blanks and duplicates
// while keeping first-seen order.
func NormalizeSkills(list []string) []string {
	out := []string{}
	for _, s := range list {
		out = AddSkill(out, s)
	}
	return out
}

func contains(list []string, value string) bool {
	for _, s := range list {
		if s == value {
			return true
		}
	}
	return false
}

func appendCopy(list []string, value string) []string {
	out := make([]string, len(list), len(list)+1)
	copy(out, list)
	return append(out, value)
}

func without(list []string, target string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s != target {
			out = append(out, s)
		}
	}
	return out
}
