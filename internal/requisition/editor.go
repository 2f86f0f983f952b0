package requisition

import (
	"fmt"
	"slices"

	"github.com/Anujnegi157/evalease-screens/internal/models"
)

type EventType string

const (
	EventFieldChanged    EventType = "field_changed"
	EventSkillAdded      EventType = "skill_added"
	EventSkillRemoved    EventType = "skill_removed"
	EventQuestionAdded   EventType = "question_added"
	EventQuestionRemoved EventType = "question_removed"
	EventQuestionUpdated EventType = "question_updated"
	EventGenerated       EventType = "generated"
	EventReset           EventType = "reset"
)

type Field string

const (
	FieldCandidateName  Field = "candidateName"
	FieldCandidatePhone Field = "candidatePhone"
	FieldJobDescription Field = "jobDescription"
	FieldFirstMessage   Field = "firstMessage"
)

type SkillList string

const (
	MandatorySkills SkillList = "mandatory"
	GoodToHave      SkillList = "good-to-have"
)

func ParseSkillList(s string) (SkillList, error) {
	switch SkillList(s) {
	case MandatorySkills, GoodToHave:
		return SkillList(s), nil
	}
	return "", fmt.Errorf("unknown skill list %q", s)
}

// Event is a single user or system action on a requisition. Only the fields
// relevant to Type are read.
type Event struct {
	Type    EventType
	Field   Field
	List    SkillList
	Value   string
	Index   int
	Content *models.GeneratedContent
}

// Listener is called after an event changed the requisition.
type Listener func(prev, next models.Requisition, ev Event)

// Editor holds the requisition under construction. It is not safe for
// concurrent use.
type Editor struct {
	state     models.Requisition
	required  []RequiredQuestion
	listeners []Listener
}

func NewEditor(initial models.Requisition) *Editor {
	return &Editor{
		state:    initial.Clone(),
		required: DefaultRequiredQuestions,
	}
}

func (e *Editor) OnChange(l Listener) {
	e.listeners = append(e.listeners, l)
}

// State returns a copy of the current requisition.
func (e *Editor) State() models.Requisition {
	return e.state.Clone()
}

// Apply computes the next state for ev and makes it current. Listeners run
// only when something changed.
func (e *Editor) Apply(ev Event) (models.Requisition, error) {
	prev := e.state
	next, err := e.reduce(prev, ev)
	if err != nil {
		return prev.Clone(), err
	}

	if equal(prev, next) {
		return next.Clone(), nil
	}

	e.state = next
	for _, l := range e.listeners {
		l(prev.Clone(), next.Clone(), ev)
	}
	return next.Clone(), nil
}

func (e *Editor) reduce(r models.Requisition, ev Event) (models.Requisition, error) {
	switch ev.Type {
	case EventFieldChanged:
		switch ev.Field {
		case FieldCandidateName:
			r.CandidateName = ev.Value
		case FieldCandidatePhone:
			r.CandidatePhone = ev.Value
		case FieldJobDescription:
			r.JobDescription = ev.Value
		case FieldFirstMessage:
			r.FirstMessage = ev.Value
		default:
			return r, fmt.Errorf("unknown field %q", ev.Field)
		}

	case EventSkillAdded, EventSkillRemoved:
		op := AddSkill
		if ev.Type == EventSkillRemoved {
			op = RemoveSkill
		}
		switch ev.List {
		case MandatorySkills:
			r.MandatorySkills = op(r.MandatorySkills, ev.Value)
		case GoodToHave:
			r.GoodToHave = op(r.GoodToHave, ev.Value)
		default:
			return r, fmt.Errorf("unknown skill list %q", ev.List)
		}

	case EventQuestionAdded:
		r.Questions = AddQuestion(r.Questions, ev.Value)

	case EventQuestionRemoved:
		r.Questions = RemoveQuestion(r.Questions, ev.Value)

	case EventQuestionUpdated:
		questions, err := UpdateQuestion(r.Questions, ev.Index, ev.Value)
		if err != nil {
			return r, err
		}
		r.Questions = questions

	case EventGenerated:
		if ev.Content == nil {
			return r, fmt.Errorf("generated event without content")
		}
		r.MandatorySkills = NormalizeSkills(ev.Content.MandatorySkills)
		r.GoodToHave = NormalizeSkills(ev.Content.GoodToHave)
		questions := []string{}
		for _, q := range ev.Content.Questions {
			questions = AddQuestion(questions, q)
		}
		r.Questions = EnsureRequiredQuestions(questions, e.required)

	case EventReset:
		r = models.Requisition{}

	default:
		return r, fmt.Errorf("unknown event %q", ev.Type)
	}

	return r, nil
}

func equal(a, b models.Requisition) bool {
	return a.CandidateName == b.CandidateName &&
		a.CandidatePhone == b.CandidatePhone &&
		a.JobDescription == b.JobDescription &&
		a.FirstMessage == b.FirstMessage &&
		slices.Equal(a.MandatorySkills, b.MandatorySkills) &&
		slices.Equal(a.GoodToHave, b.GoodToHave) &&
		slices.Equal(a.Questions, b.Questions)
}
