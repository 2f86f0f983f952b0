package models

import (
	"time"

	"github.com/google/uuid"
)

type Requisition struct {
	CandidateName   string   `json:"candidateName" validate:"required"`
	CandidatePhone  string   `json:"candidatePhone" validate:"required"`
	JobDescription  string   `json:"jobDescription" validate:"required"`
	MandatorySkills []string `json:"mandatorySkills"`
	GoodToHave      []string `json:"goodToHave"`
	Questions       []string `json:"questions"`
	FirstMessage    string   `json:"firstMessage"`
}

// Clone returns a copy whose slices do not share backing arrays with r.
func (r Requisition) Clone() Requisition {
	out := r
	out.MandatorySkills = cloneStrings(r.MandatorySkills)
	out.GoodToHave = cloneStrings(r.GoodToHave)
	out.Questions = cloneStrings(r.Questions)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

type GeneratedContent struct {
	MandatorySkills []string `json:"mandatorySkills"`
	GoodToHave      []string `json:"goodToHave"`
	Questions       []string `json:"questions"`
}

type DraftOperation string

const (
	OperationNone     DraftOperation = ""
	OperationGenerate DraftOperation = "generate"
	OperationDispatch DraftOperation = "dispatch"
)

// Draft is one editing session of a requisition.
type Draft struct {
	ID          uuid.UUID      `json:"id"`
	Version     uint64         `json:"version"`
	Requisition Requisition    `json:"requisition"`
	Pending     DraftOperation `json:"pending,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
