package models

import "time"

type CallStatus string

const (
	CallCompleted CallStatus = "completed"
	CallScheduled CallStatus = "scheduled"
	CallMissed    CallStatus = "missed"
)

func (s CallStatus) Valid() bool {
	switch s {
	case CallCompleted, CallScheduled, CallMissed:
		return true
	}
	return false
}

type CallRecord struct {
	ID              string      `json:"id"`
	CandidateName   string      `json:"candidateName"`
	CandidatePhone  string      `json:"candidatePhone"`
	DateTime        time.Time   `json:"dateTime"`
	Status          CallStatus  `json:"status"`
	DurationMinutes *int        `json:"durationMinutes,omitempty"`
	Evaluation      *Evaluation `json:"evaluation,omitempty"`
}
