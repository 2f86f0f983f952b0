package models

type GenerateRequest struct {
	JobDescription string `json:"jobDescription" validate:"required"`
}

type GenerateResponse struct {
	Content GeneratedContent `json:"content"`
	Source  string           `json:"source"`
	Notice  string           `json:"notice,omitempty"`
}

// RequisitionFields carries the free-text fields of a draft. Nil pointers are left untouched.
type RequisitionFields struct {
	CandidateName  *string `json:"candidateName"`
	CandidatePhone *string `json:"candidatePhone"`
	JobDescription *string `json:"jobDescription"`
	FirstMessage   *string `json:"firstMessage"`
}

type SkillRequest struct {
	Skill string `json:"skill" validate:"required"`
}

type QuestionRequest struct {
	Text string `json:"text" validate:"required"`
}

type DraftResponse struct {
	Draft  *Draft `json:"draft"`
	Notice string `json:"notice,omitempty"`
}

type UploadResponse struct {
	Draft    *Draft                 `json:"draft"`
	Document JobDescriptionDocument `json:"document"`
}

type DispatchResponse struct {
	CallID  string `json:"callId"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Draft   *Draft `json:"draft"`
}

type CallListResponse struct {
	State string       `json:"state"`
	Calls []CallRecord `json:"calls"`
	Total int          `json:"total"`
}

// Call log view states.
const (
	CallLogReady = "ready"
	CallLogEmpty = "empty"
	CallLogError = "error"
)
