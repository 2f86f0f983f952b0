package models

// JobDescriptionDocument describes a PDF whose text became a draft's job description.
type JobDescriptionDocument struct {
	Filename         string `json:"filename"`
	OriginalFileName string `json:"original_filename"`
	PageCount        int    `json:"page_count"`
	Characters       int    `json:"characters"`
}
