package models

type Fit string

const (
	FitHigh   Fit = "high"
	FitMedium Fit = "medium"
	FitLow    Fit = "low"
)

type Evaluation struct {
	Score          float64  `json:"score"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Recommendation string   `json:"recommendation"`
	Fit            Fit      `json:"fit"`
}

// PlaceholderEvaluation is attached to completed calls the scheduling
// vendor returned without any assessment.
func PlaceholderEvaluation() *Evaluation {
	return &Evaluation{
		Score:          0,
		Strengths:      []string{},
		Weaknesses:     []string{},
		Recommendation: "",
		Fit:            FitMedium,
	}
}

// IsPlaceholder reports whether e means "no evaluation yet".
func (e *Evaluation) IsPlaceholder() bool {
	if e == nil {
		return true
	}
	return e.Score == 0 &&
		len(e.Strengths) == 0 &&
		len(e.Weaknesses) == 0 &&
		e.Recommendation == "" &&
		e.Fit == FitMedium
}
