package models

type MonthlyCalls struct {
	Month string `json:"month"`
	Calls int    `json:"calls"`
}

type ScoreBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type Analytics struct {
	TotalCalls             int            `json:"totalCalls"`
	Completed              int            `json:"completed"`
	Scheduled              int            `json:"scheduled"`
	Missed                 int            `json:"missed"`
	Candidates             int            `json:"candidates"`
	AverageDurationMinutes float64        `json:"averageDurationMinutes"`
	Monthly                []MonthlyCalls `json:"monthly"`
	ScoreDistribution      []ScoreBucket  `json:"scoreDistribution"`
}
