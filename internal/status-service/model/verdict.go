package model

import "time"

type Verdict string

const (
	VerdictUp   Verdict = "UP"
	VerdictDown Verdict = "DOWN"
)

func (v Verdict) String() string {
	return string(v)
}

// Evaluation is a verdict together with the counts it was derived from.
type Evaluation struct {
	Target      string    `json:"target,omitempty"`
	From        string    `json:"from,omitempty"`
	Until       string    `json:"until,omitempty"`
	Status      Verdict   `json:"status"`
	UpCount     int       `json:"up_count"`
	TotalCount  int       `json:"total_count"`
	UpRatio     float64   `json:"up_ratio"`
	Cached      bool      `json:"cached"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

type VerdictEvent struct {
	EventID        string    `json:"event_id"`
	Target         string    `json:"target"`
	Status         Verdict   `json:"status"`
	PreviousStatus Verdict   `json:"previous_status,omitempty"`
	UpCount        int       `json:"up_count"`
	TotalCount     int       `json:"total_count"`
	UpRatio        float64   `json:"up_ratio"`
	EvaluatedAt    time.Time `json:"evaluated_at"`
}

type Target struct {
	Name  string
	From  string
	Until string
}
