package response

import "time"

type ClassifyResponse struct {
	Status     string  `json:"status"`
	UpCount    int     `json:"up_count"`
	TotalCount int     `json:"total_count"`
	UpRatio    float64 `json:"up_ratio"`
}

type EvaluationResponse struct {
	Target      string    `json:"target"`
	From        string    `json:"from"`
	Until       string    `json:"until"`
	Status      string    `json:"status"`
	UpCount     int       `json:"up_count"`
	TotalCount  int       `json:"total_count"`
	UpRatio     float64   `json:"up_ratio"`
	Cached      bool      `json:"cached"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}
