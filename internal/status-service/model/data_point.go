package model

// StatusCodeUp is the only status code counted as up, every other value is down.
const StatusCodeUp = 0

// StatusCodeMissing marks a sample that arrived without a value (graphite null).
const StatusCodeMissing = -1

type DataPoint struct {
	StatusCode int
	Timestamp  int64
}

func (d DataPoint) IsUp() bool {
	return d.StatusCode == StatusCodeUp
}
