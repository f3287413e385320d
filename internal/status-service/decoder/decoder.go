// Package decoder turns loosely typed JSON data points into model.DataPoint values.
//
// Three shapes are accepted:
//
//	[[0, 1234567890], [1, 1234567950]]
//	{"datapoints": [[0, 1234567890]]}
//	[{"target": "host.ping", "datapoints": [[0, 1234567890]]}]
//
// The last one is graphite's render output; datapoints of every series are concatenated.
package decoder

import (
	apperrors "VCS_Status_Microservice/internal/status-service/errors"
	"VCS_Status_Microservice/internal/status-service/model"
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

type wrapper struct {
	Target     string            `json:"target,omitempty"`
	Datapoints []json.RawMessage `json:"datapoints"`
}

func DecodeBatch(data []byte) ([]model.DataPoint, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("decoder.DecodeBatch: empty input: %w", apperrors.ErrMalformedBatch)
	}
	switch data[0] {
	case '{':
		var w wrapper
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("decoder.DecodeBatch: %v: %w", err, apperrors.ErrMalformedBatch)
		}
		return decodePoints(w.Datapoints)
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("decoder.DecodeBatch: %v: %w", err, apperrors.ErrMalformedBatch)
		}
		if len(items) > 0 && firstByte(items[0]) == '{' {
			return decodeSeries(items)
		}
		return decodePoints(items)
	default:
		return nil, fmt.Errorf("decoder.DecodeBatch: expected JSON array or object: %w", apperrors.ErrMalformedBatch)
	}
}

func decodeSeries(items []json.RawMessage) ([]model.DataPoint, error) {
	var batch []model.DataPoint
	for i, item := range items {
		var w wrapper
		if err := json.Unmarshal(item, &w); err != nil {
			return nil, fmt.Errorf("decoder.decodeSeries: series %d: %v: %w", i, err, apperrors.ErrMalformedBatch)
		}
		points, err := decodePoints(w.Datapoints)
		if err != nil {
			return nil, fmt.Errorf("decoder.decodeSeries: series %d: %w", i, err)
		}
		batch = append(batch, points...)
	}
	if batch == nil {
		batch = []model.DataPoint{}
	}
	return batch, nil
}

func decodePoints(items []json.RawMessage) ([]model.DataPoint, error) {
	batch := make([]model.DataPoint, 0, len(items))
	for i, item := range items {
		p, err := DecodePoint(item)
		if err != nil {
			return nil, fmt.Errorf("decoder.decodePoints: index %d: %w", i, err)
		}
		batch = append(batch, p)
	}
	return batch, nil
}

// DecodePoint decodes a single [value, timestamp] pair. A null value becomes
// model.StatusCodeMissing and non integral values are rounded away from zero so that
// anything non zero stays down.
func DecodePoint(raw json.RawMessage) (model.DataPoint, error) {
	var pair []interface{}
	if err := json.Unmarshal(raw, &pair); err != nil {
		return model.DataPoint{}, fmt.Errorf("%s is not an array: %w", raw, apperrors.ErrMalformedDataPoint)
	}
	if len(pair) != 2 {
		return model.DataPoint{}, fmt.Errorf("expected 2 elements, got %d: %w", len(pair), apperrors.ErrMalformedDataPoint)
	}
	var p model.DataPoint
	switch v := pair[0].(type) {
	case nil:
		p.StatusCode = model.StatusCodeMissing
	case float64:
		p.StatusCode = toStatusCode(v)
	default:
		return model.DataPoint{}, fmt.Errorf("status code %v is not numeric: %w", v, apperrors.ErrMalformedDataPoint)
	}
	switch v := pair[1].(type) {
	case nil:
	case float64:
		p.Timestamp = int64(v)
	default:
		return model.DataPoint{}, fmt.Errorf("timestamp %v is not numeric: %w", v, apperrors.ErrMalformedDataPoint)
	}
	return p, nil
}

func toStatusCode(v float64) int {
	switch {
	case v == 0:
		return model.StatusCodeUp
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	case v > 0:
		return int(math.Ceil(v))
	default:
		return int(math.Floor(v))
	}
}

func firstByte(raw json.RawMessage) byte {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	return raw[0]
}
