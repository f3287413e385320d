package classifier

import (
	"VCS_Status_Microservice/internal/status-service/model"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildBatch(up int, down int, timestamp int64) []model.DataPoint {
	batch := make([]model.DataPoint, 0, up+down)
	for i := 0; i < up; i++ {
		batch = append(batch, model.DataPoint{StatusCode: 0, Timestamp: timestamp})
	}
	for i := 0; i < down; i++ {
		batch = append(batch, model.DataPoint{StatusCode: 1, Timestamp: timestamp})
	}
	return batch
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		batch    []model.DataPoint
		expected model.Verdict
	}{
		{
			name:     "Empty batch is DOWN",
			batch:    []model.DataPoint{},
			expected: model.VerdictDown,
		},
		{
			name:     "Nil batch is DOWN",
			batch:    nil,
			expected: model.VerdictDown,
		},
		{
			name:     "All up is UP",
			batch:    buildBatch(100, 0, 1234567890),
			expected: model.VerdictUp,
		},
		{
			name:     "70 percent up is UP",
			batch:    buildBatch(70, 30, 1234567890),
			expected: model.VerdictUp,
		},
		{
			name:     "60 percent up is DOWN",
			batch:    buildBatch(60, 40, 1234567890),
			expected: model.VerdictDown,
		},
		{
			name:     "67 percent up is DOWN",
			batch:    buildBatch(67, 33, 1234567890),
			expected: model.VerdictDown,
		},
		{
			name:     "69 percent up is DOWN",
			batch:    buildBatch(69, 31, 1234567890),
			expected: model.VerdictDown,
		},
		{
			name:     "7 of 10 up is UP",
			batch:    buildBatch(7, 3, 0),
			expected: model.VerdictUp,
		},
		{
			name:     "All down is DOWN",
			batch:    buildBatch(0, 10, 0),
			expected: model.VerdictDown,
		},
		{
			name:     "Single up point is UP",
			batch:    buildBatch(1, 0, 0),
			expected: model.VerdictUp,
		},
		{
			name: "Any non zero status code is down",
			batch: []model.DataPoint{
				{StatusCode: 0}, {StatusCode: 2}, {StatusCode: -1}, {StatusCode: 100},
			},
			expected: model.VerdictDown,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.batch))
		})
	}
}

func TestClassify_IgnoresTimestamps(t *testing.T) {
	a := buildBatch(70, 30, 0)
	b := buildBatch(70, 30, 0)
	for i := range b {
		b[i].Timestamp = int64(i * 1000)
	}
	assert.Equal(t, Classify(a), Classify(b))
}

func TestClassify_OrderIndependent(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, counts := range [][2]int{{70, 30}, {60, 40}, {67, 33}, {1, 0}, {0, 1}} {
		batch := buildBatch(counts[0], counts[1], 1234567890)
		expected := Classify(batch)
		for i := 0; i < 20; i++ {
			shuffled := append([]model.DataPoint(nil), batch...)
			r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
			assert.Equal(t, expected, Classify(shuffled))
		}
	}
}

func TestClassify_Monotonic(t *testing.T) {
	const size = 50
	for down := size; down > 0; down-- {
		before := Classify(buildBatch(size-down, down, 0))
		after := Classify(buildBatch(size-down+1, down-1, 0))
		if before == model.VerdictUp {
			assert.Equal(t, model.VerdictUp, after, "flipping a down point to up must not turn UP into DOWN (down=%d)", down)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(buildBatch(3, 1, 0))
	assert.Equal(t, 3, s.Up)
	assert.Equal(t, 4, s.Total)
	assert.InDelta(t, 0.75, s.Ratio, 1e-9)
	assert.Equal(t, model.VerdictUp, s.Verdict)

	empty := Summarize(nil)
	assert.Equal(t, Summary{Verdict: model.VerdictDown}, empty)
}

func TestUpRatio(t *testing.T) {
	assert.Equal(t, 0.0, UpRatio(nil))
	assert.InDelta(t, 0.6, UpRatio(buildBatch(60, 40, 0)), 1e-9)
	assert.Equal(t, 1.0, UpRatio(buildBatch(5, 0, 0)))
}
