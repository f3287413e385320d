package service

import (
	apperrors "VCS_Status_Microservice/internal/status-service/errors"
	mockgraphite "VCS_Status_Microservice/internal/status-service/mocks/graphite"
	mockpublisher "VCS_Status_Microservice/internal/status-service/mocks/publisher"
	mockrepository "VCS_Status_Microservice/internal/status-service/mocks/repository"
	"VCS_Status_Microservice/internal/status-service/model"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func points(up int, down int) []model.DataPoint {
	batch := make([]model.DataPoint, 0, up+down)
	for i := 0; i < up; i++ {
		batch = append(batch, model.DataPoint{StatusCode: 0, Timestamp: 1234567890})
	}
	for i := 0; i < down; i++ {
		batch = append(batch, model.DataPoint{StatusCode: 1, Timestamp: 1234567890})
	}
	return batch
}

func newTestService(ctrl *gomock.Controller) (*statusService, *mockgraphite.MockClient, *mockrepository.MockVerdictRepository, *mockpublisher.MockVerdictPublisher) {
	mockClient := mockgraphite.NewMockClient(ctrl)
	mockRepo := mockrepository.NewMockVerdictRepository(ctrl)
	mockPublisher := mockpublisher.NewMockVerdictPublisher(ctrl)
	s := NewStatusService(mockClient, mockRepo, mockPublisher, zap.NewNop(), "-90d", "-30d").(*statusService)
	s.now = func() time.Time { return fixedNow }
	return s, mockClient, mockRepo, mockPublisher
}

func TestStatusService_Classify(t *testing.T) {
	testCases := []struct {
		name     string
		batch    []model.DataPoint
		expected model.Evaluation
	}{
		{
			name:     "Empty batch",
			batch:    nil,
			expected: model.Evaluation{Status: model.VerdictDown, EvaluatedAt: fixedNow},
		},
		{
			name:     "70 percent up",
			batch:    points(70, 30),
			expected: model.Evaluation{Status: model.VerdictUp, UpCount: 70, TotalCount: 100, UpRatio: 0.7, EvaluatedAt: fixedNow},
		},
		{
			name:     "60 percent up",
			batch:    points(60, 40),
			expected: model.Evaluation{Status: model.VerdictDown, UpCount: 60, TotalCount: 100, UpRatio: 0.6, EvaluatedAt: fixedNow},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s, _, _, _ := newTestService(ctrl)
			assert.Equal(t, tc.expected, s.Classify(tc.batch))
		})
	}
}

func TestStatusService_EvaluateTarget(t *testing.T) {
	target := model.Target{Name: "host.ping", From: "-90d", Until: "-30d"}
	upEvaluation := model.Evaluation{
		Target:      "host.ping",
		From:        "-90d",
		Until:       "-30d",
		Status:      model.VerdictUp,
		UpCount:     70,
		TotalCount:  100,
		UpRatio:     0.7,
		EvaluatedAt: fixedNow,
	}
	downEvaluation := model.Evaluation{
		Target:      "host.ping",
		From:        "-90d",
		Until:       "-30d",
		Status:      model.VerdictDown,
		EvaluatedAt: fixedNow,
	}
	notFound := fmt.Errorf("verdictRepository.GetVerdict: %w", apperrors.ErrVerdictNotFound)

	testCases := []struct {
		name          string
		input         model.Target
		setupMocks    func(mockClient *mockgraphite.MockClient, mockRepo *mockrepository.MockVerdictRepository, mockPublisher *mockpublisher.MockVerdictPublisher)
		expected      model.Evaluation
		expectedError error
	}{
		{
			name:          "Error empty target",
			input:         model.Target{},
			setupMocks:    func(*mockgraphite.MockClient, *mockrepository.MockVerdictRepository, *mockpublisher.MockVerdictPublisher) {},
			expectedError: apperrors.ErrEmptyTarget,
		},
		{
			name:  "Success cached verdict",
			input: model.Target{Name: "host.ping"},
			setupMocks: func(mockClient *mockgraphite.MockClient, mockRepo *mockrepository.MockVerdictRepository, mockPublisher *mockpublisher.MockVerdictPublisher) {
				mockRepo.EXPECT().GetVerdict(gomock.Any(), target).Return(upEvaluation, nil)
			},
			expected: func() model.Evaluation {
				e := upEvaluation
				e.Cached = true
				return e
			}(),
		},
		{
			name:  "Success status changed is published",
			input: model.Target{Name: "host.ping"},
			setupMocks: func(mockClient *mockgraphite.MockClient, mockRepo *mockrepository.MockVerdictRepository, mockPublisher *mockpublisher.MockVerdictPublisher) {
				gomock.InOrder(
					mockRepo.EXPECT().GetVerdict(gomock.Any(), target).Return(model.Evaluation{}, notFound),
					mockClient.EXPECT().FetchDatapoints(gomock.Any(), target).Return(points(70, 30), nil),
					mockRepo.EXPECT().SetVerdict(gomock.Any(), target, upEvaluation).Return(nil),
					mockRepo.EXPECT().SwapLastStatus(gomock.Any(), target, model.VerdictUp).Return(model.VerdictDown, nil),
					mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, event model.VerdictEvent) error {
						assert.NotEmpty(t, event.EventID)
						assert.Equal(t, "host.ping", event.Target)
						assert.Equal(t, model.VerdictUp, event.Status)
						assert.Equal(t, model.VerdictDown, event.PreviousStatus)
						assert.Equal(t, 100, event.TotalCount)
						return nil
					}),
				)
			},
			expected: upEvaluation,
		},
		{
			name:  "Success unchanged status is not published",
			input: target,
			setupMocks: func(mockClient *mockgraphite.MockClient, mockRepo *mockrepository.MockVerdictRepository, mockPublisher *mockpublisher.MockVerdictPublisher) {
				mockRepo.EXPECT().GetVerdict(gomock.Any(), target).Return(model.Evaluation{}, notFound)
				mockClient.EXPECT().FetchDatapoints(gomock.Any(), target).Return(points(70, 30), nil)
				mockRepo.EXPECT().SetVerdict(gomock.Any(), target, upEvaluation).Return(nil)
				mockRepo.EXPECT().SwapLastStatus(gomock.Any(), target, model.VerdictUp).Return(model.VerdictUp, nil)
			},
			expected: upEvaluation,
		},
		{
			name:  "Success fetch failure reports DOWN",
			input: target,
			setupMocks: func(mockClient *mockgraphite.MockClient, mockRepo *mockrepository.MockVerdictRepository, mockPublisher *mockpublisher.MockVerdictPublisher) {
				mockRepo.EXPECT().GetVerdict(gomock.Any(), target).Return(model.Evaluation{}, notFound)
				mockClient.EXPECT().FetchDatapoints(gomock.Any(), target).Return(nil, apperrors.NewUpstreamError(502, "bad gateway"))
				mockRepo.EXPECT().SetVerdict(gomock.Any(), target, downEvaluation).Return(nil)
				mockRepo.EXPECT().SwapLastStatus(gomock.Any(), target, model.VerdictDown).Return(model.Verdict(""), nil)
				mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
			expected: downEvaluation,
		},
		{
			name:  "Error graphite not configured",
			input: target,
			setupMocks: func(mockClient *mockgraphite.MockClient, mockRepo *mockrepository.MockVerdictRepository, mockPublisher *mockpublisher.MockVerdictPublisher) {
				mockRepo.EXPECT().GetVerdict(gomock.Any(), target).Return(model.Evaluation{}, notFound)
				mockClient.EXPECT().FetchDatapoints(gomock.Any(), target).Return(nil, fmt.Errorf("GraphiteClient.FetchDatapoints: %w", apperrors.ErrSourceNotConfigured))
			},
			expectedError: apperrors.ErrSourceNotConfigured,
		},
		{
			name:  "Success cache failures are tolerated",
			input: target,
			setupMocks: func(mockClient *mockgraphite.MockClient, mockRepo *mockrepository.MockVerdictRepository, mockPublisher *mockpublisher.MockVerdictPublisher) {
				mockRepo.EXPECT().GetVerdict(gomock.Any(), target).Return(model.Evaluation{}, errors.New("redis connection error"))
				mockClient.EXPECT().FetchDatapoints(gomock.Any(), target).Return(points(70, 30), nil)
				mockRepo.EXPECT().SetVerdict(gomock.Any(), target, upEvaluation).Return(errors.New("redis connection error"))
				mockRepo.EXPECT().SwapLastStatus(gomock.Any(), target, model.VerdictUp).Return(model.Verdict(""), errors.New("redis connection error"))
			},
			expected: upEvaluation,
		},
		{
			name:  "Success publish failure is tolerated",
			input: target,
			setupMocks: func(mockClient *mockgraphite.MockClient, mockRepo *mockrepository.MockVerdictRepository, mockPublisher *mockpublisher.MockVerdictPublisher) {
				mockRepo.EXPECT().GetVerdict(gomock.Any(), target).Return(model.Evaluation{}, notFound)
				mockClient.EXPECT().FetchDatapoints(gomock.Any(), target).Return(points(70, 30), nil)
				mockRepo.EXPECT().SetVerdict(gomock.Any(), target, upEvaluation).Return(nil)
				mockRepo.EXPECT().SwapLastStatus(gomock.Any(), target, model.VerdictUp).Return(model.VerdictDown, nil)
				mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("kafka write failed"))
			},
			expected: upEvaluation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s, mockClient, mockRepo, mockPublisher := newTestService(ctrl)
			tc.setupMocks(mockClient, mockRepo, mockPublisher)

			res, err := s.EvaluateTarget(context.Background(), tc.input)
			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, res)
		})
	}
}
