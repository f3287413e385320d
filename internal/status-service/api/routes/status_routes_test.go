package routes

import (
	mockhandler "VCS_Status_Microservice/internal/status-service/mocks/api/handler"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSetUpStatusRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockHandler := mockhandler.NewMockStatusHandler(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	emptySuccessHandler := func(c *gin.Context) {
		c.Status(http.StatusOK)
	}

	mockHandler.EXPECT().Healthz().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().Classify().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().EvaluateTarget().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().EvaluateTargetRaw().Return(emptySuccessHandler).AnyTimes()

	SetUpStatusRoutes(r, mockHandler)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "Healthz Route",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Classify Route",
			method:         http.MethodPost,
			path:           "/status/classify",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Evaluate Target Route",
			method:         http.MethodGet,
			path:           "/status/targets?target=host.ping",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Evaluate Target Raw Route",
			method:         http.MethodGet,
			path:           "/status/targets/raw?target=host.ping",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Preflight Route",
			method:         http.MethodOptions,
			path:           "/status/classify",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Unknown Route",
			method:         http.MethodGet,
			path:           "/servers",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
