package handler

import (
	"VCS_Status_Microservice/internal/status-service/api/dto/request"
	"VCS_Status_Microservice/internal/status-service/api/dto/response"
	"VCS_Status_Microservice/internal/status-service/decoder"
	apperrors "VCS_Status_Microservice/internal/status-service/errors"
	"VCS_Status_Microservice/internal/status-service/model"
	"VCS_Status_Microservice/internal/status-service/service"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const maxBatchBodyBytes = 10 << 20

type StatusHandler interface {
	Classify() gin.HandlerFunc
	EvaluateTarget() gin.HandlerFunc
	EvaluateTargetRaw() gin.HandlerFunc
	Healthz() gin.HandlerFunc
}

type statusHandler struct {
	logger        *zap.Logger
	statusService service.StatusService
}

func (*statusHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "max":
		return fmt.Sprintf("The %s field must be at most %s characters long", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (s *statusHandler) Classify() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBatchBodyBytes))
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				c.JSON(http.StatusRequestEntityTooLarge, response.Response{
					Message: "Request body too large",
				})
				return
			}
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		batch, err := decoder.DecodeBatch(body)
		if err != nil {
			s.loggingError(c, fmt.Errorf("StatusHandler.Classify: %w", err), "failed to decode data points", zap.DebugLevel)
			c.JSON(http.StatusBadRequest, response.Response{
				Message: fmt.Sprintf("Invalid data points: %v", err),
			})
			return
		}
		evaluation := s.statusService.Classify(batch)
		c.JSON(http.StatusOK, response.ClassifyResponse{
			Status:     evaluation.Status.String(),
			UpCount:    evaluation.UpCount,
			TotalCount: evaluation.TotalCount,
			UpRatio:    evaluation.UpRatio,
		})
	}
}

// evaluate binds the target query and runs the evaluation, writing the error response itself.
// ok is false when a response has already been written.
func (s *statusHandler) evaluate(c *gin.Context) (evaluation model.Evaluation, ok bool) {
	var req request.TargetRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: s.formatValidationError(validationErrors[0]),
			})
			return model.Evaluation{}, false
		}
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Invalid query parameters",
		})
		return model.Evaluation{}, false
	}
	evaluation, err := s.statusService.EvaluateTarget(c, model.Target{
		Name:  req.Target,
		From:  req.From,
		Until: req.Until,
	})
	if err != nil {
		err = fmt.Errorf("StatusHandler.EvaluateTarget: %w", err)
		switch {
		case errors.Is(err, apperrors.ErrEmptyTarget):
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "The Target field is required",
			})
		case errors.Is(err, apperrors.ErrSourceNotConfigured):
			s.loggingError(c, err, fmt.Sprintf("failed to evaluate target %s", req.Target), zap.ErrorLevel)
			c.JSON(http.StatusServiceUnavailable, response.Response{
				Message: "Graphite source is not configured",
			})
		default:
			s.loggingError(c, err, fmt.Sprintf("failed to evaluate target %s", req.Target), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
		}
		return model.Evaluation{}, false
	}
	return evaluation, true
}

func (s *statusHandler) EvaluateTarget() gin.HandlerFunc {
	return func(c *gin.Context) {
		evaluation, ok := s.evaluate(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, response.EvaluationResponse{
			Target:      evaluation.Target,
			From:        evaluation.From,
			Until:       evaluation.Until,
			Status:      evaluation.Status.String(),
			UpCount:     evaluation.UpCount,
			TotalCount:  evaluation.TotalCount,
			UpRatio:     evaluation.UpRatio,
			Cached:      evaluation.Cached,
			EvaluatedAt: evaluation.EvaluatedAt,
		})
	}
}

func (s *statusHandler) EvaluateTargetRaw() gin.HandlerFunc {
	return func(c *gin.Context) {
		evaluation, ok := s.evaluate(c)
		if !ok {
			return
		}
		c.String(http.StatusOK, evaluation.Status.String())
	}
}

func (s *statusHandler) Healthz() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func (s *statusHandler) loggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	var data []zapcore.Field
	data = append(data, zap.Error(err))
	data = append(data, zap.String("http_method", c.Request.Method))
	data = append(data, zap.String("http_path", c.Request.URL.Path))
	if requestID := c.GetHeader("X-Request-Id"); requestID != "" {
		data = append(data, zap.String("request_id", requestID))
	}
	s.logger.Log(logLevel, errDescription, data...)
}

func NewStatusHandler(logger *zap.Logger, statusService service.StatusService) StatusHandler {
	return &statusHandler{
		logger:        logger,
		statusService: statusService,
	}
}
