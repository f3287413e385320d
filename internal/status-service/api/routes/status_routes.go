package routes

import (
	"VCS_Status_Microservice/internal/status-service/api/handler"
	"VCS_Status_Microservice/internal/status-service/api/middleware"

	"github.com/gin-gonic/gin"
)

func SetUpStatusRoutes(r *gin.Engine, handler handler.StatusHandler) {
	r.Use(middleware.CORS())
	r.GET("/healthz", handler.Healthz())

	statusRoutes := r.Group("/status")
	statusRoutes.POST("/classify", handler.Classify())
	statusRoutes.GET("/targets", handler.EvaluateTarget())
	statusRoutes.GET("/targets/raw", handler.EvaluateTargetRaw())
}
