package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-image-checker/internal/config"
	apperrors "go-image-checker/internal/errors"
	"go-image-checker/internal/logger"
	"go-image-checker/internal/service"
	"go-image-checker/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewHandler builds the HTTP routing for the comparison service
func NewHandler(svc service.ComparisonService, cfg *config.Config) http.Handler {
	r := gin.Default()

	r.Use(
		requestSizeLimiter(cfg.MaxRequestBodySize),
		errorHandler(),
	)

	r.GET("/health", healthCheck)
	r.POST("/compare", compareImages(svc, cfg))

	return r
}

func compareImages(svc service.ComparisonService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"user_agent": c.Request.UserAgent(),
			"ip":         c.ClientIP(),
		}).Info("Processing image comparison request")

		var req models.ComparisonRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"ip": c.ClientIP(),
			}).Error("Invalid request format")
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return
		}

		result, err := svc.Compare(ctx, req)
		if err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"reference_url": req.ReferenceURL,
				"test_url":      req.TestURL,
				"ip":            c.ClientIP(),
			}).Error("Comparison failed")

			statusCode := apperrors.GetStatusCode(err)
			if errors.Is(err, context.DeadlineExceeded) {
				statusCode = http.StatusGatewayTimeout
			}
			respondError(c, statusCode, "comparison failed", err)
			return
		}

		duration := time.Since(startTime)
		logger.WithFields(logrus.Fields{
			"reference_url":      req.ReferenceURL,
			"test_url":           req.TestURL,
			"strategy":           result.Strategy,
			"points":             result.Summary.TotalPoints,
			"significant_points": result.Summary.SignificantPoints,
			"pass_rate":          result.Summary.PassRate,
			"grade":              result.Summary.Grade,
			"processing_time_ms": duration.Milliseconds(),
		}).Info("Image comparison completed successfully")

		c.JSON(http.StatusOK, result)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "available",
		"version": "1.0.0",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// Middleware and helper functions
func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func errorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			respondError(c, determineStatusCode(err), "request processing failed", err)
		}
	}
}

func determineStatusCode(err error) int {
	// Check if it's a custom app error first
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, code int, message string, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"message":     message,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"ip":          c.ClientIP(),
	}).Error("Request failed")

	c.AbortWithStatusJSON(code, models.ErrorResponse{
		Error:   http.StatusText(code),
		Message: fmt.Sprintf("%s: %v", message, err),
	})
}
