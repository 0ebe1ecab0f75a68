package handler

import (
	"errors"
	"net/http"
	"strings"

	apperrors "dream-diary-api/pkg/app_errors"
	"dream-diary-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// UserID 取路由上的 user_id；空白時回 400
func UserID(c *gin.Context) (string, bool) {
	userID := strings.TrimSpace(c.Param("user_id"))
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return "", false
	}
	return userID, true
}

// DreamID 解析路由上的夢境 uuid；格式錯誤時回 400
func DreamID(c *gin.Context) (uuid.UUID, bool) {
	dreamID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dream uuid"})
		return uuid.Nil, false
	}
	return dreamID, true
}

// handleError 把 service 的錯誤轉成 HTTP 回應
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrDreamNotFound):
		log.Warn("Dream not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Dream not found"})
	case errors.Is(err, apperrors.ErrTicketNotFound):
		log.Warn("Ticket not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
	case errors.Is(err, apperrors.ErrInterviewNotFound):
		log.Warn("Interview not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Interview not found"})
	case errors.Is(err, apperrors.ErrInvalidPackage):
		log.Warn("Invalid package")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package"})
	case errors.Is(err, apperrors.ErrInvalidPlan):
		log.Warn("Invalid plan")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, apperrors.ErrStyleNotAvailable):
		log.Warn("Style not available")
		c.JSON(http.StatusForbidden, gin.H{"error": "Style not available for current plan"})
	case errors.Is(err, apperrors.ErrProRequired):
		log.Warn("Pro subscription required")
		c.JSON(http.StatusForbidden, gin.H{"error": "AI Interviewer is a Pro feature. Upgrade to Pro to unlock detailed dream interviews."})
	case errors.Is(err, apperrors.ErrInsufficientCredits):
		log.Warn("Insufficient credits")
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Insufficient credits"})
	case errors.Is(err, apperrors.ErrCooldownActive):
		log.Warn("Ad cooldown active")
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Ad cooldown active"})
	case errors.Is(err, apperrors.ErrAdNotCompleted):
		log.Info("Ad not completed")
		c.JSON(http.StatusConflict, gin.H{"error": "Ad not completed"})
	case errors.Is(err, apperrors.ErrAdUnavailable):
		log.Warn("Ad unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Ad unavailable"})
	case errors.Is(err, apperrors.ErrProviderFailure):
		log.Error("Image provider failure")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Image generation failed"})
	case errors.Is(err, apperrors.ErrStorageFailure):
		log.Error("Storage failure")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage unavailable"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
