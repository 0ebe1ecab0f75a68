package handler

import (
	"net/http"

	"dream-diary-api/internal/service"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	service service.SubscriptionService
}

func NewSubscriptionHandler(service service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

func (h *SubscriptionHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("plans", h.ListPlans)
		router.GET("users/:user_id/subscription", h.GetStatus)
		router.POST("users/:user_id/subscription", h.Subscribe)
		router.DELETE("users/:user_id/subscription", h.Cancel)
	}
}

// SubscribeRequest 訂閱請求
type SubscribeRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}

func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListPlans())
}

func (h *SubscriptionHandler) GetStatus(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	status, err := h.service.GetStatus(c, userID)
	if err != nil {
		handleError(c, err, "GetSubscription")
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	var req SubscribeRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	subscription, err := h.service.Subscribe(c, userID, req.PlanID)
	if err != nil {
		handleError(c, err, "Subscribe")
		return
	}
	c.JSON(http.StatusCreated, subscription)
}

func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	cancelled, err := h.service.Cancel(c, userID)
	if err != nil {
		handleError(c, err, "CancelSubscription")
		return
	}
	if !cancelled {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
