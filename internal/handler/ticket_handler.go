package handler

import (
	"net/http"

	"dream-diary-api/internal/model"
	"dream-diary-api/internal/service"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service service.TicketService
	rewards service.RewardService
}

func NewTicketHandler(service service.TicketService, rewards service.RewardService) *TicketHandler {
	return &TicketHandler{service: service, rewards: rewards}
}

func (h *TicketHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("packages", h.ListPackages)
		router.GET("users/:user_id/tickets/status", h.GetStatus)
		router.POST("users/:user_id/tickets/ad-reward", h.ClaimAdReward)
		router.POST("users/:user_id/tickets/purchase", h.Purchase)
		router.POST("users/:user_id/tickets/use", h.Use)
		router.POST("users/:user_id/tickets/cleanup", h.Cleanup)
	}
}

// PurchaseTicketsRequest 購買票券請求
type PurchaseTicketsRequest struct {
	PackageID string `json:"package_id" binding:"required"`
}

type PurchaseTicketsResponse struct {
	Tickets []*model.Ticket         `json:"tickets"`
	Status  *model.UserTicketStatus `json:"status"`
}

type UseTicketResponse struct {
	Used   bool                    `json:"used"`
	Status *model.UserTicketStatus `json:"status"`
}

type CleanupResponse struct {
	Removed int `json:"removed"`
}

func (h *TicketHandler) ListPackages(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListPackages())
}

func (h *TicketHandler) GetStatus(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	status, err := h.service.GetStatus(c, userID)
	if err != nil {
		handleError(c, err, "GetTicketStatus")
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *TicketHandler) ClaimAdReward(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	result, err := h.rewards.ClaimAdReward(c, userID)
	if err != nil {
		handleError(c, err, "ClaimAdReward")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *TicketHandler) Purchase(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	var req PurchaseTicketsRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	tickets, err := h.service.PurchaseTickets(c, userID, req.PackageID)
	if err != nil {
		handleError(c, err, "PurchaseTickets")
		return
	}
	status, err := h.service.GetStatus(c, userID)
	if err != nil {
		handleError(c, err, "PurchaseTickets")
		return
	}
	c.JSON(http.StatusCreated, PurchaseTicketsResponse{Tickets: tickets, Status: status})
}

func (h *TicketHandler) Use(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	used, err := h.service.UseTicket(c, userID)
	if err != nil {
		handleError(c, err, "UseTicket")
		return
	}
	status, err := h.service.GetStatus(c, userID)
	if err != nil {
		handleError(c, err, "UseTicket")
		return
	}
	c.JSON(http.StatusOK, UseTicketResponse{Used: used, Status: status})
}

func (h *TicketHandler) Cleanup(c *gin.Context) {
	userID, ok := UserID(c)
	if !ok {
		return
	}
	removed, err := h.service.CleanupExpiredTickets(c, userID)
	if err != nil {
		handleError(c, err, "CleanupExpiredTickets")
		return
	}
	c.JSON(http.StatusOK, CleanupResponse{Removed: removed})
}
